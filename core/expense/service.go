package expense

import (
	"github.com/trezcool/hostela/core"
)

var ErrNotFound = core.NewNotFoundError("expense not found")

type (
	Repository interface {
		CreateExpense(exp Expense) (Expense, error)
		QueryAllExpenses() ([]Expense, error)
		GetExpenseByID(id string) (Expense, error)
		UpdateExpense(exp Expense, category, method string) (Expense, error)
		DeleteExpense(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewExpense) (Expense, error) {
	exp := Expense{
		Category:      ne.Category,
		Subcategory:   ne.Subcategory,
		Description:   ne.Description,
		Amount:        ne.Amount,
		Date:          ne.Date,
		PaidTo:        ne.PaidTo,
		PaymentMethod: ne.PaymentMethod,
		ReceiptNumber: ne.ReceiptNumber,
		ApprovedBy:    ne.ApprovedBy,
		Notes:         ne.Notes,
	}
	return svc.repo.CreateExpense(exp)
}

func (svc *Service) QueryAll() ([]Expense, error) {
	return svc.repo.QueryAllExpenses()
}

func (svc *Service) GetByID(id string) (Expense, error) {
	return svc.repo.GetExpenseByID(id)
}

func (svc *Service) Update(id string, ue UpdateExpense) (Expense, error) {
	exp := Expense{
		ID:            id,
		Subcategory:   ue.Subcategory,
		Description:   ue.Description,
		Date:          ue.Date,
		PaidTo:        ue.PaidTo,
		ReceiptNumber: ue.ReceiptNumber,
		ApprovedBy:    ue.ApprovedBy,
		Notes:         ue.Notes,
	}
	if ue.Amount != nil {
		exp.Amount = *ue.Amount
	}
	return svc.repo.UpdateExpense(exp, ue.Category, ue.PaymentMethod)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteExpense(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Expense, error) {
	expenses, err := svc.repo.QueryAllExpenses()
	if err != nil {
		return nil, err
	}

	if filter.Category != "" {
		expenses = keep(expenses, func(e Expense) bool { return e.Category == filter.Category })
	}
	if filter.Month != "" {
		expenses = keep(expenses, func(e Expense) bool { return monthOf(e) == filter.Month })
	}
	if !filter.DateFrom.IsZero() && !filter.DateTo.IsZero() {
		expenses = keep(expenses, func(e Expense) bool {
			return !e.Date.Before(filter.DateFrom) && !e.Date.After(filter.DateTo)
		})
	}
	return core.Search(expenses, SearchFields, filter.Search), nil
}

// CategoryTotals sums amounts per category, in first-seen category order.
func (svc *Service) CategoryTotals() ([]CategoryTotal, error) {
	expenses, err := svc.repo.QueryAllExpenses()
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(totals)
			idx[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Total += e.Amount
	}
	return totals, nil
}

// MonthlyTotals sums amounts per YYYY-MM month key, in first-seen order.
func (svc *Service) MonthlyTotals() ([]MonthlyTotal, error) {
	expenses, err := svc.repo.QueryAllExpenses()
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	totals := make([]MonthlyTotal, 0)
	for _, e := range expenses {
		month := monthOf(e)
		i, ok := idx[month]
		if !ok {
			i = len(totals)
			idx[month] = i
			totals = append(totals, MonthlyTotal{Month: month})
		}
		totals[i].Total += e.Amount
	}
	return totals, nil
}

// TotalInMonth sums expenses for one YYYY-MM month key.
func (svc *Service) TotalInMonth(month string) (int, error) {
	expenses, err := svc.repo.QueryAllExpenses()
	if err != nil {
		return 0, err
	}
	var total int
	for _, e := range expenses {
		if monthOf(e) == month {
			total += e.Amount
		}
	}
	return total, nil
}

func monthOf(e Expense) string {
	return e.Date.Format("2006-01")
}

func keep(expenses []Expense, pred func(Expense) bool) []Expense {
	out := expenses[:0:0]
	for _, e := range expenses {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

package mess

import (
	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/resident"
)

var (
	ErrExpenseNotFound = core.NewNotFoundError("mess expense not found")
	ErrMemberNotFound  = core.NewNotFoundError("mess member not found")
)

type (
	Repository interface {
		CreateMessExpense(exp Expense) (Expense, error)
		QueryAllMessExpenses() ([]Expense, error)
		GetMessExpenseByID(id string) (Expense, error)
		UpdateMessExpense(exp Expense, category string) (Expense, error)
		DeleteMessExpense(id string) error

		CreateMessMember(mem Member) (Member, error)
		QueryAllMessMembers() ([]Member, error)
		GetMessMemberByID(id string) (Member, error)
		UpdateMessMember(mem Member, status, mealType string) (Member, error)
		DeleteMessMember(id string) error
	}

	Service struct {
		repo      Repository
		residents resident.Repository
	}
)

func NewService(repo Repository, residents resident.Repository) *Service {
	return &Service{repo: repo, residents: residents}
}

func (svc *Service) CreateExpense(ne NewExpense) (Expense, error) {
	exp := Expense{
		Date:        ne.Date,
		Category:    ne.Category,
		Description: ne.Description,
		Amount:      ne.Amount,
		Vendor:      ne.Vendor,
		PaidBy:      ne.PaidBy,
		Notes:       ne.Notes,
	}
	return svc.repo.CreateMessExpense(exp)
}

func (svc *Service) QueryAllExpenses() ([]Expense, error) {
	return svc.repo.QueryAllMessExpenses()
}

func (svc *Service) GetExpenseByID(id string) (Expense, error) {
	return svc.repo.GetMessExpenseByID(id)
}

func (svc *Service) UpdateExpense(id string, ue UpdateExpense) (Expense, error) {
	exp := Expense{
		ID:          id,
		Date:        ue.Date,
		Description: ue.Description,
		Vendor:      ue.Vendor,
		PaidBy:      ue.PaidBy,
		Notes:       ue.Notes,
	}
	if ue.Amount != nil {
		exp.Amount = *ue.Amount
	}
	return svc.repo.UpdateMessExpense(exp, ue.Category)
}

func (svc *Service) DeleteExpense(id string) error {
	return svc.repo.DeleteMessExpense(id)
}

func (svc *Service) FilterExpenses(filter ExpenseFilter) ([]Expense, error) {
	expenses, err := svc.repo.QueryAllMessExpenses()
	if err != nil {
		return nil, err
	}

	if filter.Category != "" {
		expenses = keepExpenses(expenses, func(e Expense) bool { return e.Category == filter.Category })
	}
	if filter.Month != "" {
		expenses = keepExpenses(expenses, func(e Expense) bool { return e.Date.Format("2006-01") == filter.Month })
	}
	return core.Search(expenses, ExpenseSearchFields, filter.Search), nil
}

// CategoryTotals sums mess expense amounts per category, in first-seen order.
func (svc *Service) CategoryTotals() ([]CategoryTotal, error) {
	expenses, err := svc.repo.QueryAllMessExpenses()
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

// MonthlyTotals sums mess expense amounts per YYYY-MM month key, in first-seen order.
func (svc *Service) MonthlyTotals() ([]MonthlyTotal, error) {
	expenses, err := svc.repo.QueryAllMessExpenses()
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	totals := make([]MonthlyTotal, 0)
	for _, e := range expenses {
		month := e.Date.Format("2006-01")
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

func (svc *Service) AddMember(nm NewMember) (Member, error) {
	if _, err := svc.residents.GetResidentByID(nm.ResidentID); err != nil {
		return Member{}, err
	}
	mem := Member{
		ResidentID: nm.ResidentID,
		JoinDate:   nm.JoinDate,
		Status:     MemberActive,
		MealType:   nm.MealType,
	}
	return svc.repo.CreateMessMember(mem)
}

func (svc *Service) QueryAllMembers() ([]Member, error) {
	return svc.repo.QueryAllMessMembers()
}

func (svc *Service) GetMemberByID(id string) (Member, error) {
	return svc.repo.GetMessMemberByID(id)
}

func (svc *Service) UpdateMember(id string, um UpdateMember) (Member, error) {
	return svc.repo.UpdateMessMember(Member{ID: id}, um.Status, um.MealType)
}

func (svc *Service) DeleteMember(id string) error {
	return svc.repo.DeleteMessMember(id)
}

func (svc *Service) FilterMembers(filter MemberFilter) ([]Member, error) {
	members, err := svc.repo.QueryAllMessMembers()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		members = keepMembers(members, func(m Member) bool { return m.Status == filter.Status })
	}
	if filter.MealType != "" {
		members = keepMembers(members, func(m Member) bool { return m.MealType == filter.MealType })
	}
	return core.Search(members, MemberSearchFields, filter.Search), nil
}

func keepExpenses(expenses []Expense, pred func(Expense) bool) []Expense {
	out := expenses[:0:0]
	for _, e := range expenses {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func keepMembers(members []Member, pred func(Member) bool) []Member {
	out := members[:0:0]
	for _, m := range members {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

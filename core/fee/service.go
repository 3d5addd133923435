package fee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/resident"
)

var (
	ErrNotFound        = core.NewNotFoundError("fee transaction not found")
	ErrPaymentNotFound = core.NewNotFoundError("payment not found")
	ErrAlreadySettled  = errors.New("fee transaction already settled")
)

type (
	Repository interface {
		CreateFee(fee FeeTransaction) (FeeTransaction, error)
		QueryAllFees() ([]FeeTransaction, error)
		GetFeeByID(id string) (FeeTransaction, error)
		UpdateFee(fee FeeTransaction, status string) (FeeTransaction, error)
		DeleteFee(id string) error

		CreatePayment(pay Payment) (Payment, error)
		QueryAllPayments() ([]Payment, error)
		GetPaymentByID(id string) (Payment, error)
	}

	Service struct {
		repo      Repository
		residents resident.Repository
	}
)

func NewService(repo Repository, residents resident.Repository) *Service {
	return &Service{repo: repo, residents: residents}
}

func (svc *Service) Create(nf NewFeeTransaction) (FeeTransaction, error) {
	if _, err := svc.residents.GetResidentByID(nf.ResidentID); err != nil {
		return FeeTransaction{}, err
	}
	fee := FeeTransaction{
		ResidentID: nf.ResidentID,
		Type:       nf.Type,
		Amount:     nf.Amount,
		Month:      nf.Month,
		DueDate:    nf.DueDate,
		Status:     StatusPending,
		Notes:      nf.Notes,
	}
	return svc.repo.CreateFee(fee)
}

func (svc *Service) QueryAll() ([]FeeTransaction, error) {
	return svc.repo.QueryAllFees()
}

func (svc *Service) GetByID(id string) (FeeTransaction, error) {
	return svc.repo.GetFeeByID(id)
}

func (svc *Service) Update(id string, uf UpdateFeeTransaction) (FeeTransaction, error) {
	fee := FeeTransaction{
		ID:      id,
		Month:   uf.Month,
		DueDate: uf.DueDate,
		Notes:   uf.Notes,
	}
	if uf.Amount != nil {
		fee.Amount = *uf.Amount
	}
	return svc.repo.UpdateFee(fee, uf.Status)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteFee(id)
}

// Filter narrows by status/type/month/resident/due-window, then searches the
// rendered rows (searchable fields include the re-resolved residentName).
func (svc *Service) Filter(filter QueryFilter) ([]Row, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		fees = keep(fees, func(f FeeTransaction) bool { return f.Status == filter.Status })
	}
	if filter.Type != "" {
		fees = keep(fees, func(f FeeTransaction) bool { return f.Type == filter.Type })
	}
	if filter.Month != "" {
		fees = keep(fees, func(f FeeTransaction) bool { return f.Month == filter.Month })
	}
	if filter.Resident != "" {
		fees = keep(fees, func(f FeeTransaction) bool { return f.ResidentID == filter.Resident })
	}
	if !filter.DueFrom.IsZero() && !filter.DueTo.IsZero() {
		fees = keep(fees, func(f FeeTransaction) bool {
			return !f.DueDate.Before(filter.DueFrom) && !f.DueDate.After(filter.DueTo)
		})
	}

	rows, err := svc.rows(fees)
	if err != nil {
		return nil, err
	}
	return core.Search(rows, SearchFields, filter.Search), nil
}

// Settle records a Payment against a pending fee. Full payments mark the fee paid
// and stamp paidDate/method/receipt; partial payments only move it to partial.
func (svc *Service) Settle(feeID string, np NewPayment) (Payment, error) {
	fee, err := svc.repo.GetFeeByID(feeID)
	if err != nil {
		return Payment{}, err
	}
	if fee.Status == StatusPaid {
		return Payment{}, core.NewValidationError(ErrAlreadySettled)
	}

	now := time.Now().UTC()
	pay := Payment{
		ResidentID:       fee.ResidentID,
		FeeTransactionID: fee.ID,
		Amount:           np.Amount,
		PaymentDate:      now,
		PaymentMethod:    np.PaymentMethod,
		ReceivedBy:       np.ReceivedBy,
		ReceiptNumber:    newReceiptNumber(),
		Notes:            np.Notes,
	}
	pay, err = svc.repo.CreatePayment(pay)
	if err != nil {
		return Payment{}, err
	}

	status := StatusPartial
	upd := FeeTransaction{ID: fee.ID}
	if np.Amount >= fee.Amount {
		status = StatusPaid
		upd.PaidDate.SetValid(now)
		upd.PaymentMethod.SetValid(np.PaymentMethod)
		upd.ReceiptNumber.SetValid(pay.ReceiptNumber)
	}
	if _, err = svc.repo.UpdateFee(upd, status); err != nil {
		return Payment{}, errors.Wrap(err, "marking fee settled")
	}
	return pay, nil
}

func (svc *Service) Payments() ([]Payment, error) {
	return svc.repo.QueryAllPayments()
}

// TotalPendingAmount sums pending and overdue fees.
func (svc *Service) TotalPendingAmount() (int, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return 0, err
	}
	var total int
	for _, f := range fees {
		if f.Status == StatusPending || f.Status == StatusOverdue {
			total += f.Amount
		}
	}
	return total, nil
}

// MonthlyStats buckets amounts by status per month, in first-seen month order.
func (svc *Service) MonthlyStats() ([]MonthlyStat, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	stats := make([]MonthlyStat, 0)
	for _, f := range fees {
		i, ok := idx[f.Month]
		if !ok {
			i = len(stats)
			idx[f.Month] = i
			stats = append(stats, MonthlyStat{Month: f.Month})
		}
		switch f.Status {
		case StatusPaid:
			stats[i].Collected += f.Amount
		case StatusPending:
			stats[i].Pending += f.Amount
		case StatusOverdue:
			stats[i].Overdue += f.Amount
		}
	}
	return stats, nil
}

// CollectedInMonth sums paid fees for one YYYY-MM month key.
func (svc *Service) CollectedInMonth(month string) (int, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return 0, err
	}
	var total int
	for _, f := range fees {
		if f.Month == month && f.Status == StatusPaid {
			total += f.Amount
		}
	}
	return total, nil
}

// rows re-resolves the resident reference for rendering; a dangling residentId
// renders as "Unknown" since deleting a resident never touches its fees.
func (svc *Service) rows(fees []FeeTransaction) ([]Row, error) {
	rows := make([]Row, 0, len(fees))
	for _, f := range fees {
		name := "Unknown"
		if res, err := svc.residents.GetResidentByID(f.ResidentID); err == nil {
			name = res.Name
		} else if !core.IsNotFound(err) {
			return nil, err
		}
		rows = append(rows, Row{FeeTransaction: f, ResidentName: name})
	}
	return rows, nil
}

func newReceiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.New().String()[:8])
}

func keep(fees []FeeTransaction, pred func(FeeTransaction) bool) []FeeTransaction {
	out := fees[:0:0]
	for _, f := range fees {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

package inmemdb

import (
	"github.com/trezcool/hostela/core/fee"
)

type feeRepository struct {
	db      *table[fee.FeeTransaction]
	payment *table[fee.Payment]
}

func NewFeeRepository(db *DB) fee.Repository {
	return &feeRepository{db: db.fee, payment: db.payment}
}

func (repo *feeRepository) CreateFee(f fee.FeeTransaction) (fee.FeeTransaction, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	f.ID = repo.db.nextID()
	repo.db.insert(f.ID, &f)
	return f, nil
}

func (repo *feeRepository) QueryAllFees() ([]fee.FeeTransaction, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *feeRepository) GetFeeByID(id string) (fee.FeeTransaction, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if f, ok := repo.db.get(id); ok {
		return *f, nil
	}
	return fee.FeeTransaction{}, fee.ErrNotFound
}

func (repo *feeRepository) UpdateFee(f fee.FeeTransaction, status string) (fee.FeeTransaction, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.get(f.ID)
	if !ok {
		return fee.FeeTransaction{}, fee.ErrNotFound
	}
	if f.Amount != 0 {
		orig.Amount = f.Amount
	}
	if f.Month != "" {
		orig.Month = f.Month
	}
	if !f.DueDate.IsZero() {
		orig.DueDate = f.DueDate
	}
	if f.PaidDate.Valid {
		orig.PaidDate = f.PaidDate
	}
	if f.PaymentMethod.Valid {
		orig.PaymentMethod = f.PaymentMethod
	}
	if f.ReceiptNumber.Valid {
		orig.ReceiptNumber = f.ReceiptNumber
	}
	if f.Notes.Valid {
		orig.Notes = f.Notes
	}
	if status != "" {
		orig.Status = status
	}
	return *orig, nil
}

func (repo *feeRepository) DeleteFee(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if !repo.db.remove(id) {
		return fee.ErrNotFound
	}
	return nil
}

func (repo *feeRepository) CreatePayment(pay fee.Payment) (fee.Payment, error) {
	repo.payment.Lock()
	defer repo.payment.Unlock()

	pay.ID = repo.payment.nextID()
	repo.payment.insert(pay.ID, &pay)
	return pay, nil
}

func (repo *feeRepository) QueryAllPayments() ([]fee.Payment, error) {
	repo.payment.RLock()
	defer repo.payment.RUnlock()
	return repo.payment.all(), nil
}

func (repo *feeRepository) GetPaymentByID(id string) (fee.Payment, error) {
	repo.payment.RLock()
	defer repo.payment.RUnlock()

	if pay, ok := repo.payment.get(id); ok {
		return *pay, nil
	}
	return fee.Payment{}, fee.ErrPaymentNotFound
}

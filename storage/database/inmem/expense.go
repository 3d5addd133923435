package inmemdb

import (
	"time"

	"github.com/trezcool/hostela/core/expense"
)

type expenseRepository struct {
	db *table[expense.Expense]
}

func NewExpenseRepository(db *DB) expense.Repository {
	return &expenseRepository{db: db.expense}
}

func (repo *expenseRepository) CreateExpense(exp expense.Expense) (expense.Expense, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	exp.ID = repo.db.nextID()
	now := time.Now().UTC()
	exp.CreatedAt, exp.UpdatedAt = now, now
	repo.db.insert(exp.ID, &exp)
	return exp, nil
}

func (repo *expenseRepository) QueryAllExpenses() ([]expense.Expense, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *expenseRepository) GetExpenseByID(id string) (expense.Expense, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if exp, ok := repo.db.get(id); ok {
		return *exp, nil
	}
	return expense.Expense{}, expense.ErrNotFound
}

func (repo *expenseRepository) UpdateExpense(exp expense.Expense, category, method string) (expense.Expense, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.get(exp.ID)
	if !ok {
		return expense.Expense{}, expense.ErrNotFound
	}
	if category != "" {
		orig.Category = category
	}
	if exp.Subcategory.Valid {
		orig.Subcategory = exp.Subcategory
	}
	if exp.Description != "" {
		orig.Description = exp.Description
	}
	if exp.Amount != 0 {
		orig.Amount = exp.Amount
	}
	if !exp.Date.IsZero() {
		orig.Date = exp.Date
	}
	if exp.PaidTo != "" {
		orig.PaidTo = exp.PaidTo
	}
	if method != "" {
		orig.PaymentMethod = method
	}
	if exp.ReceiptNumber.Valid {
		orig.ReceiptNumber = exp.ReceiptNumber
	}
	if exp.ApprovedBy.Valid {
		orig.ApprovedBy = exp.ApprovedBy
	}
	if exp.Notes.Valid {
		orig.Notes = exp.Notes
	}
	orig.UpdatedAt = time.Now().UTC()
	return *orig, nil
}

func (repo *expenseRepository) DeleteExpense(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if !repo.db.remove(id) {
		return expense.ErrNotFound
	}
	return nil
}

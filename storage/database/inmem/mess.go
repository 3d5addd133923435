package inmemdb

import (
	"time"

	"github.com/trezcool/hostela/core/mess"
)

type messRepository struct {
	expense *table[mess.Expense]
	member  *table[mess.Member]
}

func NewMessRepository(db *DB) mess.Repository {
	return &messRepository{expense: db.messExpense, member: db.messMember}
}

func (repo *messRepository) CreateMessExpense(exp mess.Expense) (mess.Expense, error) {
	repo.expense.Lock()
	defer repo.expense.Unlock()

	exp.ID = repo.expense.nextID()
	now := time.Now().UTC()
	exp.CreatedAt, exp.UpdatedAt = now, now
	repo.expense.insert(exp.ID, &exp)
	return exp, nil
}

func (repo *messRepository) QueryAllMessExpenses() ([]mess.Expense, error) {
	repo.expense.RLock()
	defer repo.expense.RUnlock()
	return repo.expense.all(), nil
}

func (repo *messRepository) GetMessExpenseByID(id string) (mess.Expense, error) {
	repo.expense.RLock()
	defer repo.expense.RUnlock()

	if exp, ok := repo.expense.get(id); ok {
		return *exp, nil
	}
	return mess.Expense{}, mess.ErrExpenseNotFound
}

func (repo *messRepository) UpdateMessExpense(exp mess.Expense, category string) (mess.Expense, error) {
	repo.expense.Lock()
	defer repo.expense.Unlock()

	// only save set fields
	orig, ok := repo.expense.get(exp.ID)
	if !ok {
		return mess.Expense{}, mess.ErrExpenseNotFound
	}
	if !exp.Date.IsZero() {
		orig.Date = exp.Date
	}
	if category != "" {
		orig.Category = category
	}
	if exp.Description != "" {
		orig.Description = exp.Description
	}
	if exp.Amount != 0 {
		orig.Amount = exp.Amount
	}
	if exp.Vendor != "" {
		orig.Vendor = exp.Vendor
	}
	if exp.PaidBy != "" {
		orig.PaidBy = exp.PaidBy
	}
	if exp.Notes.Valid {
		orig.Notes = exp.Notes
	}
	orig.UpdatedAt = time.Now().UTC()
	return *orig, nil
}

func (repo *messRepository) DeleteMessExpense(id string) error {
	repo.expense.Lock()
	defer repo.expense.Unlock()

	if !repo.expense.remove(id) {
		return mess.ErrExpenseNotFound
	}
	return nil
}

func (repo *messRepository) CreateMessMember(mem mess.Member) (mess.Member, error) {
	repo.member.Lock()
	defer repo.member.Unlock()

	mem.ID = repo.member.nextID()
	now := time.Now().UTC()
	mem.CreatedAt, mem.UpdatedAt = now, now
	repo.member.insert(mem.ID, &mem)
	return mem, nil
}

func (repo *messRepository) QueryAllMessMembers() ([]mess.Member, error) {
	repo.member.RLock()
	defer repo.member.RUnlock()
	return repo.member.all(), nil
}

func (repo *messRepository) GetMessMemberByID(id string) (mess.Member, error) {
	repo.member.RLock()
	defer repo.member.RUnlock()

	if mem, ok := repo.member.get(id); ok {
		return *mem, nil
	}
	return mess.Member{}, mess.ErrMemberNotFound
}

func (repo *messRepository) UpdateMessMember(mem mess.Member, status, mealType string) (mess.Member, error) {
	repo.member.Lock()
	defer repo.member.Unlock()

	orig, ok := repo.member.get(mem.ID)
	if !ok {
		return mess.Member{}, mess.ErrMemberNotFound
	}
	if status != "" {
		orig.Status = status
	}
	if mealType != "" {
		orig.MealType = mealType
	}
	orig.UpdatedAt = time.Now().UTC()
	return *orig, nil
}

func (repo *messRepository) DeleteMessMember(id string) error {
	repo.member.Lock()
	defer repo.member.Unlock()

	if !repo.member.remove(id) {
		return mess.ErrMemberNotFound
	}
	return nil
}

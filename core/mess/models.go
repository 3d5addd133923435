package mess

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
)

// Expense categories
const (
	CategoryGrocery    = "grocery"
	CategoryVegetables = "vegetables"
	CategoryMeat       = "meat"
	CategoryDairy      = "dairy"
	CategoryGas        = "gas"
	CategoryOther      = "other"
)

// Member statuses
const (
	MemberActive   = "active"
	MemberInactive = "inactive"
)

// Meal types
const (
	MealFull   = "full"
	MealLunch  = "lunch"
	MealDinner = "dinner"
)

// Search fields per collection.
var (
	ExpenseSearchFields = []string{"description", "vendor", "category"}
	MemberSearchFields  = []string{"residentId", "status", "mealType"}
)

type Expense struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      int         `json:"amount"`
	Vendor      string      `json:"vendor"`
	PaidBy      string      `json:"paidBy"`
	Notes       null.String `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type NewExpense struct {
	Date        time.Time   `json:"date" validate:"required"`
	Category    string      `json:"category" validate:"required,oneof=grocery vegetables meat dairy gas other"`
	Description string      `json:"description" validate:"required"`
	Amount      int         `json:"amount" validate:"required,min=1"`
	Vendor      string      `json:"vendor" validate:"required"`
	PaidBy      string      `json:"paidBy" validate:"required"`
	Notes       null.String `json:"notes"`
}

func (ne *NewExpense) Validate() error {
	ne.Category = core.CleanString(ne.Category, true)
	ne.Description = core.CleanString(ne.Description)
	ne.Vendor = core.CleanString(ne.Vendor)
	ne.PaidBy = core.CleanString(ne.PaidBy)
	return core.Validate.Struct(ne)
}

// UpdateExpense applies partially; zero values leave the stored field unchanged.
type UpdateExpense struct {
	Date        time.Time   `json:"date"`
	Category    string      `json:"category" validate:"omitempty,oneof=grocery vegetables meat dairy gas other"`
	Description string      `json:"description"`
	Amount      *int        `json:"amount" validate:"omitempty,min=1"`
	Vendor      string      `json:"vendor"`
	PaidBy      string      `json:"paidBy"`
	Notes       null.String `json:"notes"`
}

func (ue *UpdateExpense) Validate() error {
	ue.Category = core.CleanString(ue.Category, true)
	ue.Description = core.CleanString(ue.Description)
	ue.Vendor = core.CleanString(ue.Vendor)
	ue.PaidBy = core.CleanString(ue.PaidBy)
	return core.Validate.Struct(ue)
}

type Member struct {
	ID         string    `json:"id"`
	ResidentID string    `json:"residentId"`
	JoinDate   time.Time `json:"joinDate"`
	Status     string    `json:"status"`
	MealType   string    `json:"mealType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type NewMember struct {
	ResidentID string    `json:"residentId" validate:"required"`
	JoinDate   time.Time `json:"joinDate" validate:"required"`
	MealType   string    `json:"mealType" validate:"required,oneof=full lunch dinner"`
}

func (nm *NewMember) Validate() error {
	nm.ResidentID = core.CleanString(nm.ResidentID)
	nm.MealType = core.CleanString(nm.MealType, true)
	return core.Validate.Struct(nm)
}

type UpdateMember struct {
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	MealType string `json:"mealType" validate:"omitempty,oneof=full lunch dinner"`
}

func (um *UpdateMember) Validate() error {
	um.Status = core.CleanString(um.Status, true)
	um.MealType = core.CleanString(um.MealType, true)
	return core.Validate.Struct(um)
}

type ExpenseFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Month    string `query:"month"`
}

func (f *ExpenseFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Category = core.CleanString(f.Category, true)
	f.Month = core.CleanString(f.Month)
}

type MemberFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	MealType string `query:"meal_type"`
}

func (f *MemberFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Status = core.CleanString(f.Status, true)
	f.MealType = core.CleanString(f.MealType, true)
}

type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

type MonthlyTotal struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

package expense

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
)

// Categories
const (
	CategoryUtility     = "utility"
	CategoryMaintenance = "maintenance"
	CategorySalary      = "salary"
	CategoryMess        = "mess"
	CategorySupplies    = "supplies"
	CategoryRent        = "rent"
	CategoryOther       = "other"
)

// SearchFields lists the expense fields matched by a search term.
var SearchFields = []string{"description", "paidTo", "category", "subcategory"}

type Expense struct {
	ID            string      `json:"id"`
	Category      string      `json:"category"`
	Subcategory   null.String `json:"subcategory,omitempty"`
	Description   string      `json:"description"`
	Amount        int         `json:"amount"`
	Date          time.Time   `json:"date"`
	PaidTo        string      `json:"paidTo"`
	PaymentMethod string      `json:"paymentMethod"`
	ReceiptNumber null.String `json:"receiptNumber,omitempty"`
	ApprovedBy    null.String `json:"approvedBy,omitempty"`
	Notes         null.String `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type NewExpense struct {
	Category      string      `json:"category" validate:"required,oneof=utility maintenance salary mess supplies rent other"`
	Subcategory   null.String `json:"subcategory"`
	Description   string      `json:"description" validate:"required"`
	Amount        int         `json:"amount" validate:"required,min=1"`
	Date          time.Time   `json:"date" validate:"required"`
	PaidTo        string      `json:"paidTo" validate:"required"`
	PaymentMethod string      `json:"paymentMethod" validate:"required,oneof=cash bank online cheque"`
	ReceiptNumber null.String `json:"receiptNumber"`
	ApprovedBy    null.String `json:"approvedBy"`
	Notes         null.String `json:"notes"`
}

func (ne *NewExpense) Validate() error {
	ne.Category = core.CleanString(ne.Category, true)
	ne.Description = core.CleanString(ne.Description)
	ne.PaidTo = core.CleanString(ne.PaidTo)
	ne.PaymentMethod = core.CleanString(ne.PaymentMethod, true)
	return core.Validate.Struct(ne)
}

// UpdateExpense applies partially; zero values leave the stored field unchanged.
type UpdateExpense struct {
	Category      string      `json:"category" validate:"omitempty,oneof=utility maintenance salary mess supplies rent other"`
	Subcategory   null.String `json:"subcategory"`
	Description   string      `json:"description"`
	Amount        *int        `json:"amount" validate:"omitempty,min=1"`
	Date          time.Time   `json:"date"`
	PaidTo        string      `json:"paidTo"`
	PaymentMethod string      `json:"paymentMethod" validate:"omitempty,oneof=cash bank online cheque"`
	ReceiptNumber null.String `json:"receiptNumber"`
	ApprovedBy    null.String `json:"approvedBy"`
	Notes         null.String `json:"notes"`
}

func (ue *UpdateExpense) Validate() error {
	ue.Category = core.CleanString(ue.Category, true)
	ue.Description = core.CleanString(ue.Description)
	ue.PaidTo = core.CleanString(ue.PaidTo)
	ue.PaymentMethod = core.CleanString(ue.PaymentMethod, true)
	return core.Validate.Struct(ue)
}

type QueryFilter struct {
	Search   string    `query:"search"`
	Category string    `query:"category"`
	Month    string    `query:"month"`
	DateFrom time.Time `query:"date_from"`
	DateTo   time.Time `query:"date_to"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = core.CleanString(qf.Category, true)
	qf.Month = core.CleanString(qf.Month)
}

type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

type MonthlyTotal struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

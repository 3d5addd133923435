package fee

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
)

// Statuses
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
	StatusPartial = "partial"
)

// Fee types
const (
	TypeRent     = "rent"
	TypeSecurity = "security"
	TypeMess     = "mess"
	TypeUtility  = "utility"
	TypeOther    = "other"
)

// Payment methods
const (
	MethodCash   = "cash"
	MethodBank   = "bank"
	MethodOnline = "online"
	MethodCheque = "cheque"
)

var SearchFields = []string{"residentName", "receiptNumber"}

type FeeTransaction struct {
	ID            string      `json:"id"`
	ResidentID    string      `json:"residentId"`
	Type          string      `json:"type"`
	Amount        int         `json:"amount"`
	Month         string      `json:"month"`
	DueDate       time.Time   `json:"dueDate"`
	PaidDate      null.Time   `json:"paidDate,omitempty"`
	Status        string      `json:"status"`
	PaymentMethod null.String `json:"paymentMethod,omitempty"`
	ReceiptNumber null.String `json:"receiptNumber,omitempty"`
	Notes         null.String `json:"notes,omitempty"`
}

// Payment settles exactly one FeeTransaction; immutable once created.
type Payment struct {
	ID               string      `json:"id"`
	ResidentID       string      `json:"residentId"`
	FeeTransactionID string      `json:"feeTransactionId"`
	Amount           int         `json:"amount"`
	PaymentDate      time.Time   `json:"paymentDate"`
	PaymentMethod    string      `json:"paymentMethod"`
	ReceivedBy       string      `json:"receivedBy"`
	ReceiptNumber    string      `json:"receiptNumber"`
	Notes            null.String `json:"notes,omitempty"`
}

// Row is a FeeTransaction enriched for rendering: the resident reference is
// re-resolved on every render, never embedded.
type Row struct {
	FeeTransaction
	ResidentName string `json:"residentName"`
}

type NewFeeTransaction struct {
	ResidentID string      `json:"residentId" validate:"required"`
	Type       string      `json:"type" validate:"required,oneof=rent security mess utility other"`
	Amount     int         `json:"amount" validate:"required,min=1"`
	Month      string      `json:"month" validate:"required,month"`
	DueDate    time.Time   `json:"dueDate" validate:"required"`
	Notes      null.String `json:"notes"`
}

func (nf *NewFeeTransaction) Validate() error {
	nf.Type = core.CleanString(nf.Type, true)
	return core.Validate.Struct(nf)
}

type UpdateFeeTransaction struct {
	Amount  *int        `json:"amount" validate:"omitempty,min=1"`
	Month   string      `json:"month" validate:"omitempty,month"`
	DueDate time.Time   `json:"dueDate"`
	Status  string      `json:"status" validate:"omitempty,oneof=pending paid overdue partial"`
	Notes   null.String `json:"notes"`
}

func (uf *UpdateFeeTransaction) Validate() error { return core.Validate.Struct(uf) }

// NewPayment settles a fee. An amount below the fee's outstanding amount marks the
// fee partial instead of paid.
type NewPayment struct {
	Amount        int         `json:"amount" validate:"required,min=1"`
	PaymentMethod string      `json:"paymentMethod" validate:"required,oneof=cash bank online cheque"`
	ReceivedBy    string      `json:"receivedBy" validate:"required"`
	Notes         null.String `json:"notes"`
}

func (np *NewPayment) Validate() error {
	np.PaymentMethod = core.CleanString(np.PaymentMethod, true)
	return core.Validate.Struct(np)
}

type QueryFilter struct {
	Search   string    `query:"search"`
	Status   string    `query:"status"`
	Type     string    `query:"type"`
	Month    string    `query:"month"`
	Resident string    `query:"resident"`
	DueFrom  time.Time `query:"due_from"`
	DueTo    time.Time `query:"due_to"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true)
	qf.Type = core.CleanString(qf.Type, true)
}

// MonthlyStat buckets fee amounts by status for one month; emitted in first-seen
// month order.
type MonthlyStat struct {
	Month     string `json:"month"`
	Collected int    `json:"collected"`
	Pending   int    `json:"pending"`
	Overdue   int    `json:"overdue"`
}

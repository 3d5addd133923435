package resident

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
)

// Lifecycle statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusCheckout = "checkout"
)

var Statuses = []string{StatusActive, StatusInactive, StatusCheckout}

// SearchFields are the record keys free-text search inspects on the residents page.
var SearchFields = []string{"name", "fatherName", "phone", "cnic", "city", "occupation"}

type Resident struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	FatherName       string      `json:"fatherName"`
	CNIC             string      `json:"cnic"`
	Phone            string      `json:"phone"`
	EmergencyContact string      `json:"emergencyContact"`
	Email            null.String `json:"email,omitempty"`
	Address          string      `json:"address"`
	City             string      `json:"city"`
	Occupation       string      `json:"occupation"`
	Workplace        null.String `json:"workplace,omitempty"`
	RoomID           string      `json:"roomId"`
	BedNumber        int         `json:"bedNumber"`
	JoinDate         time.Time   `json:"joinDate"`
	Status           string      `json:"status"`
	SecurityDeposit  int         `json:"securityDeposit"`
	MonthlyRent      int         `json:"monthlyRent"`
	Notes            null.String `json:"notes,omitempty"`
}

// NewResident contains information needed to register a new Resident.
type NewResident struct {
	Name             string      `json:"name" validate:"required"`
	FatherName       string      `json:"fatherName" validate:"required"`
	CNIC             string      `json:"cnic" validate:"required"`
	Phone            string      `json:"phone" validate:"required"`
	EmergencyContact string      `json:"emergencyContact" validate:"required"`
	Email            null.String `json:"email" validate:"omitempty"`
	Address          string      `json:"address" validate:"required"`
	City             string      `json:"city" validate:"required"`
	Occupation       string      `json:"occupation" validate:"required"`
	Workplace        null.String `json:"workplace"`
	RoomID           string      `json:"roomId" validate:"required"`
	BedNumber        int         `json:"bedNumber" validate:"required,min=1"`
	JoinDate         time.Time   `json:"joinDate"`
	SecurityDeposit  int         `json:"securityDeposit" validate:"min=0"`
	MonthlyRent      int         `json:"monthlyRent" validate:"required,min=0"`
	Notes            null.String `json:"notes"`
}

func (nr *NewResident) Validate() error {
	nr.Name = core.CleanString(nr.Name)
	nr.CNIC = core.CleanString(nr.CNIC)
	nr.Phone = core.CleanString(nr.Phone)
	nr.City = core.CleanString(nr.City)
	return core.Validate.Struct(nr)
}

// UpdateResident defines what may be provided to modify an existing Resident.
// Zero-valued fields are left unchanged.
type UpdateResident struct {
	Name             string      `json:"name"`
	FatherName       string      `json:"fatherName"`
	CNIC             string      `json:"cnic"`
	Phone            string      `json:"phone"`
	EmergencyContact string      `json:"emergencyContact"`
	Email            null.String `json:"email"`
	Address          string      `json:"address"`
	City             string      `json:"city"`
	Occupation       string      `json:"occupation"`
	Workplace        null.String `json:"workplace"`
	RoomID           string      `json:"roomId"`
	BedNumber        *int        `json:"bedNumber" validate:"omitempty,min=1"`
	Status           string      `json:"status" validate:"omitempty,oneof=active inactive checkout"`
	SecurityDeposit  *int        `json:"securityDeposit" validate:"omitempty,min=0"`
	MonthlyRent      *int        `json:"monthlyRent" validate:"omitempty,min=0"`
	Notes            null.String `json:"notes"`
}

func (ur *UpdateResident) Validate() error {
	ur.Name = core.CleanString(ur.Name)
	ur.CNIC = core.CleanString(ur.CNIC)
	ur.Phone = core.CleanString(ur.Phone)
	ur.City = core.CleanString(ur.City)
	return core.Validate.Struct(ur)
}

// QueryFilter narrows the listing before search+sort is applied.
type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Room   string `query:"room"`
	City   string `query:"city"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true)
	qf.City = core.CleanString(qf.City)
}

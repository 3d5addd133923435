package employee

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Roles
const (
	RoleManager     = "manager"
	RoleWarden      = "warden"
	RoleCook        = "cook"
	RoleCleaner     = "cleaner"
	RoleSecurity    = "security"
	RoleAccountant  = "accountant"
	RoleMaintenance = "maintenance"
)

var Roles = []string{RoleManager, RoleWarden, RoleCook, RoleCleaner, RoleSecurity, RoleAccountant, RoleMaintenance}

var SearchFields = []string{"name", "cnic", "phone", "role"}

type Employee struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	FatherName  string      `json:"fatherName"`
	CNIC        string      `json:"cnic"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Role        string      `json:"role"`
	Salary      int         `json:"salary"`
	JoinDate    time.Time   `json:"joinDate"`
	Status      string      `json:"status"`
	BankAccount null.String `json:"bankAccount,omitempty"`
}

// LeaveRecord belongs to one Employee.
type LeaveRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Type       string    `json:"type"`   // casual | sick | annual | unpaid
	Status     string    `json:"status"` // pending | approved | rejected
	Reason     string    `json:"reason"`
}

// SalaryRecord belongs to one Employee.
type SalaryRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Month      string    `json:"month"`
	BaseSalary int       `json:"baseSalary"`
	Deductions int       `json:"deductions"`
	Bonus      int       `json:"bonus"`
	NetSalary  int       `json:"netSalary"`
	PaidDate   null.Time `json:"paidDate,omitempty"`
	Status     string    `json:"status"` // pending | paid
}

type NewEmployee struct {
	Name        string      `json:"name" validate:"required"`
	FatherName  string      `json:"fatherName" validate:"required"`
	CNIC        string      `json:"cnic" validate:"required"`
	Phone       string      `json:"phone" validate:"required"`
	Address     string      `json:"address" validate:"required"`
	Role        string      `json:"role" validate:"required,oneof=manager warden cook cleaner security accountant maintenance"`
	Salary      int         `json:"salary" validate:"required,min=0"`
	JoinDate    time.Time   `json:"joinDate"`
	BankAccount null.String `json:"bankAccount"`
}

func (ne *NewEmployee) Validate() error {
	ne.Name = core.CleanString(ne.Name)
	ne.CNIC = core.CleanString(ne.CNIC)
	ne.Phone = core.CleanString(ne.Phone)
	ne.Role = core.CleanString(ne.Role, true)
	return core.Validate.Struct(ne)
}

type UpdateEmployee struct {
	Name        string      `json:"name"`
	FatherName  string      `json:"fatherName"`
	CNIC        string      `json:"cnic"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Role        string      `json:"role" validate:"omitempty,oneof=manager warden cook cleaner security accountant maintenance"`
	Salary      *int        `json:"salary" validate:"omitempty,min=0"`
	Status      string      `json:"status" validate:"omitempty,oneof=active inactive"`
	BankAccount null.String `json:"bankAccount"`
}

func (ue *UpdateEmployee) Validate() error {
	ue.Name = core.CleanString(ue.Name)
	ue.Role = core.CleanString(ue.Role, true)
	return core.Validate.Struct(ue)
}

type NewLeaveRecord struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Type      string    `json:"type" validate:"required,oneof=casual sick annual unpaid"`
	Reason    string    `json:"reason" validate:"required"`
}

func (nl *NewLeaveRecord) Validate() error {
	nl.Reason = core.CleanString(nl.Reason)
	return core.Validate.Struct(nl)
}

// UpdateLeaveRecord moves a leave through its approval lifecycle.
type UpdateLeaveRecord struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

func (ul *UpdateLeaveRecord) Validate() error { return core.Validate.Struct(ul) }

type NewSalaryRecord struct {
	Month      string `json:"month" validate:"required,month"`
	BaseSalary int    `json:"baseSalary" validate:"required,min=0"`
	Deductions int    `json:"deductions" validate:"min=0"`
	Bonus      int    `json:"bonus" validate:"min=0"`
}

func (ns *NewSalaryRecord) Validate() error { return core.Validate.Struct(ns) }

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Role   string `query:"role"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true)
	qf.Role = core.CleanString(qf.Role, true)
}

package employee

import (
	"github.com/trezcool/hostela/core"
)

var (
	ErrNotFound      = core.NewNotFoundError("employee not found")
	ErrLeaveNotFound = core.NewNotFoundError("leave record not found")
)

type (
	Repository interface {
		CreateEmployee(emp Employee) (Employee, error)
		QueryAllEmployees() ([]Employee, error)
		GetEmployeeByID(id string) (Employee, error)
		UpdateEmployee(emp Employee, status string) (Employee, error)
		DeleteEmployee(id string) error

		CreateLeaveRecord(lv LeaveRecord) (LeaveRecord, error)
		QueryLeaveRecords(employeeID string) ([]LeaveRecord, error)
		UpdateLeaveStatus(id, status string) (LeaveRecord, error)

		CreateSalaryRecord(sal SalaryRecord) (SalaryRecord, error)
		QuerySalaryRecords(employeeID string) ([]SalaryRecord, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewEmployee) (Employee, error) {
	emp := Employee{
		Name:        ne.Name,
		FatherName:  ne.FatherName,
		CNIC:        ne.CNIC,
		Phone:       ne.Phone,
		Address:     ne.Address,
		Role:        ne.Role,
		Salary:      ne.Salary,
		JoinDate:    ne.JoinDate,
		Status:      StatusActive,
		BankAccount: ne.BankAccount,
	}
	return svc.repo.CreateEmployee(emp)
}

func (svc *Service) QueryAll() ([]Employee, error) {
	return svc.repo.QueryAllEmployees()
}

func (svc *Service) GetByID(id string) (Employee, error) {
	return svc.repo.GetEmployeeByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Employee, error) {
	employees, err := svc.repo.QueryAllEmployees()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		employees = keep(employees, func(e Employee) bool { return e.Status == filter.Status })
	}
	if filter.Role != "" {
		employees = keep(employees, func(e Employee) bool { return e.Role == filter.Role })
	}
	return core.Search(employees, SearchFields, filter.Search), nil
}

func (svc *Service) Update(id string, ue UpdateEmployee) (Employee, error) {
	emp := Employee{
		ID:          id,
		Name:        ue.Name,
		FatherName:  ue.FatherName,
		CNIC:        ue.CNIC,
		Phone:       ue.Phone,
		Address:     ue.Address,
		Role:        ue.Role,
		BankAccount: ue.BankAccount,
	}
	if ue.Salary != nil {
		emp.Salary = *ue.Salary
	}
	return svc.repo.UpdateEmployee(emp, ue.Status)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteEmployee(id)
}

// Leaves

func (svc *Service) AddLeave(employeeID string, nl NewLeaveRecord) (LeaveRecord, error) {
	if _, err := svc.repo.GetEmployeeByID(employeeID); err != nil {
		return LeaveRecord{}, err
	}
	lv := LeaveRecord{
		EmployeeID: employeeID,
		StartDate:  nl.StartDate,
		EndDate:    nl.EndDate,
		Type:       nl.Type,
		Status:     "pending",
		Reason:     nl.Reason,
	}
	return svc.repo.CreateLeaveRecord(lv)
}

func (svc *Service) Leaves(employeeID string) ([]LeaveRecord, error) {
	if _, err := svc.repo.GetEmployeeByID(employeeID); err != nil {
		return nil, err
	}
	return svc.repo.QueryLeaveRecords(employeeID)
}

func (svc *Service) SetLeaveStatus(id string, ul UpdateLeaveRecord) (LeaveRecord, error) {
	return svc.repo.UpdateLeaveStatus(id, ul.Status)
}

// Salaries

func (svc *Service) AddSalary(employeeID string, ns NewSalaryRecord) (SalaryRecord, error) {
	if _, err := svc.repo.GetEmployeeByID(employeeID); err != nil {
		return SalaryRecord{}, err
	}
	sal := SalaryRecord{
		EmployeeID: employeeID,
		Month:      ns.Month,
		BaseSalary: ns.BaseSalary,
		Deductions: ns.Deductions,
		Bonus:      ns.Bonus,
		NetSalary:  ns.BaseSalary - ns.Deductions + ns.Bonus,
		Status:     "pending",
	}
	return svc.repo.CreateSalaryRecord(sal)
}

func (svc *Service) Salaries(employeeID string) ([]SalaryRecord, error) {
	if _, err := svc.repo.GetEmployeeByID(employeeID); err != nil {
		return nil, err
	}
	return svc.repo.QuerySalaryRecords(employeeID)
}

// TotalMonthlySalaries sums the salary of active employees.
func (svc *Service) TotalMonthlySalaries() (int, error) {
	employees, err := svc.repo.QueryAllEmployees()
	if err != nil {
		return 0, err
	}
	var total int
	for _, emp := range employees {
		if emp.Status == StatusActive {
			total += emp.Salary
		}
	}
	return total, nil
}

func keep(employees []Employee, pred func(Employee) bool) []Employee {
	out := employees[:0:0]
	for _, e := range employees {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

package inmemdb

import (
	"github.com/trezcool/hostela/core/employee"
)

type employeeRepository struct {
	db     *table[employee.Employee]
	leave  *table[employee.LeaveRecord]
	salary *table[employee.SalaryRecord]
}

func NewEmployeeRepository(db *DB) employee.Repository {
	return &employeeRepository{db: db.employee, leave: db.leave, salary: db.salary}
}

func (repo *employeeRepository) CreateEmployee(emp employee.Employee) (employee.Employee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	emp.ID = repo.db.nextID()
	repo.db.insert(emp.ID, &emp)
	return emp, nil
}

func (repo *employeeRepository) QueryAllEmployees() ([]employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *employeeRepository) GetEmployeeByID(id string) (employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if emp, ok := repo.db.get(id); ok {
		return *emp, nil
	}
	return employee.Employee{}, employee.ErrNotFound
}

func (repo *employeeRepository) UpdateEmployee(emp employee.Employee, status string) (employee.Employee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.get(emp.ID)
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	if emp.Name != "" {
		orig.Name = emp.Name
	}
	if emp.FatherName != "" {
		orig.FatherName = emp.FatherName
	}
	if emp.CNIC != "" {
		orig.CNIC = emp.CNIC
	}
	if emp.Phone != "" {
		orig.Phone = emp.Phone
	}
	if emp.Address != "" {
		orig.Address = emp.Address
	}
	if emp.Role != "" {
		orig.Role = emp.Role
	}
	if emp.Salary != 0 {
		orig.Salary = emp.Salary
	}
	if emp.BankAccount.Valid {
		orig.BankAccount = emp.BankAccount
	}
	if status != "" {
		orig.Status = status
	}
	return *orig, nil
}

func (repo *employeeRepository) DeleteEmployee(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if !repo.db.remove(id) {
		return employee.ErrNotFound
	}
	return nil
}

func (repo *employeeRepository) CreateLeaveRecord(lv employee.LeaveRecord) (employee.LeaveRecord, error) {
	repo.leave.Lock()
	defer repo.leave.Unlock()

	lv.ID = repo.leave.nextID()
	repo.leave.insert(lv.ID, &lv)
	return lv, nil
}

func (repo *employeeRepository) QueryLeaveRecords(employeeID string) ([]employee.LeaveRecord, error) {
	repo.leave.RLock()
	defer repo.leave.RUnlock()

	leaves := make([]employee.LeaveRecord, 0)
	for _, lv := range repo.leave.all() {
		if lv.EmployeeID == employeeID {
			leaves = append(leaves, lv)
		}
	}
	return leaves, nil
}

func (repo *employeeRepository) UpdateLeaveStatus(id, status string) (employee.LeaveRecord, error) {
	repo.leave.Lock()
	defer repo.leave.Unlock()

	orig, ok := repo.leave.get(id)
	if !ok {
		return employee.LeaveRecord{}, employee.ErrLeaveNotFound
	}
	if status != "" {
		orig.Status = status
	}
	return *orig, nil
}

func (repo *employeeRepository) CreateSalaryRecord(sal employee.SalaryRecord) (employee.SalaryRecord, error) {
	repo.salary.Lock()
	defer repo.salary.Unlock()

	sal.ID = repo.salary.nextID()
	repo.salary.insert(sal.ID, &sal)
	return sal, nil
}

func (repo *employeeRepository) QuerySalaryRecords(employeeID string) ([]employee.SalaryRecord, error) {
	repo.salary.RLock()
	defer repo.salary.RUnlock()

	salaries := make([]employee.SalaryRecord, 0)
	for _, sal := range repo.salary.all() {
		if sal.EmployeeID == employeeID {
			salaries = append(salaries, sal)
		}
	}
	return salaries, nil
}

package inmemdb

import (
	"github.com/trezcool/hostela/core/resident"
)

type residentRepository struct {
	db *table[resident.Resident]
}

func NewResidentRepository(db *DB) resident.Repository {
	return &residentRepository{db: db.resident}
}

func (repo *residentRepository) CreateResident(res resident.Resident) (resident.Resident, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	res.ID = repo.db.nextID()
	repo.db.insert(res.ID, &res)
	return res, nil
}

func (repo *residentRepository) QueryAllResidents() ([]resident.Resident, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *residentRepository) GetResidentByID(id string) (resident.Resident, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if res, ok := repo.db.get(id); ok {
		return *res, nil
	}
	return resident.Resident{}, resident.ErrNotFound
}

func (repo *residentRepository) UpdateResident(res resident.Resident, status string) (resident.Resident, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.get(res.ID)
	if !ok {
		return resident.Resident{}, resident.ErrNotFound
	}
	if res.Name != "" {
		orig.Name = res.Name
	}
	if res.FatherName != "" {
		orig.FatherName = res.FatherName
	}
	if res.CNIC != "" {
		orig.CNIC = res.CNIC
	}
	if res.Phone != "" {
		orig.Phone = res.Phone
	}
	if res.EmergencyContact != "" {
		orig.EmergencyContact = res.EmergencyContact
	}
	if res.Email.Valid {
		orig.Email = res.Email
	}
	if res.Address != "" {
		orig.Address = res.Address
	}
	if res.City != "" {
		orig.City = res.City
	}
	if res.Occupation != "" {
		orig.Occupation = res.Occupation
	}
	if res.Workplace.Valid {
		orig.Workplace = res.Workplace
	}
	if res.RoomID != "" {
		orig.RoomID = res.RoomID
	}
	if res.BedNumber != 0 {
		orig.BedNumber = res.BedNumber
	}
	if res.SecurityDeposit != 0 {
		orig.SecurityDeposit = res.SecurityDeposit
	}
	if res.MonthlyRent != 0 {
		orig.MonthlyRent = res.MonthlyRent
	}
	if res.Notes.Valid {
		orig.Notes = res.Notes
	}
	if status != "" {
		orig.Status = status
	}
	return *orig, nil
}

func (repo *residentRepository) DeleteResident(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if !repo.db.remove(id) {
		return resident.ErrNotFound
	}
	return nil
}

package resident

import (
	"github.com/trezcool/hostela/core"
)

var ErrNotFound = core.NewNotFoundError("resident not found")

type (
	Repository interface {
		CreateResident(res Resident) (Resident, error)
		QueryAllResidents() ([]Resident, error)
		GetResidentByID(id string) (Resident, error)
		UpdateResident(res Resident, status string) (Resident, error)
		DeleteResident(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nr NewResident) (Resident, error) {
	res := Resident{
		Name:             nr.Name,
		FatherName:       nr.FatherName,
		CNIC:             nr.CNIC,
		Phone:            nr.Phone,
		EmergencyContact: nr.EmergencyContact,
		Email:            nr.Email,
		Address:          nr.Address,
		City:             nr.City,
		Occupation:       nr.Occupation,
		Workplace:        nr.Workplace,
		RoomID:           nr.RoomID,
		BedNumber:        nr.BedNumber,
		JoinDate:         nr.JoinDate,
		Status:           StatusActive,
		SecurityDeposit:  nr.SecurityDeposit,
		MonthlyRent:      nr.MonthlyRent,
		Notes:            nr.Notes,
	}
	return svc.repo.CreateResident(res)
}

func (svc *Service) QueryAll() ([]Resident, error) {
	return svc.repo.QueryAllResidents()
}

func (svc *Service) GetByID(id string) (Resident, error) {
	return svc.repo.GetResidentByID(id)
}

// Filter applies the status/room/city narrowing, then free-text search, preserving
// insertion order. Sorting and pagination are the caller's stages.
func (svc *Service) Filter(filter QueryFilter) ([]Resident, error) {
	residents, err := svc.repo.QueryAllResidents()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		residents = keep(residents, func(r Resident) bool { return r.Status == filter.Status })
	}
	if filter.Room != "" {
		residents = keep(residents, func(r Resident) bool { return r.RoomID == filter.Room })
	}
	if filter.City != "" {
		residents = keep(residents, func(r Resident) bool { return r.City == filter.City })
	}
	return core.Search(residents, SearchFields, filter.Search), nil
}

func (svc *Service) Update(id string, ur UpdateResident) (Resident, error) {
	res := Resident{
		ID:               id,
		Name:             ur.Name,
		FatherName:       ur.FatherName,
		CNIC:             ur.CNIC,
		Phone:            ur.Phone,
		EmergencyContact: ur.EmergencyContact,
		Email:            ur.Email,
		Address:          ur.Address,
		City:             ur.City,
		Occupation:       ur.Occupation,
		Workplace:        ur.Workplace,
		RoomID:           ur.RoomID,
		Notes:            ur.Notes,
	}
	if ur.BedNumber != nil {
		res.BedNumber = *ur.BedNumber
	}
	if ur.SecurityDeposit != nil {
		res.SecurityDeposit = *ur.SecurityDeposit
	}
	if ur.MonthlyRent != nil {
		res.MonthlyRent = *ur.MonthlyRent
	}
	return svc.repo.UpdateResident(res, ur.Status)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteResident(id)
}

func keep(residents []Resident, pred func(Resident) bool) []Resident {
	out := residents[:0:0]
	for _, r := range residents {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

package room

import (
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/resident"
)

var ErrNotFound = core.NewNotFoundError("room not found")

type (
	Repository interface {
		CreateRoom(rm Room) (Room, error)
		QueryAllRooms() ([]Room, error)
		GetRoomByID(id string) (Room, error)
		UpdateRoom(rm Room, hasAC, hasBath, maintenance *bool) (Room, error)
		DeleteRoom(id string) error
	}

	// Service projects occupancy over the resident collection on every read, so
	// occupiedBeds can never drift from the residents actually assigned.
	Service struct {
		repo      Repository
		residents resident.Repository
	}
)

func NewService(repo Repository, residents resident.Repository) *Service {
	return &Service{repo: repo, residents: residents}
}

func (svc *Service) Create(nr NewRoom) (Room, error) {
	rm := Room{
		RoomNumber:      nr.RoomNumber,
		Floor:           nr.Floor,
		Type:            nr.Type,
		Capacity:        nr.Capacity,
		MonthlyRent:     nr.MonthlyRent,
		HasAC:           nr.HasAC,
		HasAttachedBath: nr.HasAttachedBath,
		Amenities:       nr.Amenities,
	}
	rm, err := svc.repo.CreateRoom(rm)
	if err != nil {
		return Room{}, err
	}
	return svc.project(rm)
}

func (svc *Service) QueryAll() ([]Room, error) {
	rooms, err := svc.repo.QueryAllRooms()
	if err != nil {
		return nil, err
	}
	return svc.projectAll(rooms)
}

func (svc *Service) GetByID(id string) (Room, error) {
	rm, err := svc.repo.GetRoomByID(id)
	if err != nil {
		return Room{}, err
	}
	return svc.project(rm)
}

func (svc *Service) Filter(filter QueryFilter) ([]Room, error) {
	rooms, err := svc.QueryAll()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		rooms = keep(rooms, func(r Room) bool { return r.Status == filter.Status })
	}
	if filter.Type != "" {
		rooms = keep(rooms, func(r Room) bool { return r.Type == filter.Type })
	}
	if filter.Floor != nil {
		rooms = keep(rooms, func(r Room) bool { return r.Floor == *filter.Floor })
	}
	return core.Search(rooms, SearchFields, filter.Search), nil
}

func (svc *Service) Update(id string, ur UpdateRoom) (Room, error) {
	rm := Room{
		ID:         id,
		RoomNumber: ur.RoomNumber,
		Type:       ur.Type,
		Amenities:  ur.Amenities,
	}
	if ur.Floor != nil {
		rm.Floor = *ur.Floor
	}
	if ur.Capacity != nil {
		rm.Capacity = *ur.Capacity
	}
	if ur.MonthlyRent != nil {
		rm.MonthlyRent = *ur.MonthlyRent
	}

	var maintenance *bool
	if ur.Status != "" {
		m := ur.Status == StatusMaintenance
		maintenance = &m
	}

	rm, err := svc.repo.UpdateRoom(rm, ur.HasAC, ur.HasAttachedBath, maintenance)
	if err != nil {
		return Room{}, err
	}
	return svc.project(rm)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteRoom(id)
}

// Beds returns the per-bed occupancy map of a room.
func (svc *Service) Beds(id string) ([]Bed, error) {
	rm, err := svc.GetByID(id)
	if err != nil {
		return nil, err
	}
	occupants, err := svc.occupants()
	if err != nil {
		return nil, err
	}

	beds := make([]Bed, 0, rm.Capacity)
	for n := 1; n <= rm.Capacity; n++ {
		bed := Bed{RoomID: rm.ID, BedNumber: n, Status: "vacant"}
		for _, res := range occupants[rm.ID] {
			if res.BedNumber == n {
				bed.Status = "occupied"
				bed.ResidentID = res.ID
				break
			}
		}
		beds = append(beds, bed)
	}
	return beds, nil
}

func (svc *Service) project(rm Room) (Room, error) {
	occupants, err := svc.occupants()
	if err != nil {
		return Room{}, err
	}
	return projectOccupancy(rm, occupants), nil
}

func (svc *Service) projectAll(rooms []Room) ([]Room, error) {
	occupants, err := svc.occupants()
	if err != nil {
		return nil, err
	}
	out := make([]Room, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, projectOccupancy(rm, occupants))
	}
	return out, nil
}

// occupants groups non-checked-out residents by room id.
func (svc *Service) occupants() (map[string][]resident.Resident, error) {
	residents, err := svc.residents.QueryAllResidents()
	if err != nil {
		return nil, errors.Wrap(err, "querying residents for occupancy")
	}
	byRoom := make(map[string][]resident.Resident)
	for _, res := range residents {
		if res.Status == resident.StatusCheckout {
			continue
		}
		byRoom[res.RoomID] = append(byRoom[res.RoomID], res)
	}
	return byRoom, nil
}

func projectOccupancy(rm Room, occupants map[string][]resident.Resident) Room {
	rm.OccupiedBeds = len(occupants[rm.ID])
	switch {
	case rm.UnderMaintenance:
		rm.Status = StatusMaintenance
	case rm.OccupiedBeds >= rm.Capacity:
		rm.Status = StatusFull
	default:
		rm.Status = StatusAvailable
	}
	return rm
}

func keep(rooms []Room, pred func(Room) bool) []Room {
	out := rooms[:0:0]
	for _, r := range rooms {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

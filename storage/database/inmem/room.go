package inmemdb

import (
	"github.com/trezcool/hostela/core/room"
)

type roomRepository struct {
	db *table[room.Room]
}

func NewRoomRepository(db *DB) room.Repository {
	return &roomRepository{db: db.room}
}

func (repo *roomRepository) CreateRoom(rm room.Room) (room.Room, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rm.ID = repo.db.nextID()
	repo.db.insert(rm.ID, &rm)
	return rm, nil
}

func (repo *roomRepository) QueryAllRooms() ([]room.Room, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *roomRepository) GetRoomByID(id string) (room.Room, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if rm, ok := repo.db.get(id); ok {
		return *rm, nil
	}
	return room.Room{}, room.ErrNotFound
}

func (repo *roomRepository) UpdateRoom(rm room.Room, hasAC, hasBath, maintenance *bool) (room.Room, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.get(rm.ID)
	if !ok {
		return room.Room{}, room.ErrNotFound
	}
	if rm.RoomNumber != "" {
		orig.RoomNumber = rm.RoomNumber
	}
	if rm.Floor != 0 {
		orig.Floor = rm.Floor
	}
	if rm.Type != "" {
		orig.Type = rm.Type
	}
	if rm.Capacity != 0 {
		orig.Capacity = rm.Capacity
	}
	if rm.MonthlyRent != 0 {
		orig.MonthlyRent = rm.MonthlyRent
	}
	if rm.Amenities != nil {
		orig.Amenities = rm.Amenities
	}
	if hasAC != nil {
		orig.HasAC = *hasAC
	}
	if hasBath != nil {
		orig.HasAttachedBath = *hasBath
	}
	if maintenance != nil {
		orig.UnderMaintenance = *maintenance
	}
	return *orig, nil
}

func (repo *roomRepository) DeleteRoom(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if !repo.db.remove(id) {
		return room.ErrNotFound
	}
	return nil
}

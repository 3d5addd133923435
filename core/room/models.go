package room

import (
	"github.com/trezcool/hostela/core"
)

// Occupancy statuses. Available/full are read-time projections over the resident
// collection; only maintenance is stored.
const (
	StatusAvailable   = "available"
	StatusFull        = "full"
	StatusMaintenance = "maintenance"
)

// Room types
const (
	TypeSingle    = "single"
	TypeDouble    = "double"
	TypeTriple    = "triple"
	TypeQuad      = "quad"
	TypeDormitory = "dormitory"
)

var Types = []string{TypeSingle, TypeDouble, TypeTriple, TypeQuad, TypeDormitory}

var SearchFields = []string{"roomNumber", "type"}

type Room struct {
	ID              string   `json:"id"`
	RoomNumber      string   `json:"roomNumber"`
	Floor           int      `json:"floor"`
	Type            string   `json:"type"`
	Capacity        int      `json:"capacity"`
	MonthlyRent     int      `json:"monthlyRent"`
	HasAC           bool     `json:"hasAC"`
	HasAttachedBath bool     `json:"hasAttachedBath"`
	Amenities       []string `json:"amenities"`
	UnderMaintenance bool    `json:"-"`

	// Derived per read; never stored.
	OccupiedBeds int    `json:"occupiedBeds"`
	Status       string `json:"status"`
}

// Bed is the per-bed occupancy projection of a Room.
type Bed struct {
	RoomID     string `json:"roomId"`
	BedNumber  int    `json:"bedNumber"`
	Status     string `json:"status"` // vacant | occupied
	ResidentID string `json:"residentId,omitempty"`
}

type NewRoom struct {
	RoomNumber      string   `json:"roomNumber" validate:"required"`
	Floor           int      `json:"floor" validate:"min=0"`
	Type            string   `json:"type" validate:"required,oneof=single double triple quad dormitory"`
	Capacity        int      `json:"capacity" validate:"required,min=1"`
	MonthlyRent     int      `json:"monthlyRent" validate:"required,min=0"`
	HasAC           bool     `json:"hasAC"`
	HasAttachedBath bool     `json:"hasAttachedBath"`
	Amenities       []string `json:"amenities"`
}

func (nr *NewRoom) Validate() error {
	nr.RoomNumber = core.CleanString(nr.RoomNumber)
	nr.Type = core.CleanString(nr.Type, true)
	return core.Validate.Struct(nr)
}

// UpdateRoom defines what may be provided to modify an existing Room.
// Zero-valued fields are left unchanged; Status may only move in and out of
// maintenance (occupancy statuses are computed).
type UpdateRoom struct {
	RoomNumber      string   `json:"roomNumber"`
	Floor           *int     `json:"floor" validate:"omitempty,min=0"`
	Type            string   `json:"type" validate:"omitempty,oneof=single double triple quad dormitory"`
	Capacity        *int     `json:"capacity" validate:"omitempty,min=1"`
	MonthlyRent     *int     `json:"monthlyRent" validate:"omitempty,min=0"`
	HasAC           *bool    `json:"hasAC"`
	HasAttachedBath *bool    `json:"hasAttachedBath"`
	Amenities       []string `json:"amenities"`
	Status          string   `json:"status" validate:"omitempty,oneof=available maintenance"`
}

func (ur *UpdateRoom) Validate() error {
	ur.RoomNumber = core.CleanString(ur.RoomNumber)
	ur.Type = core.CleanString(ur.Type, true)
	return core.Validate.Struct(ur)
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Type   string `query:"type"`
	Floor  *int   `query:"floor"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true)
	qf.Type = core.CleanString(qf.Type, true)
}

package room_test

import (
	"testing"
	"time"

	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
	inmemdb "github.com/trezcool/hostela/storage/database/inmem"
)

func setup(t *testing.T) (*room.Service, *resident.Service) {
	t.Helper()

	db, err := inmemdb.Open(false)
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	resRepo := inmemdb.NewResidentRepository(db)
	return room.NewService(inmemdb.NewRoomRepository(db), resRepo), resident.NewService(resRepo)
}

func createRoom(t *testing.T, svc *room.Service, number string, capacity int) room.Room {
	t.Helper()

	rm, err := svc.Create(room.NewRoom{
		RoomNumber:  number,
		Floor:       1,
		Type:        room.TypeDouble,
		Capacity:    capacity,
		MonthlyRent: 15000,
	})
	if err != nil {
		t.Fatalf("creating room: %v", err)
	}
	return rm
}

func createResident(t *testing.T, svc *resident.Service, name, roomID string, bed int) resident.Resident {
	t.Helper()

	res, err := svc.Create(resident.NewResident{
		Name:             name,
		FatherName:       name + " Senior",
		CNIC:             "35202-0000000-1",
		Phone:            "0300-0000000",
		EmergencyContact: "0301-0000000",
		Address:          "Street 1",
		City:             "Lahore",
		Occupation:       "Student",
		RoomID:           roomID,
		BedNumber:        bed,
		JoinDate:         time.Now(),
		MonthlyRent:      15000,
	})
	if err != nil {
		t.Fatalf("creating resident: %v", err)
	}
	return res
}

func TestService_occupancyProjection(t *testing.T) {
	roomSvc, resSvc := setup(t)

	rm := createRoom(t, roomSvc, "101", 2)
	if rm.Status != room.StatusAvailable || rm.OccupiedBeds != 0 {
		t.Errorf("fresh room = %v/%d beds, want available/0", rm.Status, rm.OccupiedBeds)
	}

	ali := createResident(t, resSvc, "Ali", rm.ID, 1)
	rm, err := roomSvc.GetByID(rm.ID)
	if err != nil {
		t.Fatalf("GetByID(): %v", err)
	}
	if rm.Status != room.StatusAvailable || rm.OccupiedBeds != 1 {
		t.Errorf("half-full room = %v/%d beds, want available/1", rm.Status, rm.OccupiedBeds)
	}

	createResident(t, resSvc, "Bilal", rm.ID, 2)
	rm, _ = roomSvc.GetByID(rm.ID)
	if rm.Status != room.StatusFull || rm.OccupiedBeds != 2 {
		t.Errorf("full room = %v/%d beds, want full/2", rm.Status, rm.OccupiedBeds)
	}

	// checking a resident out frees the bed on the next read
	if _, err = resSvc.Update(ali.ID, resident.UpdateResident{Status: resident.StatusCheckout}); err != nil {
		t.Fatalf("Update(): %v", err)
	}
	rm, _ = roomSvc.GetByID(rm.ID)
	if rm.Status != room.StatusAvailable || rm.OccupiedBeds != 1 {
		t.Errorf("after checkout = %v/%d beds, want available/1", rm.Status, rm.OccupiedBeds)
	}
}

func TestService_maintenanceOverridesOccupancy(t *testing.T) {
	roomSvc, resSvc := setup(t)

	rm := createRoom(t, roomSvc, "101", 2)
	createResident(t, resSvc, "Ali", rm.ID, 1)

	rm, err := roomSvc.Update(rm.ID, room.UpdateRoom{Status: room.StatusMaintenance})
	if err != nil {
		t.Fatalf("Update(): %v", err)
	}
	if rm.Status != room.StatusMaintenance {
		t.Errorf("status = %v, want %v", rm.Status, room.StatusMaintenance)
	}
	if rm.OccupiedBeds != 1 {
		t.Errorf("occupiedBeds = %d, want 1", rm.OccupiedBeds)
	}

	rm, err = roomSvc.Update(rm.ID, room.UpdateRoom{Status: room.StatusAvailable})
	if err != nil {
		t.Fatalf("Update(): %v", err)
	}
	if rm.Status != room.StatusAvailable {
		t.Errorf("status = %v, want %v", rm.Status, room.StatusAvailable)
	}
}

func TestService_Beds(t *testing.T) {
	roomSvc, resSvc := setup(t)

	rm := createRoom(t, roomSvc, "101", 3)
	res := createResident(t, resSvc, "Ali", rm.ID, 2)

	beds, err := roomSvc.Beds(rm.ID)
	if err != nil {
		t.Fatalf("Beds(): %v", err)
	}
	if len(beds) != 3 {
		t.Fatalf("len(beds) = %d, want 3", len(beds))
	}
	for _, bed := range beds {
		switch bed.BedNumber {
		case 2:
			if bed.Status != "occupied" || bed.ResidentID != res.ID {
				t.Errorf("bed 2 = %+v, want occupied by %s", bed, res.ID)
			}
		default:
			if bed.Status != "vacant" || bed.ResidentID != "" {
				t.Errorf("bed %d = %+v, want vacant", bed.BedNumber, bed)
			}
		}
	}

	if _, err = roomSvc.Beds("RM999"); err == nil {
		t.Error("Beds() on unknown room must fail")
	}
}

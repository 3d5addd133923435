package fee_test

import (
	"testing"
	"time"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/resident"
	inmemdb "github.com/trezcool/hostela/storage/database/inmem"
)

func setup(t *testing.T) (*fee.Service, *resident.Service) {
	t.Helper()

	db, err := inmemdb.Open(false)
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	resRepo := inmemdb.NewResidentRepository(db)
	return fee.NewService(inmemdb.NewFeeRepository(db), resRepo), resident.NewService(resRepo)
}

func createResident(t *testing.T, svc *resident.Service, name string) resident.Resident {
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
		RoomID:           "RM001",
		BedNumber:        1,
		JoinDate:         time.Now(),
		MonthlyRent:      15000,
	})
	if err != nil {
		t.Fatalf("creating resident: %v", err)
	}
	return res
}

func createFee(t *testing.T, svc *fee.Service, residentID, month string, amount int) fee.FeeTransaction {
	t.Helper()

	ft, err := svc.Create(fee.NewFeeTransaction{
		ResidentID: residentID,
		Type:       fee.TypeRent,
		Amount:     amount,
		Month:      month,
		DueDate:    time.Now().AddDate(0, 0, 10),
	})
	if err != nil {
		t.Fatalf("creating fee: %v", err)
	}
	return ft
}

func TestService_Create(t *testing.T) {
	feeSvc, resSvc := setup(t)
	res := createResident(t, resSvc, "Ali")

	ft := createFee(t, feeSvc, res.ID, "2026-08", 15000)
	if ft.Status != fee.StatusPending {
		t.Errorf("status = %v, want %v", ft.Status, fee.StatusPending)
	}

	// unknown resident is rejected
	if _, err := feeSvc.Create(fee.NewFeeTransaction{
		ResidentID: "R999",
		Type:       fee.TypeRent,
		Amount:     100,
		Month:      "2026-08",
		DueDate:    time.Now(),
	}); !core.IsNotFound(err) {
		t.Errorf("Create() error = %v, want not-found", err)
	}
}

func TestService_Settle(t *testing.T) {
	feeSvc, resSvc := setup(t)
	res := createResident(t, resSvc, "Ali")

	t.Run("full payment", func(t *testing.T) {
		ft := createFee(t, feeSvc, res.ID, "2026-08", 15000)

		pmt, err := feeSvc.Settle(ft.ID, fee.NewPayment{Amount: 15000, PaymentMethod: fee.MethodCash, ReceivedBy: "Manager"})
		if err != nil {
			t.Fatalf("Settle(): %v", err)
		}
		if pmt.ReceiptNumber == "" {
			t.Error("receipt number not generated")
		}

		refreshed, _ := feeSvc.GetByID(ft.ID)
		if refreshed.Status != fee.StatusPaid {
			t.Errorf("status = %v, want %v", refreshed.Status, fee.StatusPaid)
		}
		if !refreshed.PaidDate.Valid || refreshed.ReceiptNumber.String != pmt.ReceiptNumber {
			t.Errorf("settlement stamps missing: %+v", refreshed)
		}
	})

	t.Run("partial payment", func(t *testing.T) {
		ft := createFee(t, feeSvc, res.ID, "2026-09", 15000)

		if _, err := feeSvc.Settle(ft.ID, fee.NewPayment{Amount: 5000, PaymentMethod: fee.MethodCash, ReceivedBy: "Manager"}); err != nil {
			t.Fatalf("Settle(): %v", err)
		}

		refreshed, _ := feeSvc.GetByID(ft.ID)
		if refreshed.Status != fee.StatusPartial {
			t.Errorf("status = %v, want %v", refreshed.Status, fee.StatusPartial)
		}
		if refreshed.PaidDate.Valid {
			t.Error("partial settle must not stamp paidDate")
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ft := createFee(t, feeSvc, res.ID, "2026-10", 15000)

		if _, err := feeSvc.Settle(ft.ID, fee.NewPayment{Amount: 15000, PaymentMethod: fee.MethodCash, ReceivedBy: "Manager"}); err != nil {
			t.Fatalf("Settle(): %v", err)
		}
		_, err := feeSvc.Settle(ft.ID, fee.NewPayment{Amount: 15000, PaymentMethod: fee.MethodCash, ReceivedBy: "Manager"})
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("Settle() error = %v, want validation error", err)
		}
	})

	t.Run("unknown fee", func(t *testing.T) {
		_, err := feeSvc.Settle("FEE9999", fee.NewPayment{Amount: 100, PaymentMethod: fee.MethodCash, ReceivedBy: "Manager"})
		if !core.IsNotFound(err) {
			t.Errorf("Settle() error = %v, want not-found", err)
		}
	})
}

func TestService_danglingResidentRendersUnknown(t *testing.T) {
	feeSvc, resSvc := setup(t)
	res := createResident(t, resSvc, "Ali")
	ft := createFee(t, feeSvc, res.ID, "2026-08", 15000)

	if err := resSvc.Delete(res.ID); err != nil {
		t.Fatalf("Delete(): %v", err)
	}

	// deleting the resident leaves its fees dangling
	if _, err := feeSvc.GetByID(ft.ID); err != nil {
		t.Fatalf("GetByID(): %v", err)
	}
	rows, err := feeSvc.Filter(fee.QueryFilter{})
	if err != nil {
		t.Fatalf("Filter(): %v", err)
	}
	if len(rows) != 1 || rows[0].ResidentName != "Unknown" {
		t.Errorf("rows = %+v, want a single row named Unknown", rows)
	}
}

func TestService_stats(t *testing.T) {
	feeSvc, resSvc := setup(t)
	res := createResident(t, resSvc, "Ali")

	july := createFee(t, feeSvc, res.ID, "2026-07", 15000)
	createFee(t, feeSvc, res.ID, "2026-08", 15000)
	createFee(t, feeSvc, res.ID, "2026-08", 8000)
	if _, err := feeSvc.Settle(july.ID, fee.NewPayment{Amount: 15000, PaymentMethod: fee.MethodBank, ReceivedBy: "Manager"}); err != nil {
		t.Fatalf("Settle(): %v", err)
	}

	stats, err := feeSvc.MonthlyStats()
	if err != nil {
		t.Fatalf("MonthlyStats(): %v", err)
	}
	want := []fee.MonthlyStat{
		{Month: "2026-07", Collected: 15000},
		{Month: "2026-08", Pending: 23000},
	}
	if len(stats) != len(want) {
		t.Fatalf("len(stats) = %d, want %d", len(stats), len(want))
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}

	total, err := feeSvc.TotalPendingAmount()
	if err != nil {
		t.Fatalf("TotalPendingAmount(): %v", err)
	}
	if total != 23000 {
		t.Errorf("TotalPendingAmount() = %d, want 23000", total)
	}

	collected, err := feeSvc.CollectedInMonth("2026-07")
	if err != nil {
		t.Fatalf("CollectedInMonth(): %v", err)
	}
	if collected != 15000 {
		t.Errorf("CollectedInMonth() = %d, want 15000", collected)
	}
}

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/user"
)

func createFee(t *testing.T, residentID, typ, month string, amount int) fee.FeeTransaction {
	t.Helper()

	ft, err := feeSvc.Create(fee.NewFeeTransaction{
		ResidentID: residentID,
		Type:       typ,
		Amount:     amount,
		Month:      month,
		DueDate:    time.Now().AddDate(0, 0, 10),
	})
	if err != nil {
		t.Fatalf("creating fee: %v", err)
	}
	return ft
}

func Test_feeApi_query(t *testing.T) {
	resetAppT(t)

	admin := createUser(t, "Admin", "admin", "admin@test.pk", "", user.RoleAdmin, true)
	adminToken := getToken(t, admin)

	rm := createRoom(t, "101", 1, 2, 15000)
	ali := createResident(t, "Ali Raza", "Lahore", rm.ID, 1, 15000)
	bilal := createResident(t, "Bilal Khan", "Multan", rm.ID, 2, 15000)

	rent1 := createFee(t, ali.ID, fee.TypeRent, "2026-08", 15000)
	rent2 := createFee(t, bilal.ID, fee.TypeRent, "2026-08", 15000)
	messFee := createFee(t, ali.ID, fee.TypeMess, "2026-08", 8000)

	feeRow := func(ft fee.FeeTransaction, name string) fee.Row {
		return fee.Row{FeeTransaction: ft, ResidentName: name}
	}

	tests := []httpTest{
		{name: "Auth required", path: "/v1/fees", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Get all", path: "/v1/fees", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(rent1, ali.Name), feeRow(rent2, bilal.Name), feeRow(messFee, ali.Name)),
		},
		{
			name: "filter by type", path: "/v1/fees?type=mess", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(messFee, ali.Name)),
		},
		{
			name: "filter by resident", path: "/v1/fees?resident=" + bilal.ID, token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(rent2, bilal.Name)),
		},
		{
			name: "search by resident name", path: "/v1/fees?search=bilal", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(rent2, bilal.Name)),
		},
		{
			name: "ordering by amount", path: "/v1/fees?ordering=amount", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(messFee, ali.Name), feeRow(rent1, ali.Name), feeRow(rent2, bilal.Name)),
		},
		{
			name: "ordering by amount descending", path: "/v1/fees?ordering=-amount", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(rent1, ali.Name), feeRow(rent2, bilal.Name), feeRow(messFee, ali.Name)),
		},
		{
			name: "ordering by resident name", path: "/v1/fees?ordering=residentName", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, feeRow(rent1, ali.Name), feeRow(messFee, ali.Name), feeRow(rent2, bilal.Name)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_feeApi_settle(t *testing.T) {
	resetAppT(t)

	admin := createUser(t, "Admin", "admin", "admin@test.pk", "", user.RoleAdmin, true)
	adminToken := getToken(t, admin)

	rm := createRoom(t, "101", 1, 2, 15000)
	ali := createResident(t, "Ali Raza", "Lahore", rm.ID, 1, 15000)

	payBody := func(amount int) []byte {
		return []byte(fmt.Sprintf(`{"amount": %d, "paymentMethod": "cash", "receivedBy": "Manager"}`, amount))
	}

	t.Run("full payment marks fee paid", func(t *testing.T) {
		ft := createFee(t, ali.ID, fee.TypeRent, "2026-08", 15000)

		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/"+ft.ID+"/payments", adminToken, payBody(15000))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var pmt fee.Payment
		if err := json.Unmarshal(rec.Body.Bytes(), &pmt); err != nil {
			t.Fatalf("unmarshalling payment: %v", err)
		}
		if pmt.FeeTransactionID != ft.ID || pmt.Amount != 15000 {
			t.Errorf("unexpected payment: %+v", pmt)
		}
		if pmt.ReceiptNumber == "" {
			t.Error("receipt number not stamped")
		}

		refreshed, err := feeSvc.GetByID(ft.ID)
		if err != nil {
			t.Fatalf("GetByID(): %v", err)
		}
		if refreshed.Status != fee.StatusPaid {
			t.Errorf("status = %v; want %v", refreshed.Status, fee.StatusPaid)
		}
		if !refreshed.PaidDate.Valid {
			t.Error("paidDate not stamped")
		}
		if refreshed.ReceiptNumber.String != pmt.ReceiptNumber {
			t.Errorf("receiptNumber = %v; want %v", refreshed.ReceiptNumber.String, pmt.ReceiptNumber)
		}
	})

	t.Run("partial payment marks fee partial without paidDate", func(t *testing.T) {
		ft := createFee(t, ali.ID, fee.TypeRent, "2026-09", 15000)

		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/"+ft.ID+"/payments", adminToken, payBody(5000))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		refreshed, err := feeSvc.GetByID(ft.ID)
		if err != nil {
			t.Fatalf("GetByID(): %v", err)
		}
		if refreshed.Status != fee.StatusPartial {
			t.Errorf("status = %v; want %v", refreshed.Status, fee.StatusPartial)
		}
		if refreshed.PaidDate.Valid {
			t.Error("paidDate must stay empty on partial settle")
		}
	})

	t.Run("settling a paid fee is rejected", func(t *testing.T) {
		ft := createFee(t, ali.ID, fee.TypeRent, "2026-10", 15000)

		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/"+ft.ID+"/payments", adminToken, payBody(15000))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusCreated)
		}

		req, rec = newAuthRequest(http.MethodPost, "/v1/fees/"+ft.ID+"/payments", adminToken, payBody(15000))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown fee is 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/FEE9999/payments", adminToken, payBody(100))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})
}

func Test_feeApi_stats(t *testing.T) {
	resetAppT(t)

	admin := createUser(t, "Admin", "admin", "admin@test.pk", "", user.RoleAdmin, true)
	adminToken := getToken(t, admin)

	rm := createRoom(t, "101", 1, 2, 15000)
	ali := createResident(t, "Ali Raza", "Lahore", rm.ID, 1, 15000)

	paid := createFee(t, ali.ID, fee.TypeRent, "2026-07", 15000)
	createFee(t, ali.ID, fee.TypeRent, "2026-08", 15000) // stays pending
	if _, err := feeSvc.Settle(paid.ID, fee.NewPayment{Amount: 15000, PaymentMethod: fee.MethodCash, ReceivedBy: "Manager"}); err != nil {
		t.Fatalf("Settle(): %v", err)
	}

	t.Run("monthly stats", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []fee.MonthlyStat{
				{Month: "2026-07", Collected: 15000},
				{Month: "2026-08", Pending: 15000},
			}),
		}
		req, rec := newAuthRequest(http.MethodGet, "/v1/fees/stats/monthly", adminToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("pending total", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: []byte(`{"total": 15000}`)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/fees/stats/pending-total", adminToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

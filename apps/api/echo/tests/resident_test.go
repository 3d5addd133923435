package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/user"
)

type resRow struct {
	resident.Resident
	RoomNumber string `json:"roomNumber"`
}

func row(res resident.Resident, roomNumber string) resRow {
	return resRow{Resident: res, RoomNumber: roomNumber}
}

func Test_residentApi_query(t *testing.T) {
	resetAppT(t)

	admin := createUser(t, "Admin", "admin", "admin@test.pk", "", user.RoleAdmin, true)
	adminToken := getToken(t, admin)

	rm1 := createRoom(t, "101", 1, 2, 15000)
	rm2 := createRoom(t, "102", 1, 2, 18000)

	ali := createResident(t, "Ali Raza", "Lahore", rm1.ID, 1, 15000)
	bilal := createResident(t, "Bilal Khan", "Multan", rm1.ID, 2, 15000)
	danish := createResident(t, "Danish Ahmed", "Lahore", rm2.ID, 1, 18000)

	path := func(params url.Values) string { return "/v1/residents?" + params.Encode() }

	tests := []httpTest{
		{name: "Auth required", path: "/v1/residents", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Get all", path: "/v1/residents", token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, row(ali, "101"), row(bilal, "101"), row(danish, "102")),
		},
		{
			name: "search", path: path(url.Values{"search": {"khan"}}), token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, row(bilal, "101")),
		},
		{
			name: "search by city", path: path(url.Values{"search": {"multan"}}), token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, row(bilal, "101")),
		},
		{
			name: "search (unknown)", path: path(url.Values{"search": {"lol"}}), token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t),
		},
		{
			name: "filter by city", path: path(url.Values{"city": {"Lahore"}}), token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, row(ali, "101"), row(danish, "102")),
		},
		{
			name: "filter by room", path: path(url.Values{"room": {rm1.ID}}), token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, row(ali, "101"), row(bilal, "101")),
		},
		{
			name: "ordering by name desc", path: path(url.Values{"ordering": {"-name"}}), token: adminToken, wantCode: http.StatusOK,
			wantData: singlePage(t, row(danish, "102"), row(bilal, "101"), row(ali, "101")),
		},
		{
			name: "pagination", path: path(url.Values{"page": {"2"}, "page_size": {"2"}}), token: adminToken, wantCode: http.StatusOK,
			wantData: marchallPage(t, 3, 2, 2, 2, row(danish, "102")),
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

func Test_residentApi_crud(t *testing.T) {
	resetAppT(t)

	admin := createUser(t, "Admin", "admin", "admin@test.pk", "", user.RoleAdmin, true)
	staff := createUser(t, "Staff", "staff", "staff@test.pk", "", user.RoleStaff, true)
	adminToken := getToken(t, admin)
	staffToken := getToken(t, staff)

	rm := createRoom(t, "101", 1, 2, 15000)
	res := createResident(t, "Ali Raza", "Lahore", rm.ID, 1, 15000)

	t.Run("create requires mandatory fields", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/residents", adminToken, []byte(`{"name": "Lol"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("retrieve", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, res)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/residents/"+res.ID, adminToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("retrieve unknown is 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/residents/R999", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/residents/"+res.ID, adminToken, []byte(`{"city": "Karachi"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
		}
		refreshed, err := resSvc.GetByID(res.ID)
		if err != nil {
			t.Fatalf("GetByID(): %v", err)
		}
		if refreshed.City != "Karachi" {
			t.Errorf("city = %v; want Karachi", refreshed.City)
		}
		if refreshed.Name != res.Name || refreshed.MonthlyRent != res.MonthlyRent {
			t.Error("untouched fields changed")
		}
	})

	t.Run("delete requires admin", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/residents/"+res.ID, staffToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("delete then delete again is 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/residents/"+res.ID, adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusNoContent)
		}

		req, rec = newAuthRequest(http.MethodDelete, "/v1/residents/"+res.ID, adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})
}

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/hostela/apps/api/echo"
	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
	"github.com/trezcool/hostela/core/user"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	t.Helper()

	claims := GetUserClaims(usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

// marchallPage wraps objs in the list envelope all list endpoints reply with.
func marchallPage(t *testing.T, count, page, pageSize, totalPages int, objs ...interface{}) []byte {
	t.Helper()

	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(map[string]interface{}{
		"count":       count,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
		"results":     objs,
	})
	if err != nil {
		t.Fatalf("marchallPage(): %v", err)
	}
	return data
}

// singlePage is the common case: all objs fit on the first default-sized page.
func singlePage(t *testing.T, objs ...interface{}) []byte {
	t.Helper()

	totalPages := 1
	if len(objs) == 0 {
		totalPages = 0
	}
	return marchallPage(t, len(objs), 1, 10, totalPages, objs...)
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(tt.wantData)),
			B:        difflib.SplitLines(rec.Body.String()),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		t.Errorf("failed! data mismatch:\n%s", diff)
	}
}

// fixture helpers

func createUser(t *testing.T, name, uname, email, pwd, role string, isActive bool) user.User {
	t.Helper()

	usr := user.User{
		Username: uname,
		Name:     name,
		Email:    email,
		Role:     role,
		IsActive: isActive,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("SetPassword(): %v", err)
		}
	}
	usr, err := usrRepo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	return usr
}

func createRoom(t *testing.T, number string, floor, capacity, rent int) room.Room {
	t.Helper()

	rm, err := roomSvc.Create(room.NewRoom{
		RoomNumber:  number,
		Floor:       floor,
		Type:        room.TypeDouble,
		Capacity:    capacity,
		MonthlyRent: rent,
	})
	if err != nil {
		t.Fatalf("creating room: %v", err)
	}
	return rm
}

func createResident(t *testing.T, name, city, roomID string, bed, rent int) resident.Resident {
	t.Helper()

	res, err := resSvc.Create(resident.NewResident{
		Name:             name,
		FatherName:       name + " Senior",
		CNIC:             fmt.Sprintf("35202-%07d-1", bed),
		Phone:            "0300-0000000",
		EmergencyContact: "0301-0000000",
		Address:          "Street 1",
		City:             city,
		Occupation:       "Student",
		RoomID:           roomID,
		BedNumber:        bed,
		JoinDate:         time.Now().AddDate(0, -2, 0),
		MonthlyRent:      rent,
	})
	if err != nil {
		t.Fatalf("creating resident: %v", err)
	}
	return res
}

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/trezcool/hostela/core/user"
)

type loginResponse struct {
	User         user.User `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

func Test_authApi_login(t *testing.T) {
	resetAppT(t)

	usr := createUser(t, "Admin", "admin", "admin@test.pk", "LahoreGate#1", user.RoleAdmin, true)
	sleeper := createUser(t, "Gone", "gone", "gone@test.pk", "LahoreGate#1", user.RoleStaff, false)

	login := func(email, pwd string) *http.Response {
		body := []byte(fmt.Sprintf(`{"email": %q, "password": %q}`, email, pwd))
		req, rec := newRequest(http.MethodPost, "/v1/auth/login", body)
		app.ServeHTTP(rec, req)
		return rec.Result()
	}

	t.Run("ok", func(t *testing.T) {
		res := login(usr.Email, "LahoreGate#1")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("code = %v; want %v", res.StatusCode, http.StatusOK)
		}
		var data loginResponse
		if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if data.AccessToken == "" || data.RefreshToken == "" {
			t.Error("token pair missing")
		}
		if data.User.ID != usr.ID {
			t.Errorf("user.id = %v; want %v", data.User.ID, usr.ID)
		}

		refreshed, err := usrRepo.GetUserByID(usr.ID)
		if err != nil {
			t.Fatalf("GetUserByID(): %v", err)
		}
		if !refreshed.LastLogin.Valid {
			t.Error("lastLogin not updated")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if res := login("lol@test.pk", "LahoreGate#1"); res.StatusCode != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", res.StatusCode, http.StatusBadRequest)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if res := login(usr.Email, "lol"); res.StatusCode != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", res.StatusCode, http.StatusBadRequest)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		if res := login(sleeper.Email, "LahoreGate#1"); res.StatusCode != http.StatusForbidden {
			t.Errorf("code = %v; want %v", res.StatusCode, http.StatusForbidden)
		}
	})
}

func Test_authApi_me(t *testing.T) {
	resetAppT(t)

	usr := createUser(t, "Staff", "staff", "staff@test.pk", "LahoreGate#1", user.RoleStaff, true)

	t.Run("auth required", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/auth/me")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("ok", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, usr)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/auth/me", getToken(t, usr))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_authApi_refresh(t *testing.T) {
	resetAppT(t)

	usr := createUser(t, "Staff", "staff", "staff@test.pk", "LahoreGate#1", user.RoleStaff, true)

	t.Run("ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/auth/refresh", getToken(t, usr))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var data loginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if data.AccessToken == "" || data.RefreshToken == "" {
			t.Error("token pair missing")
		}
	})

	t.Run("auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/auth/refresh")
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("logout always succeeds", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/auth/logout", getToken(t, usr))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusOK)
		}
	})
}

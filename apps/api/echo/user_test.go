package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/user"
)

func TestUserApi_register(t *testing.T) {
	app, svc := setup(t)
	createUser(t, svc, "Taken", "taken@test.lcl", false)

	tests := []httpTest{
		{
			name: "empty body", wantCode: http.StatusBadRequest,
			body: marchallObj(t, map[string]string{}),
		},
		{
			name: "password mismatch", wantCode: http.StatusBadRequest,
			body: marchallObj(t, map[string]string{
				"name": "Awa", "email": "awa@test.lcl",
				"password": testPassword, "password_confirm": testPassword + "!",
			}),
		},
		{
			name: "weak password", wantCode: http.StatusBadRequest,
			body: marchallObj(t, map[string]string{
				"name": "Awa", "email": "awa@test.lcl",
				"password": "1234", "password_confirm": "1234",
			}),
		},
		{
			name: "duplicate email", wantCode: http.StatusBadRequest,
			body: marchallObj(t, map[string]string{
				"name": "Copy Cat", "email": "taken@test.lcl",
				"password": testPassword, "password_confirm": testPassword,
			}),
		},
		{
			name: "valid", wantCode: http.StatusCreated,
			body: marchallObj(t, map[string]string{
				"name": "Awa Ndiaye", "email": "Awa@Test.lcl",
				"password": testPassword, "password_confirm": testPassword,
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/register", tt.body)
			app.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusCreated {
				return
			}
			var resp AuthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("json.Unmarshal(): %v", err)
			}
			if resp.Token == "" {
				t.Error("expected a token")
			}
			if resp.User.Email != "awa@test.lcl" {
				t.Errorf("Email = %q; want lowercased", resp.User.Email)
			}
			if resp.User.SubscriptionStatus != user.StatusFree {
				t.Errorf("SubscriptionStatus = %q; want %q", resp.User.SubscriptionStatus, user.StatusFree)
			}
		})
	}
}

func TestUserApi_login(t *testing.T) {
	app, svc := setup(t)
	usr := createUser(t, svc, "Sam Riley", "sam@test.lcl", false)

	tests := []httpTest{
		{
			name: "unknown email", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, LoginRequest{Email: "ghost@test.lcl", Password: testPassword}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "wrong password", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, LoginRequest{Email: usr.Email, Password: "nope"}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("valid", func(t *testing.T) {
		body := marchallObj(t, LoginRequest{Email: "Sam@Test.lcl", Password: testPassword})
		req, rec := newRequest(http.MethodPost, "/v1/users/login", body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var resp AuthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a token")
		}
		if resp.User.ID != usr.ID {
			t.Errorf("ID = %q; want %q", resp.User.ID, usr.ID)
		}
		if resp.User.LastLogin.IsZero() {
			t.Error("expected LastLogin to be set")
		}
	})
}

func TestUserApi_me(t *testing.T) {
	app, svc := setup(t)
	usr := createUser(t, svc, "Sam Riley", "sam@test.lcl", false)

	t.Run("requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/users/me")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/users/me", getToken(t, usr))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var got user.User
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if got.ID != usr.ID || got.Email != usr.Email {
			t.Errorf("got %v; want %v", got, usr)
		}
	})

	t.Run("update", func(t *testing.T) {
		body := marchallObj(t, map[string]string{"name": "Sam R."})
		req, rec := newAuthRequest(http.MethodPut, "/v1/users/me", getToken(t, usr), body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var got user.User
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if got.Name != "Sam R." {
			t.Errorf("Name = %q; want %q", got.Name, "Sam R.")
		}
		if got.Email != usr.Email {
			t.Errorf("Email = %q; want unchanged %q", got.Email, usr.Email)
		}
	})
}

func TestUserApi_subscription(t *testing.T) {
	app, svc := setup(t)
	usr := createUser(t, svc, "Sam Riley", "sam@test.lcl", false)
	token := getToken(t, usr)

	t.Run("requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodPost, "/v1/subscription/upgrade")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("status free", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/subscription/status", token)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var resp SubscriptionStatusResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if resp.Status != user.StatusFree || resp.EndDate != nil {
			t.Errorf("got %+v; want free with no end date", resp)
		}
	})

	t.Run("upgrade", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/subscription/upgrade", token)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var resp AuthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if resp.User.SubscriptionStatus != user.StatusPremium {
			t.Errorf("SubscriptionStatus = %q; want %q", resp.User.SubscriptionStatus, user.StatusPremium)
		}
		if resp.User.SubscriptionEndDate == nil {
			t.Fatal("expected an end date")
		}
		wantEnd := time.Now().Add(core.Conf.SubscriptionPeriod)
		if gap := wantEnd.Sub(*resp.User.SubscriptionEndDate); gap < -time.Minute || gap > time.Minute {
			t.Errorf("SubscriptionEndDate = %v; want ~%v", resp.User.SubscriptionEndDate, wantEnd)
		}
		if resp.Token == "" {
			t.Error("expected a refreshed token")
		}
	})

	t.Run("status premium", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/subscription/status", token)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var resp SubscriptionStatusResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if resp.Status != user.StatusPremium || resp.EndDate == nil {
			t.Errorf("got %+v; want premium with an end date", resp)
		}
	})
}

func TestUserApi_tokenRefresh(t *testing.T) {
	app, svc := setup(t)
	usr := createUser(t, svc, "Sam Riley", "sam@test.lcl", false)

	req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", getToken(t, usr))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal(): %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestUserApi_logout(t *testing.T) {
	app, svc := setup(t)
	usr := createUser(t, svc, "Sam Riley", "sam@test.lcl", false)

	tt := httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, SuccessResponse{Success: "Signed out."}),
	}
	req, rec := newAuthRequest(http.MethodPost, "/v1/users/logout", getToken(t, usr))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func TestUserApi_passwordReset(t *testing.T) {
	app, svc := setup(t)
	createUser(t, svc, "Sam Riley", "sam@test.lcl", false)

	// the response never discloses whether the account exists
	want := marchallObj(t, SuccessResponse{
		Success: "If the email address supplied is associated with an active account on this system, " +
			"an email will arrive in your inbox shortly with instructions to reset your password.",
	})
	for _, email := range []string{"sam@test.lcl", "ghost@test.lcl"} {
		tt := httpTest{name: email, wantCode: http.StatusOK, wantData: want}
		t.Run(tt.name, func(t *testing.T) {
			body := marchallObj(t, PasswordResetRequest{Email: email})
			req, rec := newRequest(http.MethodPost, "/v1/users/password-reset", body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

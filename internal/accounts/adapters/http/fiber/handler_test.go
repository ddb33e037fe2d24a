package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/accounts/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeAuthUseCase struct {
	SignUpFn     func(ctx context.Context, in usecase.SignUpInput) (*usecase.AuthResult, error)
	SignInFn     func(ctx context.Context, in usecase.SignInInput) (*usecase.AuthResult, error)
	SignOutFn    func(ctx context.Context, s domain.Session) error
	AuthFn       func(ctx context.Context, token string) (domain.Session, error)
	lastSignUp   usecase.SignUpInput
	lastSignOut  domain.Session
	lastToken    string
	signOutCalls int
}

func (f *fakeAuthUseCase) SignUp(ctx context.Context, in usecase.SignUpInput) (*usecase.AuthResult, error) {
	f.lastSignUp = in
	if f.SignUpFn != nil {
		return f.SignUpFn(ctx, in)
	}
	return &usecase.AuthResult{}, nil
}

func (f *fakeAuthUseCase) SignIn(ctx context.Context, in usecase.SignInInput) (*usecase.AuthResult, error) {
	if f.SignInFn != nil {
		return f.SignInFn(ctx, in)
	}
	return &usecase.AuthResult{}, nil
}

func (f *fakeAuthUseCase) SignOut(ctx context.Context, s domain.Session) error {
	f.signOutCalls++
	f.lastSignOut = s
	if f.SignOutFn != nil {
		return f.SignOutFn(ctx, s)
	}
	return nil
}

func (f *fakeAuthUseCase) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	f.lastToken = token
	if f.AuthFn != nil {
		return f.AuthFn(ctx, token)
	}
	return domain.Session{}, usecase.ErrUnauthenticated
}

func setupTestApp(uc *fakeAuthUseCase) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(uc)

	app.Post("/auth/signup", h.SignUp)
	app.Post("/auth/signin", h.SignIn)
	app.Get("/auth/session", RequireSession(uc), h.Session)
	app.Post("/auth/signout", RequireSession(uc), h.SignOut)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func testSession() domain.Session {
	return domain.Session{
		UserID:    "u-1",
		Email:     "climber@example.com",
		Admin:     true,
		TokenID:   "tok-1",
		ExpiresAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

// ---- SIGN UP ----

func TestSignUp_Created(t *testing.T) {
	uc := &fakeAuthUseCase{
		SignUpFn: func(ctx context.Context, in usecase.SignUpInput) (*usecase.AuthResult, error) {
			return &usecase.AuthResult{Token: "jwt", Session: testSession()}, nil
		},
	}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodPost, "/auth/signup", "", SignUpRequest{
		Email:     "climber@example.com",
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Peak",
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", resp.StatusCode, body)
	}
	if uc.lastSignUp.FirstName != "Ada" || uc.lastSignUp.LastName != "Peak" {
		t.Errorf("names not forwarded: %+v", uc.lastSignUp)
	}

	var out AuthResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Token != "jwt" || out.Session.UserID != "u-1" || !out.Session.Admin {
		t.Errorf("unexpected response: %+v", out)
	}
}

func TestSignUp_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid", fmt.Errorf("%w: email is required", usecase.ErrInvalidSignUp), http.StatusBadRequest, "invalid_sign_up"},
		{"taken", usecase.ErrEmailTaken, http.StatusConflict, "email_taken"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeAuthUseCase{
				SignUpFn: func(ctx context.Context, in usecase.SignUpInput) (*usecase.AuthResult, error) {
					return nil, tc.err
				},
			}
			app := setupTestApp(uc)

			resp, body := doRequest(t, app, http.MethodPost, "/auth/signup", "", SignUpRequest{Email: "x"})
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d (body: %s)", tc.status, resp.StatusCode, body)
			}

			var out ErrorResponse
			_ = json.Unmarshal(body, &out)
			if out.Error != tc.code {
				t.Errorf("expected error code %q, got %q", tc.code, out.Error)
			}
		})
	}
}

func TestSignUp_InvalidJSON(t *testing.T) {
	app := setupTestApp(&fakeAuthUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

// ---- SIGN IN ----

func TestSignIn_InvalidCredentials(t *testing.T) {
	uc := &fakeAuthUseCase{
		SignInFn: func(ctx context.Context, in usecase.SignInInput) (*usecase.AuthResult, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodPost, "/auth/signin", "", SignInRequest{Email: "a@b.c", Password: "nope"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body: %s)", resp.StatusCode, body)
	}
}

func TestSignIn_OK(t *testing.T) {
	uc := &fakeAuthUseCase{
		SignInFn: func(ctx context.Context, in usecase.SignInInput) (*usecase.AuthResult, error) {
			if in.Email != "a@b.c" || in.Password != "pw1234" {
				t.Errorf("unexpected input: %+v", in)
			}
			return &usecase.AuthResult{Token: "jwt", Session: testSession()}, nil
		},
	}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodPost, "/auth/signin", "", SignInRequest{Email: "a@b.c", Password: "pw1234"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}
}

// ---- SESSION ----

func TestSession_MissingToken(t *testing.T) {
	uc := &fakeAuthUseCase{}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, http.MethodGet, "/auth/session", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if uc.lastToken != "" {
		t.Errorf("expected empty token, got %q", uc.lastToken)
	}
}

func TestSession_ReturnsIdentity(t *testing.T) {
	uc := &fakeAuthUseCase{
		AuthFn: func(ctx context.Context, token string) (domain.Session, error) {
			return testSession(), nil
		},
	}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodGet, "/auth/session", "abc.def", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}
	if uc.lastToken != "abc.def" {
		t.Errorf("expected bearer token to be forwarded, got %q", uc.lastToken)
	}

	var out SessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Email != "climber@example.com" {
		t.Errorf("unexpected email %q", out.Email)
	}
}

func TestSession_LookupFailure(t *testing.T) {
	uc := &fakeAuthUseCase{
		AuthFn: func(ctx context.Context, token string) (domain.Session, error) {
			return domain.Session{}, errors.New("db down")
		},
	}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, http.MethodGet, "/auth/session", "abc", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

// ---- SIGN OUT ----

func TestSignOut_RevokesSession(t *testing.T) {
	uc := &fakeAuthUseCase{
		AuthFn: func(ctx context.Context, token string) (domain.Session, error) {
			return testSession(), nil
		},
	}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/signout", "abc", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if uc.signOutCalls != 1 || uc.lastSignOut.TokenID != "tok-1" {
		t.Errorf("expected session tok-1 to be revoked, got %+v (calls=%d)", uc.lastSignOut, uc.signOutCalls)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}

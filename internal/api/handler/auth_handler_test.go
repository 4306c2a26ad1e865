package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, username, password string) (string, *domain.User, error)
	requestFn  func(ctx context.Context, email string) error
	resetFn    func(ctx context.Context, token, password string) error
	profileFn  func(ctx context.Context, username string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, username, password)
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.requestFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, password string) error {
	return s.resetFn(ctx, token, password)
}

func (s *stubAuthService) Profile(ctx context.Context, username string) (*domain.User, error) {
	return s.profileFn(ctx, username)
}

type stubAddressService struct {
	saveFn   func(ctx context.Context, userID string, in ports.AddressInput) (*domain.SavedAddress, error)
	listFn   func(ctx context.Context, userID string) ([]domain.SavedAddress, error)
	deleteFn func(ctx context.Context, userID, id string) error
}

func (s *stubAddressService) Save(ctx context.Context, userID string, in ports.AddressInput) (*domain.SavedAddress, error) {
	return s.saveFn(ctx, userID, in)
}

func (s *stubAddressService) List(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
	return s.listFn(ctx, userID)
}

func (s *stubAddressService) Delete(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

// --- helpers ---

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context) {
	c.Set("user_id", "user-1")
	c.Set("username", "kcantu01")
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}

func requireRequestError(t *testing.T, err error, contains string) {
	t.Helper()
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if !strings.Contains(re.Error(), contains) {
		t.Fatalf("expected %q in %q", contains, re.Error())
	}
}

const signupBody = `{"first_name":"Kasey","last_name":"Cantu","email":"kasey@example.com",` +
	`"username":"kcantu01","password":"s3cretpass","confirm_password":"s3cretpass"}`

// --- Signup ---

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "kcantu01" || in.Email != "kasey@example.com" || in.FirstName != "Kasey" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "user-1", Username: in.Username, Email: in.Email}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	c, rec := newTestContext(http.MethodPost, "/auth/signup", signupBody)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "kcantu01" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestAuthHandler_Signup_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	c, _ := newTestContext(http.MethodPost, "/auth/signup", signupBody)
	if err := h.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Signup_PasswordMismatch(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	body := strings.Replace(signupBody, `"confirm_password":"s3cretpass"`, `"confirm_password":"different1"`, 1)
	c, _ := newTestContext(http.MethodPost, "/auth/signup", body)
	requireRequestError(t, h.Signup(c), "confirm_password must match Password")
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubAddressService{})

	c, _ := newTestContext(http.MethodPost, "/auth/signup", "not-json")
	requireHTTPError(t, h.Signup(c), http.StatusBadRequest)
}

// --- Login ---

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, username, password string) (string, *domain.User, error) {
			if email != "kasey@example.com" || username != "kcantu01" || password != "s3cretpass" {
				t.Fatalf("unexpected args: %s %s %s", email, username, password)
			}
			return "token123", &domain.User{Username: "kcantu01"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"kasey@example.com","username":"kcantu01","password":"s3cretpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, username, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	c, _ := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"kasey@example.com","username":"kcantu01","password":"wrongpass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingUsername(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubAddressService{})

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"kasey@example.com","password":"s3cretpass"}`)
	requireRequestError(t, h.Login(c), "username is required")
}

// --- Password reset ---

func TestAuthHandler_ResetPassword_UsesPathToken(t *testing.T) {
	var gotToken string
	stub := &stubAuthService{
		resetFn: func(ctx context.Context, token, password string) error {
			gotToken = token
			return nil
		},
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	c, rec := newTestContext(http.MethodPost, "/auth/password-reset/abc",
		`{"password":"newpass12","confirm_password":"newpass12"}`)
	c.SetParamNames("token")
	c.SetParamValues("abc")

	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || gotToken != "abc" {
		t.Fatalf("unexpected result: code=%d token=%q", rec.Code, gotToken)
	}
}

func TestAuthHandler_RequestPasswordReset_UnknownEmail(t *testing.T) {
	stub := &stubAuthService{
		requestFn: func(ctx context.Context, email string) error { return domain.ErrUserNotFound },
	}
	h := NewAuthHandler(stub, &stubAddressService{})

	c, _ := newTestContext(http.MethodPost, "/auth/password-reset", `{"email":"ghost@example.com"}`)
	if err := h.RequestPasswordReset(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// --- Dashboard ---

func TestAuthHandler_Dashboard(t *testing.T) {
	auth := &stubAuthService{
		profileFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "kcantu01" {
				t.Fatalf("unexpected username %q", username)
			}
			return &domain.User{ID: "user-1", Username: username}, nil
		},
	}
	addrs := &stubAddressService{
		listFn: func(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return nil, nil
		},
	}
	h := NewAuthHandler(auth, addrs)

	c, rec := newTestContext(http.MethodGet, "/v1/dashboard", "")
	authenticate(c)
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if list, ok := resp["addresses"].([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty address list, got %v", resp["addresses"])
	}
}

func TestAuthHandler_Dashboard_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubAddressService{})

	c, _ := newTestContext(http.MethodGet, "/v1/dashboard", "")
	requireHTTPError(t, h.Dashboard(c), http.StatusUnauthorized)
}

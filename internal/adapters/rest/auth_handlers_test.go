package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port/usecases_port"
)

type stubRegisterUC struct {
	user  *domain.User
	token string
	err   error
}

func (s *stubRegisterUC) Execute(ctx context.Context, input usecases_port.RegisterUserInput) (*domain.User, string, error) {
	return s.user, s.token, s.err
}

type stubLoginUC struct {
	user  *domain.User
	token string
	err   error
}

func (s *stubLoginUC) Execute(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.user, s.token, s.err
}

type stubProfileUC struct {
	user *domain.User
	err  error
}

func (s *stubProfileUC) Execute(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.user, s.err
}

const validRegisterBody = `{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com","password":"secret123"}`

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthHandlers_Register_Success(t *testing.T) {
	user := activeUser()
	h := NewAuthHandlers(&stubRegisterUC{user: user, token: "signed-token"}, &stubLoginUC{}, &stubProfileUC{})

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(validRegisterBody))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "signed-token", body["token"])
}

func TestAuthHandlers_Register_EmailInUse(t *testing.T) {
	h := NewAuthHandlers(&stubRegisterUC{err: domain.ErrEmailInUse}, &stubLoginUC{}, &stubProfileUC{})

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(validRegisterBody))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAuthHandlers_Register_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing fields", `{"email":"aigerim@example.com"}`},
		{"short password", `{"firstName":"A","lastName":"S","email":"aigerim@example.com","password":"123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandlers(&stubRegisterUC{}, &stubLoginUC{}, &stubProfileUC{})
			req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	loginBody := `{"email":"aigerim@example.com","password":"secret123"}`

	t.Run("success", func(t *testing.T) {
		user := activeUser()
		h := NewAuthHandlers(&stubRegisterUC{}, &stubLoginUC{user: user, token: "signed-token"}, &stubProfileUC{})

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(loginBody))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "signed-token", body["token"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h := NewAuthHandlers(&stubRegisterUC{}, &stubLoginUC{err: domain.ErrInvalidCredentials}, &stubProfileUC{})

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(loginBody))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated account", func(t *testing.T) {
		h := NewAuthHandlers(&stubRegisterUC{}, &stubLoginUC{err: domain.ErrAccountDisabled}, &stubProfileUC{})

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(loginBody))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

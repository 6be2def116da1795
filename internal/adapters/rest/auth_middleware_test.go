package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type stubTokenService struct {
	claims *domain.Claims
	err    error
}

func (s *stubTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	return s.claims, s.err
}

// stubUserRepo подменяет только FindByID; остальные методы контракта
// в этих тестах не вызываются.
type stubUserRepo struct {
	port.UserRepositoryPort
	user *domain.User
	err  error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.user, s.err
}

func activeUser() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Email:    "aigerim@example.com",
		Role:     domain.RoleUser,
		IsActive: true,
	}
}

func runAuthMiddleware(t *testing.T, tokenSvc port.TokenServicePort, userRepo port.UserRepositoryPort, authHeader string) (*httptest.ResponseRecorder, *contextkeys.AuthInfo) {
	t.Helper()

	var captured *contextkeys.AuthInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := contextkeys.AuthInfoFromContext(r.Context()); ok {
			captured = &info
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(tokenSvc, userRepo)(next)

	req := httptest.NewRequest("GET", "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := runAuthMiddleware(t, &stubTokenService{}, &stubUserRepo{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, _ := runAuthMiddleware(t, &stubTokenService{}, &stubUserRepo{}, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := &stubTokenService{err: domain.ErrTokenInvalid}
	rec, _ := runAuthMiddleware(t, tokenSvc, &stubUserRepo{}, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	tokenSvc := &stubTokenService{claims: &domain.Claims{UserID: uuid.New()}}
	rec, _ := runAuthMiddleware(t, tokenSvc, &stubUserRepo{user: nil}, "Bearer token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_DeactivatedUser(t *testing.T) {
	user := activeUser()
	user.IsActive = false
	tokenSvc := &stubTokenService{claims: &domain.Claims{UserID: user.ID}}
	rec, _ := runAuthMiddleware(t, tokenSvc, &stubUserRepo{user: user}, "Bearer token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RepositoryFailure(t *testing.T) {
	tokenSvc := &stubTokenService{claims: &domain.Claims{UserID: uuid.New()}}
	repo := &stubUserRepo{err: errors.New("connection refused")}
	rec, _ := runAuthMiddleware(t, tokenSvc, repo, "Bearer token")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthMiddleware_RoleComesFromDatabase(t *testing.T) {
	// Токен говорит admin, но в базе пользователь уже понижен до user.
	user := activeUser()
	tokenSvc := &stubTokenService{claims: &domain.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   domain.RoleAdmin,
	}}

	rec, captured := runAuthMiddleware(t, tokenSvc, &stubUserRepo{user: user}, "Bearer token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, user.ID, captured.UserID)
	assert.Equal(t, domain.RoleUser, captured.Role)
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminMiddleware(next)

	t.Run("no auth info", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/users", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("regular user", func(t *testing.T) {
		ctx := contextkeys.ContextWithAuthInfo(context.Background(), contextkeys.AuthInfo{
			UserID: uuid.New(), Role: domain.RoleUser,
		})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/users", nil).WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		ctx := contextkeys.ContextWithAuthInfo(context.Background(), contextkeys.AuthInfo{
			UserID: uuid.New(), Role: domain.RoleAdmin,
		})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/users", nil).WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

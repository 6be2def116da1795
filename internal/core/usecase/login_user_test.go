package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

// fakeUserRepo подменяет только нужные в тестах методы контракта.
type fakeUserRepo struct {
	port.UserRepositoryPort

	userByEmail *domain.User
	userByID    *domain.User
	findErr     error

	setActiveCalled bool
	setActiveValue  bool
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.userByEmail, f.findErr
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.userByID, f.findErr
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	f.setActiveCalled = true
	f.setActiveValue = isActive
	return nil
}

type fakeTokenService struct {
	token string
	err   error
}

func (f *fakeTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	return f.token, f.err
}

func (f *fakeTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	return nil, domain.ErrTokenInvalid
}

func registeredUser(t *testing.T, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Aigerim", "Satpayeva", "aigerim@example.com", password, nil)
	require.NoError(t, err)
	return user
}

func TestLoginUserUseCase_Success(t *testing.T) {
	user := registeredUser(t, "secret123")
	uc := NewLoginUserUseCase(&fakeUserRepo{userByEmail: user}, &fakeTokenService{token: "signed-token"}, time.Hour)

	loggedIn, token, err := uc.Execute(context.Background(), user.Email, "secret123")

	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, "signed-token", token)
}

func TestLoginUserUseCase_UnknownEmail(t *testing.T) {
	uc := NewLoginUserUseCase(&fakeUserRepo{}, &fakeTokenService{}, time.Hour)

	_, _, err := uc.Execute(context.Background(), "nobody@example.com", "secret123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUserUseCase_WrongPassword(t *testing.T) {
	user := registeredUser(t, "secret123")
	uc := NewLoginUserUseCase(&fakeUserRepo{userByEmail: user}, &fakeTokenService{}, time.Hour)

	_, _, err := uc.Execute(context.Background(), user.Email, "wrong-password")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUserUseCase_DisabledAccount(t *testing.T) {
	user := registeredUser(t, "secret123")
	user.IsActive = false
	uc := NewLoginUserUseCase(&fakeUserRepo{userByEmail: user}, &fakeTokenService{}, time.Hour)

	_, _, err := uc.Execute(context.Background(), user.Email, "secret123")

	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestLoginUserUseCase_RepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := NewLoginUserUseCase(&fakeUserRepo{findErr: repoErr}, &fakeTokenService{}, time.Hour)

	_, _, err := uc.Execute(context.Background(), "aigerim@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

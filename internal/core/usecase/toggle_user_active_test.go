package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
)

func TestToggleUserActiveUseCase_Toggles(t *testing.T) {
	target := registeredUser(t, "secret123")
	repo := &fakeUserRepo{userByID: target}
	uc := NewToggleUserActiveUseCase(repo)

	result, err := uc.Execute(context.Background(), uuid.New(), target.ID)

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	assert.True(t, repo.setActiveCalled)
	assert.False(t, repo.setActiveValue)
}

func TestToggleUserActiveUseCase_SelfModificationRejected(t *testing.T) {
	target := registeredUser(t, "secret123")
	repo := &fakeUserRepo{userByID: target}
	uc := NewToggleUserActiveUseCase(repo)

	_, err := uc.Execute(context.Background(), target.ID, target.ID)

	assert.ErrorIs(t, err, domain.ErrSelfModification)
	assert.False(t, repo.setActiveCalled)
}

func TestToggleUserActiveUseCase_TargetNotFound(t *testing.T) {
	uc := NewToggleUserActiveUseCase(&fakeUserRepo{})

	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

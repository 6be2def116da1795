package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type fakeContactRepo struct {
	port.ContactRepositoryPort

	message *domain.ContactMessage
	findErr error

	updatedStatus string
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return f.message, f.findErr
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.updatedStatus = status
	return nil
}

func TestMarkContactReadUseCase_MarksNewMessage(t *testing.T) {
	message := domain.NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос", "...")
	repo := &fakeContactRepo{message: message}
	uc := NewMarkContactReadUseCase(repo)

	result, err := uc.Execute(context.Background(), message.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusRead, result.Status)
	assert.Equal(t, domain.ContactStatusRead, repo.updatedStatus)
}

func TestMarkContactReadUseCase_RespondedStaysResponded(t *testing.T) {
	message := domain.NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос", "...")
	message.Status = domain.ContactStatusResponded
	repo := &fakeContactRepo{message: message}
	uc := NewMarkContactReadUseCase(repo)

	result, err := uc.Execute(context.Background(), message.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusResponded, result.Status)
	assert.Empty(t, repo.updatedStatus, "status must not be written back")
}

func TestMarkContactReadUseCase_NotFound(t *testing.T) {
	uc := NewMarkContactReadUseCase(&fakeContactRepo{})

	_, err := uc.Execute(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

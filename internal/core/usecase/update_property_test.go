package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

type fakePropertyRepo struct {
	port.PropertyRepositoryPort

	listing *domain.PropertyListing
	findErr error

	updated     *domain.Property
	comparables []domain.Comparable
	compErr     error
}

func (f *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.PropertyListing, error) {
	return f.listing, f.findErr
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	f.updated = property
	return nil
}

func (f *fakePropertyRepo) FindComparables(ctx context.Context, propertyType, district string, areaMin, areaMax float64, rooms *int) ([]domain.Comparable, error) {
	return f.comparables, f.compErr
}

func existingListing(ownerID uuid.UUID) *domain.PropertyListing {
	return &domain.PropertyListing{
		Property: domain.Property{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Title:        "Старый заголовок",
			Type:         domain.DealTypeSale,
			PropertyType: domain.PropertyTypeApartment,
			Price:        20_000_000,
			Area:         50,
			Address:      "пр. Мангилик Ел, 42",
			Status:       domain.StatusActive,
		},
	}
}

func updateInput() usecases_port.UpdatePropertyInput {
	return usecases_port.UpdatePropertyInput{
		Title:        "Новый заголовок",
		Description:  "Описание",
		Type:         domain.DealTypeSale,
		PropertyType: domain.PropertyTypeApartment,
		Price:        25_000_000,
		Area:         54.5,
		Address:      "пр. Мангилик Ел, 42",
		ContactPhone: "+77001234567",
	}
}

func TestUpdatePropertyUseCase_OwnerCanUpdate(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakePropertyRepo{listing: existingListing(ownerID)}
	uc := NewUpdatePropertyUseCase(repo)

	updated, err := uc.Execute(context.Background(), ownerID, domain.RoleUser, repo.listing.ID, updateInput())

	require.NoError(t, err)
	assert.Equal(t, "Новый заголовок", updated.Title)
	assert.Equal(t, 25_000_000.0, updated.Price)
	require.NotNil(t, repo.updated)
	assert.NotEmpty(t, repo.updated.ObjectHash)
}

func TestUpdatePropertyUseCase_StrangerForbidden(t *testing.T) {
	repo := &fakePropertyRepo{listing: existingListing(uuid.New())}
	uc := NewUpdatePropertyUseCase(repo)

	_, err := uc.Execute(context.Background(), uuid.New(), domain.RoleUser, repo.listing.ID, updateInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, repo.updated)
}

func TestUpdatePropertyUseCase_AdminCanUpdateAny(t *testing.T) {
	repo := &fakePropertyRepo{listing: existingListing(uuid.New())}
	uc := NewUpdatePropertyUseCase(repo)

	_, err := uc.Execute(context.Background(), uuid.New(), domain.RoleAdmin, repo.listing.ID, updateInput())

	assert.NoError(t, err)
}

func TestUpdatePropertyUseCase_NotFound(t *testing.T) {
	uc := NewUpdatePropertyUseCase(&fakePropertyRepo{})

	_, err := uc.Execute(context.Background(), uuid.New(), domain.RoleUser, uuid.New(), updateInput())

	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestUpdatePropertyUseCase_EmptyStatusDefaultsToActive(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakePropertyRepo{listing: existingListing(ownerID)}
	repo.listing.Status = domain.StatusSold
	uc := NewUpdatePropertyUseCase(repo)

	updated, err := uc.Execute(context.Background(), ownerID, domain.RoleUser, repo.listing.ID, updateInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, updated.Status)
}

func TestUpdatePropertyUseCase_InvalidStatus(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakePropertyRepo{listing: existingListing(ownerID)}
	uc := NewUpdatePropertyUseCase(repo)

	input := updateInput()
	input.Status = "archived"
	_, err := uc.Execute(context.Background(), ownerID, domain.RoleUser, repo.listing.ID, input)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

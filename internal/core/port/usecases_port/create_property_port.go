package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

// CreatePropertyInput - данные нового объявления.
type CreatePropertyInput struct {
	Title        string
	Description  string
	Type         string
	PropertyType string
	Price        float64
	Area         float64
	Rooms        *int
	Bathrooms    *int
	Address      string
	District     string
	Latitude     *float64
	Longitude    *float64
	ContactPhone string
	ContactEmail *string
	YearBuilt    *int
	OwnerID      uuid.UUID
}

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, input CreatePropertyInput, uploads []ImageUpload) (*domain.PropertyListing, error)
}

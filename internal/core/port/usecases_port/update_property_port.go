package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"realnest-backend/internal/core/domain"
)

// UpdatePropertyInput - полный набор полей для обновления объявления.
type UpdatePropertyInput struct {
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
	Status       string
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID, input UpdatePropertyInput) (*domain.Property, error)
}

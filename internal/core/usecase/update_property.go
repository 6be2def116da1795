package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

type UpdatePropertyUseCase struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewUpdatePropertyUseCase(propertyRepo port.PropertyRepositoryPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: propertyRepo}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID, input usecases_port.UpdatePropertyInput) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": propertyID.String(),
		"actor_id":    actorID.String(),
	})

	ucLogger.Info("Use case started: updating property", nil)

	listing, err := uc.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository failed to find property", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if listing == nil {
		return nil, domain.ErrPropertyNotFound
	}

	// Право на изменение: владелец или администратор.
	if listing.OwnerID != actorID && actorRole != domain.RoleAdmin {
		ucLogger.Warn("Update rejected: actor is neither owner nor admin", port.Fields{"owner_id": listing.OwnerID.String()})
		return nil, domain.ErrForbidden
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !domain.IsValidPropertyStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	property := listing.Property
	property.Title = input.Title
	property.Description = input.Description
	property.Type = input.Type
	property.PropertyType = input.PropertyType
	property.Price = input.Price
	property.Area = input.Area
	property.Rooms = input.Rooms
	property.Bathrooms = input.Bathrooms
	property.Address = input.Address
	property.District = input.District
	property.Latitude = input.Latitude
	property.Longitude = input.Longitude
	property.ContactPhone = input.ContactPhone
	property.ContactEmail = input.ContactEmail
	property.YearBuilt = input.YearBuilt
	property.Status = status
	property.UpdatedAt = time.Now().UTC()
	property.ObjectHash = domain.ObjectHashFor(&property)

	if err := uc.propertyRepo.Update(ctx, &property); err != nil {
		ucLogger.Error("Repository failed to update property", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("Use case finished: property updated", nil)
	return &property, nil
}

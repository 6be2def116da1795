package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

// UserHandlers - операции пользователя над собственным аккаунтом.
type UserHandlers struct {
	updateProfileUC  usecases_port.UpdateProfileUseCasePort
	changePasswordUC usecases_port.ChangePasswordUseCasePort
}

func NewUserHandlers(
	updateProfileUC usecases_port.UpdateProfileUseCasePort,
	changePasswordUC usecases_port.ChangePasswordUseCasePort,
) *UserHandlers {
	return &UserHandlers{
		updateProfileUC:  updateProfileUC,
		changePasswordUC: changePasswordUC,
	}
}

// UpdateProfile обрабатывает PUT /api/users/profile
func (h *UserHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProfile"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		WriteJSONError(w, http.StatusBadRequest, "First name and last name are required")
		return
	}

	user, err := h.updateProfileUC.Execute(r.Context(), auth.UserID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("UpdateProfile use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    toUserResponse(user),
	})
}

// ChangePassword обрабатывает PUT /api/users/password
func (h *UserHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ChangePassword"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 6 {
		WriteJSONError(w, http.StatusBadRequest, "New password must be at least 6 characters long")
		return
	}

	err := h.changePasswordUC.Execute(r.Context(), auth.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "Current password is incorrect")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("ChangePassword use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password updated successfully",
	})
}

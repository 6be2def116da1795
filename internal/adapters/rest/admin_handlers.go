package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

// AdminHandlers - управление пользователями и сводная статистика.
type AdminHandlers struct {
	listUsersUC    usecases_port.ListUsersUseCasePort
	getUserUC      usecases_port.GetUserByIDUseCasePort
	toggleActiveUC usecases_port.ToggleUserActiveUseCasePort
	toggleAdminUC  usecases_port.ToggleUserAdminUseCasePort
	deleteUserUC   usecases_port.DeleteUserUseCasePort
	statsUC        usecases_port.GetDashboardStatsUseCasePort
}

func NewAdminHandlers(
	listUsersUC usecases_port.ListUsersUseCasePort,
	getUserUC usecases_port.GetUserByIDUseCasePort,
	toggleActiveUC usecases_port.ToggleUserActiveUseCasePort,
	toggleAdminUC usecases_port.ToggleUserAdminUseCasePort,
	deleteUserUC usecases_port.DeleteUserUseCasePort,
	statsUC usecases_port.GetDashboardStatsUseCasePort,
) *AdminHandlers {
	return &AdminHandlers{
		listUsersUC:    listUsersUC,
		getUserUC:      getUserUC,
		toggleActiveUC: toggleActiveUC,
		toggleAdminUC:  toggleAdminUC,
		deleteUserUC:   deleteUserUC,
		statsUC:        statsUC,
	}
}

// ListUsers обрабатывает GET /api/admin/users
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListUsers"})

	limit, offset := GetPagination(r)
	page, err := h.listUsersUC.Execute(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		logger.Error("ListUsers use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]UserResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toUserResponse(&page.Items[i]))
	}
	RespondWithJSON(w, http.StatusOK, PageResponse{
		Success:     true,
		Count:       page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Data:        items,
	})
}

// GetUser обрабатывает GET /api/admin/users/{id}
func (h *AdminHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUser"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.getUserUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("GetUser use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    toUserResponse(user),
	})
}

// toggleTarget разбирает id цели и достает авторизованного администратора.
func toggleTarget(w http.ResponseWriter, r *http.Request) (actorID, targetID uuid.UUID, ok bool) {
	auth, authOK := contextkeys.AuthInfoFromContext(r.Context())
	if !authOK {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return uuid.Nil, uuid.Nil, false
	}
	return auth.UserID, targetID, true
}

func writeToggleError(w http.ResponseWriter, logger port.LoggerPort, ucName string, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		WriteJSONError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrSelfModification):
		WriteJSONError(w, http.StatusForbidden, "You cannot modify your own account")
	default:
		logger.Error(ucName+" use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ToggleUserActive обрабатывает PUT /api/admin/users/{id}/toggle-active
func (h *AdminHandlers) ToggleUserActive(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleUserActive"})

	actorID, targetID, ok := toggleTarget(w, r)
	if !ok {
		return
	}

	user, err := h.toggleActiveUC.Execute(r.Context(), actorID, targetID)
	if err != nil {
		writeToggleError(w, logger, "ToggleUserActive", err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    toUserResponse(user),
	})
}

// ToggleUserAdmin обрабатывает PUT /api/admin/users/{id}/toggle-admin
func (h *AdminHandlers) ToggleUserAdmin(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleUserAdmin"})

	actorID, targetID, ok := toggleTarget(w, r)
	if !ok {
		return
	}

	user, err := h.toggleAdminUC.Execute(r.Context(), actorID, targetID)
	if err != nil {
		writeToggleError(w, logger, "ToggleUserAdmin", err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    toUserResponse(user),
	})
}

// DeleteUser обрабатывает DELETE /api/admin/users/{id}
func (h *AdminHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteUser"})

	actorID, targetID, ok := toggleTarget(w, r)
	if !ok {
		return
	}

	if err := h.deleteUserUC.Execute(r.Context(), actorID, targetID); err != nil {
		writeToggleError(w, logger, "DeleteUser", err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User deleted successfully",
	})
}

// DashboardStats обрабатывает GET /api/admin/dashboard/stats
func (h *AdminHandlers) DashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DashboardStats"})

	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		logger.Error("GetDashboardStats use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := StatsResponse{
		Success:          true,
		UserCount:        stats.UserCount,
		PropertyCount:    stats.PropertyCount,
		NewMessagesCount: stats.NewMessagesCount,
		PropertiesByType: make([]CountItem, 0, len(stats.PropertiesByType)),
		TopDistricts:     make([]CountItem, 0, len(stats.TopDistricts)),
		Last30Days: Last30DaysCounts{
			NewUsers:      stats.NewUsersLast30d,
			NewProperties: stats.NewPropsLast30d,
		},
	}
	for _, item := range stats.PropertiesByType {
		resp.PropertiesByType = append(resp.PropertiesByType, CountItem{Key: item.Key, Count: item.Count})
	}
	for _, item := range stats.TopDistricts {
		resp.TopDistricts = append(resp.TopDistricts, CountItem{Key: item.Key, Count: item.Count})
	}

	RespondWithJSON(w, http.StatusOK, resp)
}

package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/contracts"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

// ContactHandlers - форма обратной связи и ее админка.
type ContactHandlers struct {
	sendUC         usecases_port.SendContactMessageUseCasePort
	listUC         usecases_port.ListContactMessagesUseCasePort
	getUC          usecases_port.GetContactMessageUseCasePort
	markReadUC     usecases_port.MarkContactReadUseCasePort
	updateStatusUC usecases_port.UpdateContactStatusUseCasePort
	replyUC        usecases_port.ReplyToContactUseCasePort
	deleteUC       usecases_port.DeleteContactMessageUseCasePort
}

func NewContactHandlers(
	sendUC usecases_port.SendContactMessageUseCasePort,
	listUC usecases_port.ListContactMessagesUseCasePort,
	getUC usecases_port.GetContactMessageUseCasePort,
	markReadUC usecases_port.MarkContactReadUseCasePort,
	updateStatusUC usecases_port.UpdateContactStatusUseCasePort,
	replyUC usecases_port.ReplyToContactUseCasePort,
	deleteUC usecases_port.DeleteContactMessageUseCasePort,
) *ContactHandlers {
	return &ContactHandlers{
		sendUC:         sendUC,
		listUC:         listUC,
		getUC:          getUC,
		markReadUC:     markReadUC,
		updateStatusUC: updateStatusUC,
		replyUC:        replyUC,
		deleteUC:       deleteUC,
	}
}

// Send обрабатывает POST /api/contact (анонимный).
func (h *ContactHandlers) Send(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SendContactMessage"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := contracts.Validate("contact", body); err != nil {
		logger.Warn("Contact request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.sendUC.Execute(r.Context(), usecases_port.SendContactMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		logger.Error("SendContactMessage use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Your message has been sent",
		"id":      message.ID.String(),
	})
}

// List обрабатывает GET /api/contact (админ).
func (h *ContactHandlers) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListContactMessages"})

	limit, offset := GetPagination(r)
	page, err := h.listUC.Execute(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			WriteJSONError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		logger.Error("ListContactMessages use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]ContactResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toContactResponse(&page.Items[i]))
	}
	RespondWithJSON(w, http.StatusOK, PageResponse{
		Success:     true,
		Count:       page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Data:        items,
	})
}

// Get обрабатывает GET /api/contact/{id} (админ).
func (h *ContactHandlers) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetContactMessage"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	message, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Message not found")
			return
		}
		logger.Error("GetContactMessage use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"contact": toContactResponse(message),
	})
}

// MarkRead обрабатывает PUT /api/contact/{id}/mark-read (админ).
func (h *ContactHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MarkContactRead"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	message, err := h.markReadUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Message not found")
			return
		}
		logger.Error("MarkContactRead use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"contact": toContactResponse(message),
	})
}

// UpdateStatus обрабатывает PATCH /api/admin/contacts/{id}/status (админ).
func (h *ContactHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateContactStatus"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	var req ContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.updateStatusUC.Execute(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrContactNotFound):
			WriteJSONError(w, http.StatusNotFound, "Message not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusBadRequest, "Invalid status transition")
		default:
			logger.Error("UpdateContactStatus use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"contact": toContactResponse(message),
	})
}

// Reply обрабатывает POST /api/contact/{id}/reply (админ).
func (h *ContactHandlers) Reply(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ReplyToContact"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	var req ContactReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Reply == "" {
		WriteJSONError(w, http.StatusBadRequest, "Reply text is required")
		return
	}

	message, err := h.replyUC.Execute(r.Context(), id, req.Reply)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Message not found")
			return
		}
		logger.Error("ReplyToContact use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"contact": toContactResponse(message),
	})
}

// Delete обрабатывает DELETE /api/contact/{id} (админ).
func (h *ContactHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteContactMessage"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Message not found")
			return
		}
		logger.Error("DeleteContactMessage use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message deleted successfully",
	})
}

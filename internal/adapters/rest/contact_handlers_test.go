package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port/usecases_port"
)

type stubSendContactUC struct {
	message *domain.ContactMessage
	err     error
}

func (s *stubSendContactUC) Execute(ctx context.Context, input usecases_port.SendContactMessageInput) (*domain.ContactMessage, error) {
	return s.message, s.err
}

type stubMarkReadUC struct {
	message *domain.ContactMessage
	err     error
}

func (s *stubMarkReadUC) Execute(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return s.message, s.err
}

type stubUpdateContactStatusUC struct {
	message *domain.ContactMessage
	err     error
}

func (s *stubUpdateContactStatusUC) Execute(ctx context.Context, id uuid.UUID, status string) (*domain.ContactMessage, error) {
	return s.message, s.err
}

func newContactHandlersForTest(sendUC usecases_port.SendContactMessageUseCasePort, markReadUC usecases_port.MarkContactReadUseCasePort, updateStatusUC usecases_port.UpdateContactStatusUseCasePort) *ContactHandlers {
	return NewContactHandlers(sendUC, nil, nil, markReadUC, updateStatusUC, nil, nil)
}

func TestContactHandlers_Send_Success(t *testing.T) {
	message := domain.NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос", "Актуально ли объявление?")
	h := newContactHandlersForTest(&stubSendContactUC{message: message}, nil, nil)

	body := `{"name":"Bolat","email":"bolat@example.com","subject":"Вопрос","message":"Актуально ли объявление?"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, message.ID.String(), resp["id"])
}

func TestContactHandlers_Send_NullPhone(t *testing.T) {
	message := domain.NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос", "Актуально ли объявление?")
	h := newContactHandlersForTest(&stubSendContactUC{message: message}, nil, nil)

	body := `{"name":"Bolat","email":"bolat@example.com","phone":null,"subject":"Вопрос","message":"Актуально ли объявление?"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestContactHandlers_Send_InvalidBody(t *testing.T) {
	h := newContactHandlersForTest(&stubSendContactUC{}, nil, nil)

	body := `{"name":"Bolat","email":"not-an-email","subject":"Вопрос","message":"..."}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandlers_MarkRead(t *testing.T) {
	message := domain.NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос", "...")
	message.Status = domain.ContactStatusRead
	h := newContactHandlersForTest(nil, &stubMarkReadUC{message: message}, nil)

	router := chi.NewRouter()
	router.Put("/api/contact/{id}/mark-read", h.MarkRead)

	req := httptest.NewRequest("PUT", "/api/contact/"+message.ID.String()+"/mark-read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandlers_MarkRead_NotFound(t *testing.T) {
	h := newContactHandlersForTest(nil, &stubMarkReadUC{err: domain.ErrContactNotFound}, nil)

	router := chi.NewRouter()
	router.Put("/api/contact/{id}/mark-read", h.MarkRead)

	req := httptest.NewRequest("PUT", "/api/contact/"+uuid.NewString()+"/mark-read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactHandlers_UpdateStatus_InvalidTransition(t *testing.T) {
	h := newContactHandlersForTest(nil, nil, &stubUpdateContactStatusUC{err: domain.ErrInvalidStatus})

	router := chi.NewRouter()
	router.Patch("/api/admin/contacts/{id}/status", h.UpdateStatus)

	req := httptest.NewRequest("PATCH", "/api/admin/contacts/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status":"new"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandlers_UpdateStatus_Success(t *testing.T) {
	message := domain.NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос", "...")
	message.Status = domain.ContactStatusResponded
	h := newContactHandlersForTest(nil, nil, &stubUpdateContactStatusUC{message: message})

	router := chi.NewRouter()
	router.Patch("/api/admin/contacts/{id}/status", h.UpdateStatus)

	req := httptest.NewRequest("PATCH", "/api/admin/contacts/"+message.ID.String()+"/status",
		strings.NewReader(`{"status":"responded"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])
}

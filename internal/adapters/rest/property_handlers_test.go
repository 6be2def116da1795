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
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port/usecases_port"
)

type stubFindPropertiesUC struct {
	page domain.Page[domain.PropertyListing]
	err  error
}

func (s *stubFindPropertiesUC) Execute(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (domain.Page[domain.PropertyListing], error) {
	return s.page, s.err
}

type stubGetPropertyUC struct {
	listing *domain.PropertyListing
	err     error
}

func (s *stubGetPropertyUC) Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyListing, error) {
	return s.listing, s.err
}

type stubUpdatePropertyUC struct {
	property *domain.Property
	err      error

	gotActorID uuid.UUID
	gotRole    string
}

func (s *stubUpdatePropertyUC) Execute(ctx context.Context, actorID uuid.UUID, actorRole string, propertyID uuid.UUID, input usecases_port.UpdatePropertyInput) (*domain.Property, error) {
	s.gotActorID = actorID
	s.gotRole = actorRole
	return s.property, s.err
}

func TestParseFilters(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/api/properties?type=sale&propertyType=apartment&district=%D0%95%D1%81%D0%B8%D0%BB%D1%8C&rooms=2&minPrice=10000000&maxPrice=40000000&minArea=40&maxArea=90&sortBy=price&sortOrder=asc", nil)

	filters := parseFilters(req)

	assert.Equal(t, "sale", filters.DealType)
	assert.Equal(t, "apartment", filters.PropertyType)
	assert.Equal(t, "Есиль", filters.District)
	require.NotNil(t, filters.Rooms)
	assert.Equal(t, 2, *filters.Rooms)
	require.NotNil(t, filters.PriceMin)
	assert.Equal(t, 10_000_000.0, *filters.PriceMin)
	require.NotNil(t, filters.AreaMax)
	assert.Equal(t, 90.0, *filters.AreaMax)
	assert.Equal(t, "price", filters.SortBy)
	assert.Equal(t, "asc", filters.SortOrder)
}

func TestParseFilters_GarbageIgnored(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/properties?rooms=abc&minPrice=cheap&maxArea=", nil)

	filters := parseFilters(req)

	assert.Nil(t, filters.Rooms)
	assert.Nil(t, filters.PriceMin)
	assert.Nil(t, filters.AreaMax)
}

func newPropertyHandlersForTest(findUC usecases_port.FindPropertiesUseCasePort, getUC usecases_port.GetPropertyUseCasePort, updateUC usecases_port.UpdatePropertyUseCasePort) *PropertyHandlers {
	return NewPropertyHandlers(findUC, getUC, nil, nil, updateUC, nil, nil, nil)
}

func TestPropertyHandlers_List(t *testing.T) {
	page := domain.NewPage([]domain.PropertyListing{
		{Property: domain.Property{ID: uuid.New(), Title: "2-комнатная квартира"}},
	}, 1, 10, 0)
	h := newPropertyHandlersForTest(&stubFindPropertiesUC{page: page}, nil, nil)

	req := httptest.NewRequest("GET", "/api/properties", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
}

func TestPropertyHandlers_Get_NotFound(t *testing.T) {
	h := newPropertyHandlersForTest(nil, &stubGetPropertyUC{err: domain.ErrPropertyNotFound}, nil)

	router := chi.NewRouter()
	router.Get("/api/properties/{id}", h.Get)

	req := httptest.NewRequest("GET", "/api/properties/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPropertyHandlers_Get_BadID(t *testing.T) {
	h := newPropertyHandlersForTest(nil, &stubGetPropertyUC{}, nil)

	router := chi.NewRouter()
	router.Get("/api/properties/{id}", h.Get)

	req := httptest.NewRequest("GET", "/api/properties/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

const validPropertyBody = `{"title":"2-комнатная квартира","description":"Светлая квартира","type":"sale","propertyType":"apartment","price":25000000,"area":54.5,"address":"пр. Мангилик Ел, 42","contactPhone":"+77001234567"}`

func updatePropertyRequest(t *testing.T, propertyID uuid.UUID, auth contextkeys.AuthInfo) *http.Request {
	t.Helper()
	req := httptest.NewRequest("PUT", "/api/properties/"+propertyID.String(), strings.NewReader(validPropertyBody))
	return req.WithContext(contextkeys.ContextWithAuthInfo(req.Context(), auth))
}

func TestPropertyHandlers_Update_Forbidden(t *testing.T) {
	updateUC := &stubUpdatePropertyUC{err: domain.ErrForbidden}
	h := newPropertyHandlersForTest(nil, nil, updateUC)

	router := chi.NewRouter()
	router.Put("/api/properties/{id}", h.Update)

	auth := contextkeys.AuthInfo{UserID: uuid.New(), Role: domain.RoleUser}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, updatePropertyRequest(t, uuid.New(), auth))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, auth.UserID, updateUC.gotActorID)
	assert.Equal(t, domain.RoleUser, updateUC.gotRole)
}

func TestPropertyHandlers_Update_Success(t *testing.T) {
	property := &domain.Property{ID: uuid.New(), Title: "2-комнатная квартира"}
	h := newPropertyHandlersForTest(nil, nil, &stubUpdatePropertyUC{property: property})

	router := chi.NewRouter()
	router.Put("/api/properties/{id}", h.Update)

	auth := contextkeys.AuthInfo{UserID: uuid.New(), Role: domain.RoleAdmin}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, updatePropertyRequest(t, property.ID, auth))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestPropertyHandlers_Update_NoAuth(t *testing.T) {
	h := newPropertyHandlersForTest(nil, nil, &stubUpdatePropertyUC{})

	router := chi.NewRouter()
	router.Put("/api/properties/{id}", h.Update)

	req := httptest.NewRequest("PUT", "/api/properties/"+uuid.NewString(), strings.NewReader(validPropertyBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPropertyHandlers_Update_InvalidStatus(t *testing.T) {
	h := newPropertyHandlersForTest(nil, nil, &stubUpdatePropertyUC{err: domain.ErrInvalidStatus})

	router := chi.NewRouter()
	router.Put("/api/properties/{id}", h.Update)

	auth := contextkeys.AuthInfo{UserID: uuid.New(), Role: domain.RoleUser}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, updatePropertyRequest(t, uuid.New(), auth))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package rest

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/contracts"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

const (
	maxUploadFiles    = 10
	maxUploadFileSize = 5 << 20  // 5MB на файл
	maxMultipartForm  = 64 << 20 // общий лимит памяти формы
)

// PropertyHandlers - каталог и CRUD объявлений.
type PropertyHandlers struct {
	findUC        usecases_port.FindPropertiesUseCasePort
	getUC         usecases_port.GetPropertyUseCasePort
	myPropsUC     usecases_port.GetUserPropertiesUseCasePort
	createUC      usecases_port.CreatePropertyUseCasePort
	updateUC      usecases_port.UpdatePropertyUseCasePort
	deleteUC      usecases_port.DeletePropertyUseCasePort
	addImagesUC   usecases_port.AddPropertyImagesUseCasePort
	deleteImageUC usecases_port.DeletePropertyImageUseCasePort
}

func NewPropertyHandlers(
	findUC usecases_port.FindPropertiesUseCasePort,
	getUC usecases_port.GetPropertyUseCasePort,
	myPropsUC usecases_port.GetUserPropertiesUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	addImagesUC usecases_port.AddPropertyImagesUseCasePort,
	deleteImageUC usecases_port.DeletePropertyImageUseCasePort,
) *PropertyHandlers {
	return &PropertyHandlers{
		findUC:        findUC,
		getUC:         getUC,
		myPropsUC:     myPropsUC,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		addImagesUC:   addImagesUC,
		deleteImageUC: deleteImageUC,
	}
}

// parseFilters разбирает query-параметры каталога. Мусорные значения
// числовых фильтров молча игнорируются.
func parseFilters(r *http.Request) domain.PropertyFilters {
	q := r.URL.Query()
	filters := domain.PropertyFilters{
		DealType:     q.Get("type"),
		PropertyType: q.Get("propertyType"),
		District:     q.Get("district"),
		SortBy:       q.Get("sortBy"),
		SortOrder:    q.Get("sortOrder"),
	}
	if v, err := strconv.Atoi(q.Get("rooms")); err == nil {
		filters.Rooms = &v
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		filters.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		filters.PriceMax = &v
	}
	if v, err := strconv.ParseFloat(q.Get("minArea"), 64); err == nil {
		filters.AreaMin = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxArea"), 64); err == nil {
		filters.AreaMax = &v
	}
	return filters
}

// List обрабатывает GET /api/properties
func (h *PropertyHandlers) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	limit, offset := GetPagination(r)
	page, err := h.findUC.Execute(r.Context(), parseFilters(r), limit, offset)
	if err != nil {
		logger.Error("FindProperties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]PropertyResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPropertyResponse(&page.Items[i]))
	}
	RespondWithJSON(w, http.StatusOK, PageResponse{
		Success:     true,
		Count:       page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Data:        items,
	})
}

// Get обрабатывает GET /api/properties/{id}
func (h *PropertyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	listing, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("GetProperty use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"property": toPropertyResponse(listing),
	})
}

// MyProperties обрабатывает GET /api/properties/user/my-properties
func (h *PropertyHandlers) MyProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MyProperties"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit, offset := GetPagination(r)
	page, err := h.myPropsUC.Execute(r.Context(), auth.UserID, limit, offset)
	if err != nil {
		logger.Error("GetUserProperties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]PropertyResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPropertyResponse(&page.Items[i]))
	}
	RespondWithJSON(w, http.StatusOK, PageResponse{
		Success:     true,
		Count:       page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Data:        items,
	})
}

// parsePropertyForm собирает PropertyRequest из multipart-полей.
// Числа приходят строками, поэтому парсинг числовых полей дает 400 явно.
func parsePropertyForm(r *http.Request) (*PropertyRequest, error) {
	req := &PropertyRequest{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Type:         r.FormValue("type"),
		PropertyType: r.FormValue("propertyType"),
		Address:      r.FormValue("address"),
		District:     r.FormValue("district"),
		ContactPhone: r.FormValue("contactPhone"),
		Status:       r.FormValue("status"),
	}

	var err error
	if req.Price, err = strconv.ParseFloat(r.FormValue("price"), 64); err != nil {
		return nil, errors.New("price must be a number")
	}
	if req.Area, err = strconv.ParseFloat(r.FormValue("area"), 64); err != nil {
		return nil, errors.New("area must be a number")
	}
	if s := r.FormValue("rooms"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.New("rooms must be an integer")
		}
		req.Rooms = &v
	}
	if s := r.FormValue("bathrooms"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.New("bathrooms must be an integer")
		}
		req.Bathrooms = &v
	}
	if s := r.FormValue("latitude"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New("latitude must be a number")
		}
		req.Latitude = &v
	}
	if s := r.FormValue("longitude"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New("longitude must be a number")
		}
		req.Longitude = &v
	}
	if s := r.FormValue("contactEmail"); s != "" {
		req.ContactEmail = &s
	}
	if s := r.FormValue("yearBuilt"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.New("yearBuilt must be an integer")
		}
		req.YearBuilt = &v
	}
	return req, nil
}

// validatePropertyRequest прогоняет собранную форму через JSON-схему.
func validatePropertyRequest(req *PropertyRequest) error {
	raw, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return contracts.Validate("property", raw)
}

// collectUploads проверяет лимиты загрузки и открывает файлы формы.
// Вызывающий обязан закрыть ридеры через closeUploads.
func collectUploads(files []*multipart.FileHeader) ([]usecases_port.ImageUpload, []io.Closer, error) {
	if len(files) > maxUploadFiles {
		return nil, nil, errors.New("at most 10 images can be uploaded at once")
	}

	var uploads []usecases_port.ImageUpload
	var closers []io.Closer
	for _, header := range files {
		if header.Size > maxUploadFileSize {
			closeUploads(closers)
			return nil, nil, errors.New("each image must be at most 5MB")
		}
		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			closeUploads(closers)
			return nil, nil, errors.New("only image files are allowed")
		}
		file, err := header.Open()
		if err != nil {
			closeUploads(closers)
			return nil, nil, errors.New("failed to read uploaded file")
		}
		closers = append(closers, file)
		uploads = append(uploads, usecases_port.ImageUpload{
			FileName: header.Filename,
			Content:  file,
		})
	}
	return uploads, closers, nil
}

func closeUploads(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

// Create обрабатывает POST /api/properties (multipart-форма с изображениями).
func (h *PropertyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartForm); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Request must be a multipart form")
		return
	}

	req, err := parsePropertyForm(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePropertyRequest(req); err != nil {
		logger.Warn("Property form failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}
	uploads, closers, err := collectUploads(files)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer closeUploads(closers)

	listing, err := h.createUC.Execute(r.Context(), usecases_port.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		Area:         req.Area,
		Rooms:        req.Rooms,
		Bathrooms:    req.Bathrooms,
		Address:      req.Address,
		District:     req.District,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		YearBuilt:    req.YearBuilt,
		OwnerID:      auth.UserID,
	}, uploads)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateListing) {
			WriteJSONError(w, http.StatusConflict, "You already have an identical listing")
			return
		}
		logger.Error("CreateProperty use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"property": toPropertyResponse(listing),
	})
}

// Update обрабатывает PUT /api/properties/{id}
func (h *PropertyHandlers) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := contracts.Validate("property", body); err != nil {
		logger.Warn("Property update failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property data")
		return
	}

	var req PropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.updateUC.Execute(r.Context(), auth.UserID, auth.Role, id, usecases_port.UpdatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		Area:         req.Area,
		Rooms:        req.Rooms,
		Bathrooms:    req.Bathrooms,
		Address:      req.Address,
		District:     req.District,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Status:       req.Status,
		YearBuilt:    req.YearBuilt,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "You can only modify your own listings")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusBadRequest, "Invalid property status")
		default:
			logger.Error("UpdateProperty use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"property": toPropertyResponse(&domain.PropertyListing{Property: *property}),
	})
}

// Delete обрабатывает DELETE /api/properties/{id}
func (h *PropertyHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), auth.UserID, auth.Role, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "You can only delete your own listings")
		default:
			logger.Error("DeleteProperty use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Property deleted successfully",
	})
}

// AddImages обрабатывает POST /api/properties/{id}/images
func (h *PropertyHandlers) AddImages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddPropertyImages"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartForm); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Request must be a multipart form")
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}
	if len(files) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No images provided")
		return
	}
	uploads, closers, err := collectUploads(files)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer closeUploads(closers)

	images, err := h.addImagesUC.Execute(r.Context(), auth.UserID, auth.Role, id, uploads)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "You can only modify your own listings")
		default:
			logger.Error("AddPropertyImages use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"images":  toImageResponses(images),
	})
}

// DeleteImage обрабатывает DELETE /api/properties/{id}/images/{imageID}
func (h *PropertyHandlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeletePropertyImage"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}
	imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid image id")
		return
	}

	if err := h.deleteImageUC.Execute(r.Context(), auth.UserID, auth.Role, id, imageID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrImageNotFound):
			WriteJSONError(w, http.StatusNotFound, "Image not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "You can only modify your own listings")
		default:
			logger.Error("DeletePropertyImage use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Image deleted successfully",
	})
}

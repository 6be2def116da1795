package rest

import (
	"time"

	"realnest-backend/internal/core/domain"
)

// RegisterRequest - тело запроса для регистрации.
type RegisterRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone,omitempty"`
}

// LoginRequest - тело запроса для входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse - публичные поля пользователя.
type UserResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// AuthResponse - ответ register/login: пользователь и его токен.
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UpdateProfileRequest - тело запроса обновления профиля.
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
}

// ChangePasswordRequest - тело запроса смены пароля.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PropertyRequest - тело запроса создания/обновления объявления.
// При создании поля приходят из multipart-формы, при обновлении - JSON.
type PropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	PropertyType string   `json:"propertyType"`
	Price        float64  `json:"price"`
	Area         float64  `json:"area"`
	Rooms        *int     `json:"rooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	Address      string   `json:"address"`
	District     string   `json:"district"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail *string  `json:"contactEmail,omitempty"`
	Status       string   `json:"status,omitempty"`
	YearBuilt    *int     `json:"yearBuilt,omitempty"`
}

// PropertyImageResponse - изображение объявления.
type PropertyImageResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

// OwnerResponse - публичные поля владельца объявления.
type OwnerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// PropertyResponse - объявление, как оно отдается клиенту.
type PropertyResponse struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Type         string                  `json:"type"`
	PropertyType string                  `json:"propertyType"`
	Price        float64                 `json:"price"`
	Area         float64                 `json:"area"`
	Rooms        *int                    `json:"rooms,omitempty"`
	Bathrooms    *int                    `json:"bathrooms,omitempty"`
	Address      string                  `json:"address"`
	District     string                  `json:"district"`
	Latitude     *float64                `json:"latitude,omitempty"`
	Longitude    *float64                `json:"longitude,omitempty"`
	ContactPhone string                  `json:"contactPhone"`
	ContactEmail *string                 `json:"contactEmail,omitempty"`
	Status       string                  `json:"status"`
	YearBuilt    *int                    `json:"yearBuilt,omitempty"`
	OwnerID      string                  `json:"ownerId"`
	Owner        *OwnerResponse          `json:"owner,omitempty"`
	Images       []PropertyImageResponse `json:"images"`
	CreatedAt    string                  `json:"createdAt"`
	UpdatedAt    string                  `json:"updatedAt"`
}

func toImageResponses(images []domain.PropertyImage) []PropertyImageResponse {
	result := make([]PropertyImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, PropertyImageResponse{
			ID:        img.ID.String(),
			ImageURL:  img.ImageURL,
			IsPrimary: img.IsPrimary,
		})
	}
	return result
}

func toPropertyResponse(listing *domain.PropertyListing) PropertyResponse {
	resp := PropertyResponse{
		ID:           listing.ID.String(),
		Title:        listing.Title,
		Description:  listing.Description,
		Type:         listing.Type,
		PropertyType: listing.PropertyType,
		Price:        listing.Price,
		Area:         listing.Area,
		Rooms:        listing.Rooms,
		Bathrooms:    listing.Bathrooms,
		Address:      listing.Address,
		District:     listing.District,
		Latitude:     listing.Latitude,
		Longitude:    listing.Longitude,
		ContactPhone: listing.ContactPhone,
		ContactEmail: listing.ContactEmail,
		Status:       listing.Status,
		YearBuilt:    listing.YearBuilt,
		OwnerID:      listing.OwnerID.String(),
		Images:       toImageResponses(listing.Images),
		CreatedAt:    listing.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    listing.UpdatedAt.Format(time.RFC3339),
	}
	if listing.Owner != nil {
		resp.Owner = &OwnerResponse{
			FirstName: listing.Owner.FirstName,
			LastName:  listing.Owner.LastName,
			Email:     listing.Owner.Email,
		}
	}
	return resp
}

// PageResponse - обертка для постраничных списков.
type PageResponse struct {
	Success     bool        `json:"success"`
	Count       int         `json:"count"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Data        interface{} `json:"data"`
}

// ContactRequest - тело запроса формы обратной связи.
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

// ContactResponse - контактное сообщение для админки.
type ContactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	Reply     *string `json:"reply,omitempty"`
	RepliedAt *string `json:"repliedAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func toContactResponse(m *domain.ContactMessage) ContactResponse {
	resp := ContactResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		Reply:     m.Reply,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.RepliedAt != nil {
		s := m.RepliedAt.Format(time.RFC3339)
		resp.RepliedAt = &s
	}
	return resp
}

// ContactStatusRequest - тело запроса смены статуса сообщения.
type ContactStatusRequest struct {
	Status string `json:"status"`
}

// ContactReplyRequest - тело запроса ответа на сообщение.
type ContactReplyRequest struct {
	Reply string `json:"reply"`
}

// EstimateRequestBody - тело запроса оценки стоимости.
type EstimateRequestBody struct {
	PropertyType string  `json:"propertyType"`
	District     string  `json:"district"`
	Area         float64 `json:"area"`
	Rooms        *int    `json:"rooms,omitempty"`
	YearBuilt    *int    `json:"yearBuilt,omitempty"`
	Condition    string  `json:"condition,omitempty"`
}

// EstimateResponse - результат оценки.
type EstimateResponse struct {
	Success          bool  `json:"success"`
	EstimatedPrice   int64 `json:"estimatedPrice"`
	PricePerSqMeter  int64 `json:"pricePerSqMeter"`
	PriceRangeMin    int64 `json:"priceRangeMin"`
	PriceRangeMax    int64 `json:"priceRangeMax"`
	BasedOnAnalogues bool  `json:"basedOnAnalogues"`
}

// StatsResponse - сводка для панели администратора.
type StatsResponse struct {
	Success          bool             `json:"success"`
	UserCount        int              `json:"userCount"`
	PropertyCount    int              `json:"propertyCount"`
	NewMessagesCount int              `json:"newMessagesCount"`
	PropertiesByType []CountItem      `json:"propertiesByType"`
	TopDistricts     []CountItem      `json:"topDistricts"`
	Last30Days       Last30DaysCounts `json:"last30Days"`
}

type CountItem struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Last30DaysCounts struct {
	NewUsers      int `json:"newUsers"`
	NewProperties int `json:"newProperties"`
}

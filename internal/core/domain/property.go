package domain

import (
	"time"

	"github.com/google/uuid"
)

// Типы сделок.
const (
	DealTypeSale = "sale"
	DealTypeRent = "rent"
)

// Типы недвижимости.
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeCommercial = "commercial"
	PropertyTypeLand       = "land"
)

// Статусы объявления.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusSold     = "sold"
	StatusRented   = "rented"
)

// Property - объявление о продаже/аренде недвижимости.
type Property struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Type         string // sale | rent
	PropertyType string // apartment | house | commercial | land
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
	Status       string
	YearBuilt    *int
	// ObjectHash - стабильный хэш по ключевым полям объявления (geohash + тип +
	// площадь + комнаты). Используется для поиска дубликатов при создании.
	ObjectHash string
	OwnerID    uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PropertyImage - изображение объявления. Ровно одно изображение объявления
// может быть основным (is_primary), это гарантирует частичный уникальный
// индекс в БД.
type PropertyImage struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	ImageURL   string
	IsPrimary  bool
	// Phash - перцептивный хэш картинки, по нему отсеиваются дубликаты
	// при загрузке. 0 означает "хэш не вычислен".
	Phash     uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerInfo - публичные поля владельца, которые отдаются вместе с объявлением.
type OwnerInfo struct {
	FirstName string
	LastName  string
	Email     string
}

// PropertyListing - объявление вместе с картинками и владельцем,
// как оно отдается в списках и деталях.
type PropertyListing struct {
	Property
	Owner  *OwnerInfo
	Images []PropertyImage
}

func IsValidDealType(t string) bool {
	return t == DealTypeSale || t == DealTypeRent
}

func IsValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial, PropertyTypeLand:
		return true
	}
	return false
}

func IsValidPropertyStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusSold, StatusRented:
		return true
	}
	return false
}

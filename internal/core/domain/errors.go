package domain

import "errors"

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
// REST-адаптер сопоставляет их с HTTP-статусами.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrAccountDisabled    = errors.New("account is disabled")

	ErrForbidden        = errors.New("operation is not permitted")
	ErrSelfModification = errors.New("admins cannot modify their own account")

	ErrPropertyNotFound = errors.New("property not found")
	ErrImageNotFound    = errors.New("property image not found")
	ErrDuplicateListing = errors.New("a similar listing already exists")

	ErrContactNotFound = errors.New("contact message not found")
	ErrInvalidStatus   = errors.New("invalid status value")
)

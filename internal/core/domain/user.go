package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Роли пользователей. Других ролей в системе нет.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User - основная доменная сущность пользователя.
// PasswordHash никогда не отдается наружу, для API есть PublicUser.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        *string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claims - это данные, которые мы "зашиваем" в JWT токен.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// NewUser создает нового пользователя. Хэширование пароля происходит здесь.
func NewUser(firstName, lastName, email, password string, phone *string) (*User, error) {
	// bcrypt.DefaultCost - хороший баланс между скоростью и безопасностью.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
		Role:         RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CheckPassword сравнивает предоставленный пароль с хэшем, хранящимся у пользователя.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetPassword хэширует и устанавливает новый пароль.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// IsAdmin - проверка роли.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

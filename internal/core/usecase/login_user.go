package usecase

import (
	"context"
	"fmt"
	"time"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type LoginUserUseCase struct {
	userRepo       port.UserRepositoryPort
	tokenSvc       port.TokenServicePort
	accessTokenTTL time.Duration
}

func NewLoginUserUseCase(userRepo port.UserRepositoryPort, tokenSvc port.TokenServicePort, accessTokenTTL time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:       userRepo,
		tokenSvc:       tokenSvc,
		accessTokenTTL: accessTokenTTL,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})

	ucLogger.Info("Use case started: attempting to log in", nil)

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed while finding user by email", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		// Не раскрываем, что именно неверно: email или пароль.
		ucLogger.Warn("Login failed: user not found", nil)
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		ucLogger.Warn("Login failed: account is disabled", port.Fields{"user_id": user.ID.String()})
		return nil, "", domain.ErrAccountDisabled
	}

	if !user.CheckPassword(password) {
		ucLogger.Warn("Login failed: wrong password", port.Fields{"user_id": user.ID.String()})
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, user, uc.accessTokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: user logged in", port.Fields{"user_id": user.ID.String()})
	return user, token, nil
}

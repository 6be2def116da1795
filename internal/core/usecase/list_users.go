package usecase

import (
	"context"
	"fmt"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

type ListUsersUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewListUsersUseCase(userRepo port.UserRepositoryPort) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, search string, limit, offset int) (domain.Page[domain.User], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListUsers"})

	users, totalCount, err := uc.userRepo.List(ctx, search, limit, offset)
	if err != nil {
		ucLogger.Error("Repository failed to list users", err, nil)
		return domain.Page[domain.User]{}, fmt.Errorf("internal server error: %w", err)
	}

	return domain.NewPage(users, totalCount, limit, offset), nil
}

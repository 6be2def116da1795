package contextkeys

import (
	"context"

	"github.com/google/uuid"
)

// AuthInfo - данные аутентифицированного пользователя, которые middleware
// кладет в контекст запроса после проверки токена.
type AuthInfo struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type authInfoKeyType struct{}

var authInfoKey = authInfoKeyType{}

// ContextWithAuthInfo помещает данные пользователя в контекст.
func ContextWithAuthInfo(ctx context.Context, info AuthInfo) context.Context {
	return context.WithValue(ctx, authInfoKey, info)
}

// AuthInfoFromContext извлекает данные пользователя.
// ok == false означает, что запрос не прошел через auth middleware.
func AuthInfoFromContext(ctx context.Context) (AuthInfo, bool) {
	info, ok := ctx.Value(authInfoKey).(AuthInfo)
	return info, ok
}

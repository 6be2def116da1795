package rest

import (
	"net/http"
	"strings"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
)

// AuthMiddleware проверяет bearer-токен и кладет данные пользователя в контекст.
// Пользователь перечитывается из БД на каждом запросе: удаленный аккаунт
// дает 401, заблокированный - 403, даже с еще живым токеном.
func AuthMiddleware(tokenSvc port.TokenServicePort, userRepo port.UserRepositoryPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
				"middleware": "Auth",
			})

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header must be a bearer token")
				return
			}

			claims, err := tokenSvc.ValidateToken(r.Context(), tokenString)
			if err != nil {
				logger.Warn("Token validation failed", port.Fields{"error": err.Error()})
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Error("Failed to load user for token", err, nil)
				WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token refers to a deleted user", port.Fields{"user_id": claims.UserID.String()})
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			if !user.IsActive {
				logger.Warn("Deactivated user attempted access", port.Fields{"user_id": user.ID.String()})
				WriteJSONError(w, http.StatusForbidden, "Account is deactivated")
				return
			}

			// Роль берем из БД, а не из токена: понижение в правах
			// действует немедленно.
			ctx := contextkeys.ContextWithAuthInfo(r.Context(), contextkeys.AuthInfo{
				UserID: user.ID,
				Email:  user.Email,
				Role:   user.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware пропускает дальше только администраторов.
// Должен стоять после AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, ok := contextkeys.AuthInfoFromContext(r.Context())
		if !ok {
			WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if auth.Role != domain.RoleAdmin {
			WriteJSONError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

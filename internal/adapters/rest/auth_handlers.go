package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/contracts"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

// AuthHandlers - регистрация, вход и профиль текущего пользователя.
type AuthHandlers struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
	profileUC  usecases_port.GetProfileUseCasePort
}

func NewAuthHandlers(
	registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
	profileUC usecases_port.GetProfileUseCasePort,
) *AuthHandlers {
	return &AuthHandlers{
		registerUC: registerUC,
		loginUC:    loginUC,
		profileUC:  profileUC,
	}
}

// Register обрабатывает POST /api/auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := contracts.Validate("register", body); err != nil {
		logger.Warn("Register request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing register request", nil)

	user, token, err := h.registerUC.Execute(r.Context(), usecases_port.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			handlerLogger.Warn("Registration failed: email already in use", nil)
			WriteJSONError(w, http.StatusConflict, "Email is already registered")
			return
		}
		handlerLogger.Error("Register use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	handlerLogger.Info("User registered successfully", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := contracts.Validate("login", body); err != nil {
		logger.Warn("Login request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			handlerLogger.Warn("Login failed: invalid credentials", nil)
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if errors.Is(err, domain.ErrAccountDisabled) {
			handlerLogger.Warn("Login failed: account is deactivated", nil)
			WriteJSONError(w, http.StatusForbidden, "Account is deactivated")
			return
		}
		handlerLogger.Error("Login use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	handlerLogger.Info("User logged in successfully", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Profile обрабатывает GET /api/auth/profile
func (h *AuthHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Profile"})

	auth, ok := contextkeys.AuthInfoFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.profileUC.Execute(r.Context(), auth.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("Profile use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    toUserResponse(user),
	})
}

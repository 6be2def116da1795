package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"realnest-backend/internal/adapters/filestore"
	token_adapter "realnest-backend/internal/adapters/jwt"
	logger_adapter "realnest-backend/internal/adapters/logger"
	postgres_adapter "realnest-backend/internal/adapters/postgres"
	"realnest-backend/internal/adapters/rest"
	smtp_adapter "realnest-backend/internal/adapters/smtp"
	"realnest-backend/internal/configs"
	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/usecase"
	fluentlogger "realnest-backend/pkg/fluent_logger"
	"realnest-backend/pkg/postgres"
)

// App – структура приложения
type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    appConfig.Database.MaxConns,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Debug("Successfully connected to PostgreSQL pool!", nil)

	// Схема и первичный администратор. Оба вызова идемпотентны.
	bootCtx := contextkeys.ContextWithLogger(context.Background(), appLogger)
	if err := postgres_adapter.InitSchema(bootCtx, dbPool); err != nil {
		appLogger.Error("Failed to initialize database schema", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}
	if err := postgres_adapter.EnsureAdmin(bootCtx, dbPool, appConfig.Admin.Email, appConfig.Admin.Password); err != nil {
		appLogger.Error("Failed to ensure admin account", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to ensure admin account: %w", err)
	}

	userRepo, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	propertyRepo, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	imageRepo, err := postgres_adapter.NewImageRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create image repository: %w", err)
	}
	contactRepo, err := postgres_adapter.NewContactRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	statsRepo, err := postgres_adapter.NewStatsRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create stats repository: %w", err)
	}

	tokenAdapter, err := token_adapter.NewTokenService(appConfig.Jwt.SecretKey)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token adapter: %w", err)
	}

	fileStorage, err := filestore.NewLocalStorage(appConfig.Uploads.Dir, "/uploads")
	if err != nil {
		appLogger.Error("Failed to create local file storage", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create local file storage: %w", err)
	}

	// Почта опциональна: без неё ответы на обращения просто сохраняются в базе.
	var mailer port.MailerPort
	if appConfig.SMTP.Enabled {
		smtpMailer, err := smtp_adapter.NewMailer(smtp_adapter.Config{
			Host:     appConfig.SMTP.Host,
			Port:     appConfig.SMTP.Port,
			Username: appConfig.SMTP.Username,
			Password: appConfig.SMTP.Password,
			From:     appConfig.SMTP.From,
		})
		if err != nil {
			appLogger.Error("Failed to create SMTP mailer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create SMTP mailer: %w", err)
		}
		mailer = smtpMailer
	}
	appLogger.Debug("All persistence and service adapters initialized.", nil)

	// --- 4. USE CASES (ядро бизнес-логики) ---
	registerUC := usecase.NewRegisterUserUseCase(userRepo, tokenAdapter, appConfig.Jwt.TokenTTL)
	loginUC := usecase.NewLoginUserUseCase(userRepo, tokenAdapter, appConfig.Jwt.TokenTTL)
	getProfileUC := usecase.NewGetProfileUseCase(userRepo)
	updateProfileUC := usecase.NewUpdateProfileUseCase(userRepo)
	changePasswordUC := usecase.NewChangePasswordUseCase(userRepo)

	findPropertiesUC := usecase.NewFindPropertiesUseCase(propertyRepo)
	getPropertyUC := usecase.NewGetPropertyUseCase(propertyRepo)
	getUserPropertiesUC := usecase.NewGetUserPropertiesUseCase(propertyRepo)
	createPropertyUC := usecase.NewCreatePropertyUseCase(propertyRepo, fileStorage)
	updatePropertyUC := usecase.NewUpdatePropertyUseCase(propertyRepo)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(propertyRepo, fileStorage)
	addImagesUC := usecase.NewAddPropertyImagesUseCase(propertyRepo, imageRepo, fileStorage)
	deleteImageUC := usecase.NewDeletePropertyImageUseCase(propertyRepo, imageRepo, fileStorage)

	sendContactUC := usecase.NewSendContactMessageUseCase(contactRepo)
	listContactsUC := usecase.NewListContactMessagesUseCase(contactRepo)
	getContactUC := usecase.NewGetContactMessageUseCase(contactRepo)
	markReadUC := usecase.NewMarkContactReadUseCase(contactRepo)
	updateContactStatusUC := usecase.NewUpdateContactStatusUseCase(contactRepo)
	replyToContactUC := usecase.NewReplyToContactUseCase(contactRepo, mailer)
	deleteContactUC := usecase.NewDeleteContactMessageUseCase(contactRepo)

	listUsersUC := usecase.NewListUsersUseCase(userRepo)
	getUserByIDUC := usecase.NewGetUserByIDUseCase(userRepo)
	toggleActiveUC := usecase.NewToggleUserActiveUseCase(userRepo)
	toggleAdminUC := usecase.NewToggleUserAdminUseCase(userRepo)
	deleteUserUC := usecase.NewDeleteUserUseCase(userRepo, fileStorage)
	dashboardStatsUC := usecase.NewGetDashboardStatsUseCase(statsRepo)

	getDistrictsUC := usecase.NewGetDistrictsUseCase(propertyRepo)
	calculatePriceUC := usecase.NewCalculatePriceUseCase(propertyRepo)
	appLogger.Debug("All use cases initialized.", nil)

	// --- 5. REST API ---
	handlers := rest.Handlers{
		Auth:     rest.NewAuthHandlers(registerUC, loginUC, getProfileUC),
		User:     rest.NewUserHandlers(updateProfileUC, changePasswordUC),
		Property: rest.NewPropertyHandlers(findPropertiesUC, getPropertyUC, getUserPropertiesUC, createPropertyUC, updatePropertyUC, deletePropertyUC, addImagesUC, deleteImageUC),
		Contact:  rest.NewContactHandlers(sendContactUC, listContactsUC, getContactUC, markReadUC, updateContactStatusUC, replyToContactUC, deleteContactUC),
		Admin:    rest.NewAdminHandlers(listUsersUC, getUserByIDUC, toggleActiveUC, toggleAdminUC, deleteUserUC, dashboardStatsUC),
		Expert:   rest.NewExpertHandlers(getDistrictsUC, calculatePriceUC),
	}

	authMW := rest.AuthMiddleware(tokenAdapter, userRepo)
	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, authMW, baseLogger, appConfig.Uploads.Dir, appConfig.Rest.AllowedOrigin)
	appLogger.Debug("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Debug("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Debug("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Debug("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Debug("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

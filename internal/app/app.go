package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ventasuite/crm-backend/internal/adapter/postgres"
	customerrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/customer"
	messagerepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/message"
	profilerepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/profile"
	reminderrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/reminder"
	scheduledrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/scheduled"
	tokenrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/token"
	userrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/user"
	"github.com/ventasuite/crm-backend/internal/adapter/storage/s3"
	"github.com/ventasuite/crm-backend/internal/auth"
	"github.com/ventasuite/crm-backend/internal/config"
	authsvc "github.com/ventasuite/crm-backend/internal/service/auth"
	customersvc "github.com/ventasuite/crm-backend/internal/service/customer"
	messagesvc "github.com/ventasuite/crm-backend/internal/service/message"
	remindersvc "github.com/ventasuite/crm-backend/internal/service/reminder"
	usersvc "github.com/ventasuite/crm-backend/internal/service/user"
	"github.com/ventasuite/crm-backend/internal/transport/middleware"
	"github.com/ventasuite/crm-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and the HTTP transport, and
// serves until ctx is cancelled. Shutdown is graceful within the configured
// timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)

	customers := customerrepo.New(pool)
	messages := messagerepo.New(pool)
	scheduled := scheduledrepo.New(pool)
	reminders := reminderrepo.New(pool)
	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, profiles, tokens, tx, jwt, cfg.Auth)
	customerService := customersvc.NewService(logger, customers)
	messageService := messagesvc.NewService(logger, messages, scheduled, customers, cfg.CRM)
	reminderService := remindersvc.NewService(logger, reminders, customers)
	userService := usersvc.NewService(logger, users, profiles, tokens, tx, cfg.Auth)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Customers: rest.NewCustomerHandler(customerService, logger),
		Messages:  rest.NewMessageHandler(messageService, logger),
		Reminders: rest.NewReminderHandler(reminderService, logger),
		Users:     rest.NewUserHandler(userService, logger),
		Dashboard: rest.NewDashboardHandler(dashCounters{
			customers: customerService,
			messages:  messageService,
			reminders: reminderService,
		}, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	}

	if cfg.Storage.Enabled() {
		store, err := s3.New(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("init attachment storage: %w", err)
		}
		handlers.Attachments = rest.NewAttachmentHandler(store, cfg.Storage.MaxUploadBytes, logger)
		logger.Info("attachment storage enabled", slog.String("bucket", cfg.Storage.Bucket))
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwt),
	)(rest.NewRouter(handlers))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// dashCounters adapts the per-service count operations to the dashboard
// handler's aggregate view.
type dashCounters struct {
	customers *customersvc.Service
	messages  *messagesvc.Service
	reminders *remindersvc.Service
}

func (d dashCounters) CustomerCount(ctx context.Context) (int, error) {
	return d.customers.Count(ctx)
}

func (d dashCounters) MessageCount(ctx context.Context) (int, error) {
	return d.messages.Count(ctx)
}

func (d dashCounters) PendingReminderCount(ctx context.Context) (int, error) {
	return d.reminders.CountPending(ctx)
}

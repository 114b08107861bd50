package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/config"
	"github.com/dangerclosesec/mubadara/internal/email"
	"github.com/dangerclosesec/mubadara/internal/email/mailer"
	"github.com/dangerclosesec/mubadara/internal/events"
	"github.com/dangerclosesec/mubadara/internal/handler"
	"github.com/dangerclosesec/mubadara/internal/metrics"
	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	reg := metrics.New()

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	initiativeRepo := repository.NewInitiativeRepository(db)
	participantRepo := repository.NewParticipantRepository(db, reg)
	postRepo := repository.NewPostRepository(db)
	counterRepo := repository.NewCounterRepository(db, reg)
	moderationStore := repository.NewModerationStore(db)

	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	var (
		policy        moderation.AuthorizationPolicy = moderation.DefaultPolicy()
		relationships service.Relationships          = auth.NoopRelationships{}
		relationSync  *auth.RelationshipSync
	)
	if cfg.Permify.Enabled {
		permify, err := auth.NewPermifyService(cfg.Permify.Host, auth.WithTenant(cfg.Permify.Tenant))
		if err != nil {
			return fmt.Errorf("connecting to permify: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		version, err := permify.WriteSchema(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("writing permify schema: %w", err)
		}
		logger.Info("permify schema written", "version", version)

		policy = auth.NewPermifyPolicy(permify)
		relationSync = auth.NewRelationshipSync(permify)
		relationships = relationSync
	}

	moderationService := moderation.NewService(moderationStore, policy,
		moderation.WithLogger(logger),
		moderation.WithMetrics(reg),
	)

	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider), logger)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	userService := service.NewUserService(userRepo, orgRepo, passwordHasher, tokenManager, relationships, logger)
	orgService := service.NewOrganizationService(orgRepo, userRepo, moderationService, moderationStore, relationships, logger)
	initiativeService := service.NewInitiativeService(initiativeRepo, orgRepo, moderationService, moderationStore, relationships, logger)
	participationService := service.NewParticipationService(participantRepo, initiativeRepo,
		mailer.NewParticipantMailer(emailService, userRepo, cfg.BaseURL), logger)

	objectStore, err := storage.New(storage.Config{
		Provider:  cfg.Storage.Provider,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		UseTLS:    cfg.Storage.UseTLS,
		BasePath:  cfg.Storage.BasePath,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		return fmt.Errorf("setting up object storage: %w", err)
	}
	postService := service.NewPostService(postRepo, initiativeRepo, counterRepo, objectStore, service.PostConfig{
		Bucket:        cfg.Storage.Bucket,
		MaxImages:     cfg.Moderation.AllowedInitiativeImages,
		MaxImageBytes: cfg.Moderation.MaxImageBytes,
	}, logger)

	moderationService.OnCommitted("owner-type", orgService.OwnerTypeHook())
	moderationService.OnCommitted("email", moderation.NotifyHook(mailer.NewModerationMailer(emailService, userRepo, cfg.BaseURL)))
	if relationSync != nil {
		moderationService.OnCommitted("permify", relationSync.Hook())
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := events.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer producer.Close()
		moderationService.OnCommitted("kafka", producer.Hook())
	}

	machine := moderationService.Machine()
	routerConfig := handler.RouterConfig{
		Logger:        logger,
		Tokens:        tokenManager,
		Actors:        userService,
		CORSOrigins:   cfg.Server.CORSOrigins,
		Auth:          handler.NewAuthHandler(userService),
		Organizations: handler.NewOrganizationHandler(orgService, machine),
		Initiatives:   handler.NewInitiativeHandler(initiativeService, machine),
		Participants:  handler.NewParticipantHandler(participationService),
		Posts:         handler.NewPostHandler(postService),
	}
	if cfg.Metrics.Enabled {
		routerConfig.Metrics = reg.Handler()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.NewRouter(routerConfig),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.Database.LogLevel)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"kuchi/config"
	httpapi "kuchi/restaurant-svc/internal/api/http"
	"kuchi/restaurant-svc/internal/service"
	"kuchi/restaurant-svc/internal/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	var cfg config.Restaurant
	if err := config.Load(&cfg); err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := config.NewLogger("restaurant-svc", cfg.Log)
	component := func(name string) *logrus.Entry { return logger.WithField("component", name) }

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.DatabaseURL)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatalf("schema: %v", err)
	}

	var (
		urlCache service.URLCache
		activity service.ActivityStore
	)
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr)
		defer rdb.Close()
		cache := storage.NewRedisCache(rdb)
		urlCache, activity = cache, cache
	}

	var publisher service.AuditPublisher
	if cfg.KafkaBroker != "" {
		kafkaPublisher := storage.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBroker, cfg.AuditTopic))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	objects, err := storage.NewS3Store(ctx, storage.S3Config{
		Region:          cfg.AWSRegion,
		Bucket:          cfg.AWSBucket,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.AWSEndpoint,
	})
	if err != nil {
		logger.Fatalf("object storage: %v", err)
	}

	var identity service.IdentityVerifier
	if cfg.FederatedSignIn() {
		verifier, err := storage.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Fatalf("firebase: %v", err)
		}
		identity = verifier
	}

	tokens, err := service.NewTokenManagerFromBase64(cfg.JWTPrivateKey, cfg.JWTPublicKey, cfg.TokenTTL)
	if err != nil {
		logger.Fatalf("token keys: %v", err)
	}

	audit := service.NewAuditWriter(repo, publisher, component("audit"))
	assets := service.NewAssetManager(objects, urlCache, cfg.SignedURLTTL, component("assets"))
	menuItems := service.NewMenuItemService(repo, repo, service.NewMenuRelations(repo), assets, audit, component("menu-items"))

	handler := &httpapi.Handler{
		Guard:       service.NewGuard(tokens, repo, component("guard")),
		Credentials: service.NewCredentialService(repo, repo, tokens, identity, audit, component("credentials")),
		Categories:  service.NewCategoryService(repo, assets, audit),
		MenuItems:   menuItems,
		Options:     service.NewOptionService(repo, audit),
		Members:     service.NewMemberService(repo, repo, audit),
		Roles:       service.NewRoleService(repo, audit),
		Activity:    service.NewActivityService(activity),
		QR:          service.MenuQRGenerator{BaseURL: cfg.MenuBaseURL},
		Log:         component("http"),
	}

	srv := httpapi.NewServer(":"+cfg.Port, httpapi.NewRouter(handler))
	go func() {
		logger.Infof("restaurant-svc listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

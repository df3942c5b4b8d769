package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"

	"eventhub/internal/auth"
	"eventhub/internal/config"
	"eventhub/internal/graph"
	apihttp "eventhub/internal/http"
	"eventhub/internal/repository/sqlite"
	"eventhub/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("EVENTHUB_AUTH_JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("open database")
	}
	defer db.Close()

	users := sqlite.NewUserRepository(db)
	events := sqlite.NewEventRepository(db)
	enrollments := sqlite.NewEnrollmentRepository(db)
	messages := sqlite.NewMessageRepository(db)
	for _, r := range []interface {
		Init(context.Context) error
	}{users, events, enrollments, messages} {
		if err := r.Init(ctx); err != nil {
			logger.WithError(err).Fatal("init schema")
		}
	}

	codec, err := auth.NewCodec(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		logger.WithError(err).Fatal("configure token codec")
	}
	gate := auth.NewGate(codec, users, logger)

	userService := service.NewUserService(users, codec)
	eventService := service.NewEventService(events)
	enrollmentService := service.NewEnrollmentService(enrollments, users, events)
	messageService := service.NewMessageService(messages)
	seedService := service.NewSeedService(users, events, enrollments, cfg.Seed.DataDir, logger)

	resolver := graph.NewResolver(gate, userService, eventService, enrollmentService, messageService, seedService)
	schema := graphql.MustParseSchema(graph.Schema, resolver)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	apihttp.NewHandler(schema, logger).RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.WithField("addr", cfg.Server.Addr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

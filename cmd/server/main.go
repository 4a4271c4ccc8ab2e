package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/healthbridge/backend/internal/config"
	"github.com/healthbridge/backend/internal/events"
	"github.com/healthbridge/backend/internal/httpserver"
	"github.com/healthbridge/backend/internal/repo"
	"github.com/healthbridge/backend/internal/search"
	"github.com/healthbridge/backend/internal/seed"
	"github.com/healthbridge/backend/internal/service"
	"github.com/healthbridge/backend/internal/session"
	"github.com/healthbridge/backend/pkg/db"
	"github.com/healthbridge/backend/pkg/logging"
	loggingmw "github.com/healthbridge/backend/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	Repo := &repo.GormRepo{DB: gdb}

	seedCtx := logging.IntoContext(context.Background(), logger)
	if err := seed.Run(seedCtx, Repo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if producer == nil {
		logger.Warn("kafka brokers not configured, order events disabled")
	}

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search falls back to database", "error", err)
			esClient = nil
		}
	}

	minter := session.NewMinter(cfg.SessionSecret)

	cartService := &service.CartService{Repo: Repo}
	orderService := &service.OrderService{Repo: Repo, Producer: producer}
	catalogService := &service.CatalogService{Repo: Repo, ES: esClient}
	authService := &service.AuthService{
		Repo:      Repo,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  24 * time.Hour,
	}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		CartHandler:     &httpserver.CartHTTP{Svc: cartService, Minter: minter},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderService, Minter: minter},
		MedicineHandler: &httpserver.MedicineHTTP{Svc: catalogService},
		DiseaseHandler:  &httpserver.DiseaseHTTP{Svc: catalogService},
		AuthHandler:     &httpserver.AuthHTTP{Svc: authService},
		AdminHandler:    &httpserver.AdminHTTP{Orders: orderService, Auth: authService},
		JWTSecret:       cfg.JWTSecret,
	})

	go func() {
		addr := ":" + strconv.Itoa(cfg.ServerPort)
		logger.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close", "error", err)
		}
	}

	sqlDB, err := gdb.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}

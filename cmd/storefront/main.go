package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/giannis-supplies/storefront/internal/account"
	"github.com/giannis-supplies/storefront/internal/cart"
	"github.com/giannis-supplies/storefront/internal/catalog"
	"github.com/giannis-supplies/storefront/internal/config"
	"github.com/giannis-supplies/storefront/internal/es"
	"github.com/giannis-supplies/storefront/internal/events"
	"github.com/giannis-supplies/storefront/internal/httpserver"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/order"
	"github.com/giannis-supplies/storefront/internal/store"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := cfg.InitDB(initCtx)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	records, err := store.New(db)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(strings.Split(cfg.KafkaAddress, ","))
	}

	products := catalog.Default()

	cartService := &cart.Service{
		Store:    records,
		Catalog:  products,
		Producer: producer,
	}
	accountService := &account.Service{
		Store:    records,
		Producer: producer,
	}
	orderService := &order.Service{
		Store:    records,
		Cart:     cartService,
		Producer: producer,
	}

	productHandler := &httpserver.ProductHTTP{Catalog: products}
	if cfg.ESURL != "" {
		client, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("elasticsearch unavailable, using in-memory search", "error", err)
		} else {
			productHandler.ES = client
		}
	}

	httpserver.Register(e, &httpserver.Deps{
		Products:  productHandler,
		Cart:      &httpserver.CartHTTP{Svc: cartService},
		Auth:      &httpserver.AuthHTTP{Svc: accountService, JWTSecret: cfg.JWTSecret},
		Orders:    &httpserver.OrderHTTP{Svc: orderService},
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		log.Printf("Starting storefront on port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}

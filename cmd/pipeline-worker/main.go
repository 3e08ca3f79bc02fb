package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hotelforge/aggregator/internal/adapter/hotelbeds"
	"github.com/hotelforge/aggregator/internal/adapter/hotelplanner"
	"github.com/hotelforge/aggregator/internal/composite"
	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/email"
	notifieramqp "github.com/hotelforge/aggregator/internal/notifier/amqp"
	"github.com/hotelforge/aggregator/internal/paymentgateway/midtrans"
	"github.com/hotelforge/aggregator/internal/pipeline"
	"github.com/hotelforge/aggregator/internal/platform/config"
	"github.com/hotelforge/aggregator/internal/platform/idempotency"
	"github.com/hotelforge/aggregator/internal/platform/logger"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/recordstore/postgres"
)

// webhookPayload is the shape Midtrans-style payment notifications arrive
// in: just enough to look up and drive the booking they belong to.
type webhookPayload struct {
	OrderID string `json:"order_id" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	logger.Info("Starting pipeline worker...")

	pool, err := postgres.NewPool(context.Background(), cfg.Database)
	if err != nil {
		logger.FatalWithErr(err, "Failed to connect to database")
		return
	}
	defer pool.Close()
	store := postgres.New(pool)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	idempotent := idempotency.New(redisClient)

	bus, err := notifieramqp.New(notifieramqp.Config{
		Host:           cfg.RabbitMQ.Host,
		Port:           cfg.RabbitMQ.Port,
		User:           cfg.RabbitMQ.User,
		Password:       cfg.RabbitMQ.Password,
		VHost:          cfg.RabbitMQ.VHost,
		ReconnectDelay: cfg.RabbitMQ.ReconnectDelay,
	})
	if err != nil {
		logger.FatalWithErr(err, "Failed to connect to rabbitmq")
		return
	}
	defer bus.Close()

	gateway := midtrans.NewClient(midtrans.Config{
		ServerKey:    cfg.PaymentGateway.ServerKey,
		MerchantID:   cfg.PaymentGateway.MerchantID,
		IsProduction: cfg.PaymentGateway.IsProduction,
		Timeout:      30 * time.Second,
	})

	hotelProvider := buildCompositeProvider(cfg)

	emailClient := email.NewClient(email.Config{
		APIKey:    os.Getenv("HOTELFORGE_SENDGRID_APIKEY"),
		FromEmail: os.Getenv("HOTELFORGE_SENDGRID_FROMEMAIL"),
		FromName:  "HotelForge",
		Timeout:   10 * time.Second,
	})

	engine := pipeline.New(bus,
		&pipeline.GetPaymentStatusStep{Gateway: gateway},
		&pipeline.UpdatePaymentDetailsStep{Gateway: gateway, Store: store},
		&pipeline.MakeBookingStep{Provider: hotelProvider, Store: store, Idempotent: idempotent},
		&pipeline.PersistBookRoomDetailsStep{Store: store},
		&pipeline.SendEmailStep{Store: store, Sender: emailClient},
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/webhooks/payment-notification", func(c *gin.Context) {
		var payload webhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event := newBookingEvent(payload)
		if err := engine.Run(c.Request.Context(), event); err != nil {
			logger.ErrorWithErr(err, fmt.Sprintf("pipeline run failed for order %s", payload.OrderID))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "processed"})
	})
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Infof("Pipeline worker listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalWithErr(err, "pipeline worker server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info("Pipeline worker exited cleanly")
}

func newBookingEvent(payload webhookPayload) *domain.ServerSideBookingEvent {
	return &domain.ServerSideBookingEvent{
		OrderID:       payload.OrderID,
		UserEmail:     payload.Email,
		CorrelationID: payload.OrderID,
	}
}

func buildCompositeProvider(cfg *config.Config) provider.HotelProvider {
	providers := []provider.HotelProvider{
		hotelbeds.New(cfg.Hotelbeds.APIKey, cfg.Hotelbeds.Secret, cfg.Hotelbeds.BaseURL, cfg.Hotelbeds.RequestsPerMinute),
		hotelplanner.New(cfg.HotelPlanner.APIKey, cfg.HotelPlanner.BaseURL),
	}
	return composite.New(providers)
}

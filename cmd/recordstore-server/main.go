// Command recordstore-server is the reference HTTP surface over the
// search/composite layer and the record store: a thin demo that exercises
// the library packages end to end, not a production booking API.
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
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hotelforge/aggregator/internal/adapter/hotelbeds"
	"github.com/hotelforge/aggregator/internal/adapter/hotelplanner"
	"github.com/hotelforge/aggregator/internal/composite"
	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/platform/authmiddleware"
	"github.com/hotelforge/aggregator/internal/platform/config"
	"github.com/hotelforge/aggregator/internal/platform/logger"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/recordstore"
	"github.com/hotelforge/aggregator/internal/recordstore/postgres"
)

type server struct {
	provider *composite.HotelProvider
	store    recordstore.Store
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	logger.Info("Starting recordstore-server...")

	pool, err := postgres.NewPool(context.Background(), cfg.Database)
	if err != nil {
		logger.FatalWithErr(err, "Failed to connect to database")
		return
	}
	defer pool.Close()
	store := postgres.New(pool)

	comp := composite.New([]provider.HotelProvider{
		hotelbeds.New(cfg.Hotelbeds.APIKey, cfg.Hotelbeds.Secret, cfg.Hotelbeds.BaseURL, cfg.Hotelbeds.RequestsPerMinute),
		hotelplanner.New(cfg.HotelPlanner.APIKey, cfg.HotelPlanner.BaseURL),
	})

	srv := &server{store: store, provider: comp}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", srv.handleHealth)
	router.POST("/search/hotels", srv.handleSearchHotels)

	bookings := router.Group("/", authmiddleware.RequireBearerToken(cfg.JWT.Secret))
	bookings.GET("/bookings/:orderID", srv.handleGetBooking)
	bookings.GET("/users/:email/bookings", srv.handleUserBookings)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Infof("recordstore-server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalWithErr(err, "recordstore-server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("recordstore-server exited cleanly")
}

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type searchHotelsRequest struct {
	PlaceID          string             `json:"place_id" binding:"required"`
	CheckIn          time.Time          `json:"check_in" binding:"required"`
	CheckOut         time.Time          `json:"check_out" binding:"required"`
	NoOfRooms        int                `json:"no_of_rooms" binding:"required"`
	RoomGuests       []domain.RoomGuest `json:"room_guests" binding:"required"`
	GuestNationality string             `json:"guest_nationality"`
}

// handleSearchHotels godoc
// @Summary      Search hotels
// @Description  Search across every healthy configured provider
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request  body      searchHotelsRequest  true  "Search criteria"
// @Success      200      {object}  domain.HotelListAfterSearch
// @Failure      400      {object}  map[string]string
// @Failure      503      {object}  map[string]string
// @Router       /search/hotels [post]
func (s *server) handleSearchHotels(c *gin.Context) {
	var req searchHotelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria := domain.HotelSearchCriteria{
		PlaceID:          req.PlaceID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		NoOfNights:       int(req.CheckOut.Sub(req.CheckIn).Hours() / 24),
		NoOfRooms:        req.NoOfRooms,
		RoomGuests:       req.RoomGuests,
		GuestNationality: req.GuestNationality,
	}
	if err := criteria.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, providerErr := s.provider.SearchHotels(c.Request.Context(), criteria, domain.UISearchFilters{})
	if providerErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": providerErr.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleGetBooking godoc
// @Summary      Get a booking
// @Description  Fetch one persisted booking record by its order id
// @Tags         bookings
// @Produce      json
// @Param        orderID  path      string  true  "Order id"
// @Success      200      {object}  domain.BookingRecord
// @Failure      404      {object}  map[string]string
// @Router       /bookings/{orderID} [get]
func (s *server) handleGetBooking(c *gin.Context) {
	orderID := c.Param("orderID")
	record, err := s.store.GetBooking(c.Request.Context(), orderID)
	if err != nil {
		if err == recordstore.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// handleUserBookings godoc
// @Summary      List a user's bookings
// @Tags         bookings
// @Produce      json
// @Param        email   path      string  true  "User email"
// @Param        limit   query     int     false "Page size"
// @Param        offset  query     int     false "Page offset"
// @Success      200     {array}   domain.BookingRecord
// @Router       /users/{email}/bookings [get]
func (s *server) handleUserBookings(c *gin.Context) {
	email := c.Param("email")
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		fmt.Sscanf(v, "%d", &limit)
	}
	if v := c.Query("offset"); v != "" {
		fmt.Sscanf(v, "%d", &offset)
	}

	records, err := s.store.UserGetBookings(c.Request.Context(), email, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/vignosaas/hotel-booking-backend/internal/api"
	"github.com/vignosaas/hotel-booking-backend/internal/auth"
	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	billingHttp "github.com/vignosaas/hotel-booking-backend/internal/billing/http"
	"github.com/vignosaas/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/vignosaas/hotel-booking-backend/internal/booking/http"
	"github.com/vignosaas/hotel-booking-backend/internal/cache"
	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/vignosaas/hotel-booking-backend/internal/hotel/http"
	"github.com/vignosaas/hotel-booking-backend/internal/room"
	roomHttp "github.com/vignosaas/hotel-booking-backend/internal/room/http"
	"github.com/vignosaas/hotel-booking-backend/internal/roomtype"
	roomtypeHttp "github.com/vignosaas/hotel-booking-backend/internal/roomtype/http"
	"github.com/vignosaas/hotel-booking-backend/internal/user"
	userHttp "github.com/vignosaas/hotel-booking-backend/internal/user/http"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	DBPool         *pgxpool.Pool
	Cache          cache.Cache
	SearchCacheTTL time.Duration
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Hotel Module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo, userService, cfg.Cache, cfg.SearchCacheTTL)

	// RoomType Module
	roomTypeRepo := roomtype.NewPgxRepository(cfg.DBPool)
	roomTypeService := roomtype.NewService(roomTypeRepo, hotelService)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, hotelService, roomTypeService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, roomTypeService, hotelService)
	exporter := booking.NewExporter(bookingRepo)

	// Billing Module
	billingRepo := billing.NewPgxRepository(cfg.DBPool)
	billingService := billing.NewService(billingRepo, hotelService)

	// Router
	router, v1, mw := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		JWTManager:     jwtManager,
		Logger:         cfg.Logger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	userHttp.RegisterRoutes(v1, userHttp.NewHandler(userService, jwtManager), mw.Auth, mw.SuperAdmin, mw.RateLimit)
	hotelHttp.RegisterRoutes(v1, hotelHttp.NewHandler(hotelService), mw.Auth, mw.Staff, mw.SuperAdmin, mw.RateLimit)
	roomtypeHttp.RegisterRoutes(v1, roomtypeHttp.NewHandler(roomTypeService), mw.Auth, mw.Staff, mw.RateLimit)
	roomHttp.RegisterRoutes(v1, roomHttp.NewHandler(roomService), mw.Auth, mw.Staff)
	bookingHttp.RegisterRoutes(v1, bookingHttp.NewHandler(bookingService, exporter), mw.Auth, mw.OptionalAuth, mw.Staff, mw.RateLimit)
	billingHttp.RegisterRoutes(v1, billingHttp.NewHandler(billingService), mw.Auth, mw.SuperAdmin, mw.RateLimit)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}

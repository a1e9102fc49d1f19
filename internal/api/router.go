package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vignosaas/hotel-booking-backend/internal/auth"
	"github.com/vignosaas/hotel-booking-backend/internal/metrics"
)

// Config holds the settings and middleware building blocks for the router.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	JWTManager     *auth.JWTManager
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// Middlewares bundles the chains handed to each module's RegisterRoutes.
type Middlewares struct {
	Auth         gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
	Staff        gin.HandlerFunc
	SuperAdmin   gin.HandlerFunc
	RateLimit    gin.HandlerFunc
}

// NewRouter initializes the HTTP router engine: logging, CORS, metrics, and
// the /v1 group the modules register themselves under.
func NewRouter(cfg Config) (*gin.Engine, *gin.RouterGroup, Middlewares) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	mw := Middlewares{
		Auth:         auth.AuthRequired(cfg.JWTManager),
		OptionalAuth: auth.OptionalAuth(cfg.JWTManager),
		Staff:        RequireHotelStaff(),
		SuperAdmin:   RequireSuperAdmin(),
		RateLimit:    RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	v1 := r.Group("/v1")

	return r, v1, mw
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vignosaas/hotel-booking-backend/internal/auth"
	"github.com/vignosaas/hotel-booking-backend/internal/metrics"
)

// RequireSuperAdmin rejects callers without the super_admin role. Must run
// after auth.AuthRequired.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserRole(c) != auth.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "super admin access required"})
			return
		}
		c.Next()
	}
}

// RequireHotelStaff rejects callers who neither manage a hotel nor hold the
// super_admin role. Must run after auth.AuthRequired.
func RequireHotelStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserRole(c) != auth.RoleSuperAdmin && !auth.IsHotelManager(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "hotel staff access required"})
			return
		}
		c.Next()
	}
}

// CanManageHotel reports whether the caller may administer the given hotel:
// super admins always, owners and staff only for their own hotel.
func CanManageHotel(c *gin.Context, hotelID string) bool {
	if auth.GetUserRole(c) == auth.RoleSuperAdmin {
		return true
	}
	return auth.IsHotelManager(c) && auth.GetUserHotelID(c) == hotelID
}

// RequestLogger logs each request with zerolog and records the request
// counter. Replaces gin.Logger.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(status))

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

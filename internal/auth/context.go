package auth

import "github.com/gin-gonic/gin"

// Roles matching the users table enum.
const (
	RoleSuperAdmin = "super_admin"
	RoleHotelOwner = "hotel_owner"
	RoleHotelStaff = "hotel_staff"
	RoleGuest      = "guest"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return getString(c, "userID")
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return getString(c, "userEmail")
}

// GetUserRole returns the authenticated user's role or empty string.
func GetUserRole(c *gin.Context) string {
	return getString(c, "userRole")
}

// GetUserHotelID returns the hotel the caller is scoped to, or empty string
// for super admins and guests.
func GetUserHotelID(c *gin.Context) string {
	return getString(c, "userHotelID")
}

// IsHotelManager reports whether the caller runs a hotel (owner or staff).
func IsHotelManager(c *gin.Context) bool {
	role := GetUserRole(c)
	return role == RoleHotelOwner || role == RoleHotelStaff
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

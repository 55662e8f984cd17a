package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"maintenance-ticketing-server/database"
	"maintenance-ticketing-server/models"
	"maintenance-ticketing-server/utils"
)

// AuthMiddleware validates the bearer token and loads the technician into
// the request context. Every lifecycle operation downstream reads the
// technician id from here rather than from any ambient state.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authorization header required",
				"message": "Please sign in to continue",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			c.Abort()
			return
		}

		technicianID, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token is invalid or expired",
			})
			c.Abort()
			return
		}

		// Only a confirmed missing account is an auth failure; a
		// datastore error must not masquerade as one.
		var technician models.Technician
		if err := database.DB.First(&technician, technicianID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "Technician not found",
					"message": "Account associated with token not found",
				})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Request failed",
					"message": "Unable to process request. Please try again later.",
				})
			}
			c.Abort()
			return
		}

		c.Set("technician", technician)
		c.Set("technician_id", technician.ID)

		c.Next()
	}
}

// CurrentTechnicianID returns the authenticated technician's id from the
// request context. Only valid behind AuthMiddleware.
func CurrentTechnicianID(c *gin.Context) uint {
	return c.GetUint("technician_id")
}

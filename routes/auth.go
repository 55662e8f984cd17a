package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance-ticketing-server/config"
	"maintenance-ticketing-server/database"
	"maintenance-ticketing-server/models"
	"maintenance-ticketing-server/services"
	"maintenance-ticketing-server/utils"
)

// SignupRequest represents the signup form
type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/signup", signUp)
	router.POST("/login", logIn)
}

// signUp handles technician registration
func signUp(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	svc := services.NewAuthService(database.GetDB())
	technician, err := svc.Signup(services.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Account created successfully. You can now sign in.",
		"technician": technician,
	})
}

// logIn handles technician authentication and issues the session token
func logIn(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	svc := services.NewAuthService(database.GetDB())
	technician, err := svc.Login(req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(technician.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate authentication token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Authentication successful",
		"token":      token,
		"expires_in": int64(config.AppConfig.JWT.ExpiryHours) * 3600,
		"technician": technician,
	})
}

// GetCurrentTechnician returns the authenticated technician's profile
func GetCurrentTechnician(c *gin.Context) {
	technician, exists := c.Get("technician")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": "Please sign in to access your profile",
		})
		return
	}

	model, ok := technician.(models.Technician)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Invalid technician data",
			"message": "Failed to retrieve technician information",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"technician": model,
		"full_name":  model.FullName(),
	})
}

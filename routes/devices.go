package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance-ticketing-server/database"
	"maintenance-ticketing-server/services"
)

// DeviceCheckRequest represents the serial lookup form
type DeviceCheckRequest struct {
	SerialNumber string `json:"serial_number"`
}

// RegisterDeviceRequest represents the device registration form
type RegisterDeviceRequest struct {
	SerialNumber string `json:"serial_number"`
	Model        string `json:"model"`
	Location     string `json:"location"`
	OS           string `json:"os"`
	DateIssued   string `json:"date_issued"`
}

// RegisterDeviceRoutes registers device registry routes
func RegisterDeviceRoutes(router *gin.RouterGroup) {
	router.POST("/check", checkDevice)
	router.POST("", registerDevice)
}

// checkDevice branches the client between the create-ticket flow (device
// found) and the register-device flow (not found). A missing device is a
// normal answer here, not an error.
func checkDevice(c *gin.Context) {
	var req DeviceCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	svc := services.NewDeviceService(database.GetDB())
	device, err := svc.FindBySerial(req.SerialNumber)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"found":         false,
				"serial_number": req.SerialNumber,
			})
			return
		}
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":  true,
		"device": device,
	})
}

// registerDevice creates a write-once device record
func registerDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	dateIssued, err := parseDate(req.DateIssued)
	if err != nil {
		respondInvalidDate(c, "Date issued")
		return
	}

	svc := services.NewDeviceService(database.GetDB())
	device, err := svc.Register(services.RegisterDeviceInput{
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
		Location:     req.Location,
		OS:           req.OS,
		DateIssued:   dateIssued,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Device registered successfully",
		"device":  device,
	})
}

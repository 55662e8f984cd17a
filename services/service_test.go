package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"maintenance-ticketing-server/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Technician{},
		&models.Device{},
		&models.Ticket{},
		&models.PartUsage{},
		&models.Feedback{},
	))

	return db
}

func seedTechnician(t *testing.T, db *gorm.DB, email string) models.Technician {
	t.Helper()

	technician := models.Technician{
		FirstName:    "Alex",
		LastName:     "Rivera",
		Phone:        "555-0100",
		Email:        email,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplacehu",
	}
	require.NoError(t, db.Create(&technician).Error)
	return technician
}

func seedDevice(t *testing.T, db *gorm.DB, serial string) models.Device {
	t.Helper()

	device := models.Device{
		SerialNumber: serial,
		Model:        "Dell OptiPlex 7090",
		Location:     "Office Room 101",
		OS:           "Windows 11 Pro",
		DateIssued:   day(2025, 1, 15),
	}
	require.NoError(t, db.Create(&device).Error)
	return device
}

func seedTicket(t *testing.T, db *gorm.DB, deviceID, technicianID uint, date time.Time) models.Ticket {
	t.Helper()

	ticket := models.Ticket{
		DeviceID:         deviceID,
		TechnicianID:     technicianID,
		ReportedBy:       "Jane",
		IssueDescription: "won't boot",
		Date:             date,
	}
	require.NoError(t, db.Create(&ticket).Error)
	return ticket
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"maintenance-ticketing-server/models"
)

// DeviceService is the device registry: serial-number lookup and write-once
// registration.
type DeviceService struct {
	db *gorm.DB
}

// NewDeviceService creates a new device service
func NewDeviceService(db *gorm.DB) *DeviceService {
	return &DeviceService{db: db}
}

// FindBySerial looks a device up by exact serial number. Returns
// ErrDeviceNotFound when no device carries that serial; callers branch
// between the create-ticket and register-device flows on that.
func (s *DeviceService) FindBySerial(serial string) (*models.Device, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, &ValidationError{Messages: []string{"Serial number is required."}}
	}

	var device models.Device
	if err := s.db.Where("serial_number = ?", serial).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	return &device, nil
}

// RegisterDeviceInput carries the device registration fields
type RegisterDeviceInput struct {
	SerialNumber string
	Model        string
	Location     string
	OS           string
	DateIssued   time.Time
}

// Register creates a device record. The pre-check on the serial number is
// only a fast path; the unique index decides under concurrent registration
// and the conflict comes back as ErrDuplicateSerial either way.
func (s *DeviceService) Register(input RegisterDeviceInput) (*models.Device, error) {
	input.SerialNumber = strings.TrimSpace(input.SerialNumber)
	input.Model = strings.TrimSpace(input.Model)
	input.Location = strings.TrimSpace(input.Location)
	input.OS = strings.TrimSpace(input.OS)

	var v validator
	v.requireNonEmpty(input.SerialNumber, "Serial number is required.")
	v.requireNonEmpty(input.Model, "Model is required.")
	v.requireNonEmpty(input.Location, "Location is required.")
	v.requireNonEmpty(input.OS, "Operating system is required.")
	if err := v.err(); err != nil {
		return nil, err
	}

	if input.DateIssued.IsZero() {
		input.DateIssued = time.Now()
	}

	var existing models.Device
	if err := s.db.Where("serial_number = ?", input.SerialNumber).First(&existing).Error; err == nil {
		return nil, ErrDuplicateSerial
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	device := models.Device{
		SerialNumber: input.SerialNumber,
		Model:        input.Model,
		Location:     input.Location,
		OS:           input.OS,
		DateIssued:   input.DateIssued,
	}

	if err := s.db.Create(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSerial
		}
		return nil, err
	}

	return &device, nil
}

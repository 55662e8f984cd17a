package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"maintenance-ticketing-server/models"
)

// TicketService owns the ticket lifecycle: creation against a registered
// device, ownership-scoped reads and the technician's dashboard listing.
type TicketService struct {
	db *gorm.DB
}

// NewTicketService creates a new ticket service
func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

// CreateTicketInput carries the ticket creation fields
type CreateTicketInput struct {
	DeviceID         uint
	ReportedBy       string
	IssueDescription string
	Date             time.Time
}

// TicketSummary is a dashboard row: the ticket, its device and the status
// derived from feedback presence.
type TicketSummary struct {
	ID               uint          `json:"id"`
	ReportedBy       string        `json:"reported_by"`
	IssueDescription string        `json:"issue_description"`
	Date             time.Time     `json:"date"`
	Device           models.Device `json:"device"`
	Status           string        `json:"status"`
	Severity         string        `json:"severity"`
}

// Create opens a ticket for the technician against an existing device.
// Device check and insert run in one transaction so a ticket can never be
// written against a device that vanished mid-request.
func (s *TicketService) Create(technicianID uint, input CreateTicketInput) (*models.Ticket, error) {
	input.ReportedBy = strings.TrimSpace(input.ReportedBy)
	input.IssueDescription = strings.TrimSpace(input.IssueDescription)

	var v validator
	v.requireNonEmpty(input.ReportedBy, "Reported by is required.")
	v.requireNonEmpty(input.IssueDescription, "Issue description is required.")
	if err := v.err(); err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	ticket := models.Ticket{
		DeviceID:         input.DeviceID,
		TechnicianID:     technicianID,
		ReportedBy:       input.ReportedBy,
		IssueDescription: input.IssueDescription,
		Date:             input.Date,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var device models.Device
		if err := tx.First(&device, input.DeviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDeviceNotFound
			}
			return err
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// GetForTechnician loads a ticket with its device, parts and feedback,
// scoped to the owning technician. A ticket owned by someone else is
// reported exactly like a missing one.
func (s *TicketService) GetForTechnician(ticketID, technicianID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.
		Preload("Device").
		Preload("Feedback").
		Preload("PartsUsed", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		Where("id = ? AND technician_id = ?", ticketID, technicianID).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

// ListForTechnician returns the technician's tickets ordered by opened date
// descending, each with its derived status and severity.
func (s *TicketService) ListForTechnician(technicianID uint) ([]TicketSummary, error) {
	var tickets []models.Ticket
	err := s.db.
		Preload("Device").
		Preload("Feedback").
		Where("technician_id = ?", technicianID).
		Order("date DESC, id DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for i := range tickets {
		t := &tickets[i]
		status := t.Status()
		summaries = append(summaries, TicketSummary{
			ID:               t.ID,
			ReportedBy:       t.ReportedBy,
			IssueDescription: t.IssueDescription,
			Date:             t.Date,
			Device:           t.Device,
			Status:           status,
			Severity:         models.StatusSeverity(status),
		})
	}

	return summaries, nil
}

// ensureOwned verifies the ticket exists and belongs to the technician
func (s *TicketService) ensureOwned(ticketID, technicianID uint) error {
	var count int64
	err := s.db.Model(&models.Ticket{}).
		Where("id = ? AND technician_id = ?", ticketID, technicianID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTicketNotFound
	}
	return nil
}

package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"maintenance-ticketing-server/models"
)

// PartService is the append-only ledger of parts consumed on a ticket
type PartService struct {
	db      *gorm.DB
	tickets *TicketService
}

// NewPartService creates a new part service
func NewPartService(db *gorm.DB) *PartService {
	return &PartService{db: db, tickets: NewTicketService(db)}
}

// AddPartInput carries the part usage fields. Cost is a pointer so an
// absent value is rejected instead of being recorded as a free part.
type AddPartInput struct {
	PartName string
	Quantity int
	Cost     *float64
	Date     time.Time
}

// Add records a part consumed on the ticket after the ownership check.
// Quantity must be a positive integer and cost non-negative; rows are
// permanent once written.
func (s *PartService) Add(technicianID, ticketID uint, input AddPartInput) (*models.PartUsage, error) {
	if err := s.tickets.ensureOwned(ticketID, technicianID); err != nil {
		return nil, err
	}

	input.PartName = strings.TrimSpace(input.PartName)

	var v validator
	v.requireNonEmpty(input.PartName, "Part name is required.")
	if input.Quantity < 1 {
		v.add("Quantity must be a positive number.")
	}
	if input.Cost == nil || *input.Cost < 0 {
		v.add("Cost must be a valid number.")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	part := models.PartUsage{
		TicketID: ticketID,
		PartName: input.PartName,
		Quantity: input.Quantity,
		Cost:     *input.Cost,
		Date:     input.Date,
	}

	if err := s.db.Create(&part).Error; err != nil {
		return nil, err
	}

	return &part, nil
}

// List returns the ticket's part usage ordered most recent first
func (s *PartService) List(technicianID, ticketID uint) ([]models.PartUsage, error) {
	if err := s.tickets.ensureOwned(ticketID, technicianID); err != nil {
		return nil, err
	}

	var parts []models.PartUsage
	err := s.db.
		Where("ticket_id = ?", ticketID).
		Order("date DESC, id DESC").
		Find(&parts).Error
	if err != nil {
		return nil, err
	}

	return parts, nil
}

package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"maintenance-ticketing-server/models"
)

// FeedbackService records the single terminal feedback event that closes a
// ticket.
type FeedbackService struct {
	db      *gorm.DB
	tickets *TicketService
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db, tickets: NewTicketService(db)}
}

// SubmitFeedbackInput carries the closing feedback fields
type SubmitFeedbackInput struct {
	Remarks    string
	Status     string
	DateSolved time.Time
}

// Exists reports whether feedback has been recorded for the ticket
func (s *FeedbackService) Exists(ticketID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Feedback{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Submit closes the ticket with feedback. The existence check is only a
// fast path; under concurrent submission the unique index on ticket_id lets
// exactly one insert win and the loser sees ErrAlreadyClosed.
func (s *FeedbackService) Submit(technicianID, ticketID uint, input SubmitFeedbackInput) (*models.Feedback, error) {
	if err := s.tickets.ensureOwned(ticketID, technicianID); err != nil {
		return nil, err
	}

	input.Remarks = strings.TrimSpace(input.Remarks)
	input.Status = strings.TrimSpace(input.Status)
	if input.Status == "" {
		input.Status = models.StatusCompleted
	}

	var v validator
	v.requireNonEmpty(input.Remarks, "Remarks are required.")
	if !models.IsValidFeedbackStatus(input.Status) {
		v.add("Status must be one of Completed, Finished or Resolved.")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if input.DateSolved.IsZero() {
		input.DateSolved = time.Now()
	}

	exists, err := s.Exists(ticketID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyClosed
	}

	feedback := models.Feedback{
		TechnicianID: technicianID,
		TicketID:     ticketID,
		Remarks:      input.Remarks,
		Status:       input.Status,
		DateSolved:   input.DateSolved,
	}

	if err := s.db.Create(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyClosed
		}
		return nil, err
	}

	return &feedback, nil
}

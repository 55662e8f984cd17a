package models

import (
	"time"
)

// Feedback is the single terminal closing record of a ticket. The unique
// index on ticket_id is the authoritative at-most-one-per-ticket guard;
// application-level existence checks are only a fast path.
type Feedback struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TechnicianID uint      `json:"technician_id" gorm:"not null"`
	TicketID     uint      `json:"ticket_id" gorm:"not null;uniqueIndex"`
	Remarks      string    `json:"remarks" gorm:"type:text;not null"`
	Status       string    `json:"status" gorm:"size:20;not null;check:status IN ('Completed','Finished','Resolved')"`
	DateSolved   time.Time `json:"date_solved" gorm:"type:date;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Feedback model
func (Feedback) TableName() string {
	return "post_service_feedback"
}

// IsValidFeedbackStatus checks whether s is one of the accepted closing statuses
func IsValidFeedbackStatus(s string) bool {
	switch s {
	case StatusCompleted, StatusFinished, StatusResolved:
		return true
	default:
		return false
	}
}

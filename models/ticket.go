package models

import (
	"time"
)

// Ticket is a reported issue against a device, assigned to the technician
// who opened it. Tickets are immutable after creation; their lifecycle is
// carried entirely by the presence of part usage and feedback rows.
type Ticket struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	DeviceID         uint       `json:"device_id" gorm:"not null;index"`
	Device           Device     `json:"device,omitempty" gorm:"foreignKey:DeviceID"`
	TechnicianID     uint       `json:"technician_id" gorm:"not null;index"`
	Technician       Technician `json:"-" gorm:"foreignKey:TechnicianID"`
	ReportedBy       string     `json:"reported_by" gorm:"size:255;not null"`
	IssueDescription string     `json:"issue_description" gorm:"type:text;not null"`
	Date             time.Time  `json:"date" gorm:"type:date;not null"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`

	// Relationships
	PartsUsed []PartUsage `json:"parts_used,omitempty" gorm:"foreignKey:TicketID"`
	Feedback  *Feedback   `json:"feedback,omitempty" gorm:"foreignKey:TicketID"`
}

// TableName specifies the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}

// Status derives the ticket's display status from its feedback: Pending
// until feedback exists, then the feedback's own status. The relationship
// must be preloaded for a closed ticket to report correctly.
func (t *Ticket) Status() string {
	if t.Feedback == nil {
		return StatusPending
	}
	return t.Feedback.Status
}

// IsClosed reports whether feedback has been submitted for the ticket
func (t *Ticket) IsClosed() bool {
	return t.Feedback != nil
}

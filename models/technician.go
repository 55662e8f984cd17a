package models

import (
	"time"
)

// Technician is an authenticated user who owns and resolves tickets.
type Technician struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	Phone        string    `json:"phone" gorm:"size:30;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Tickets []Ticket `json:"tickets,omitempty" gorm:"foreignKey:TechnicianID"`
}

// TableName specifies the table name for the Technician model
func (Technician) TableName() string {
	return "technicians"
}

// FullName returns the technician's display name
func (t *Technician) FullName() string {
	return t.FirstName + " " + t.LastName
}

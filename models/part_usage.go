package models

import (
	"time"
)

// PartUsage records a consumable part applied while resolving a ticket.
// Rows are append-only: once recorded they are never edited or removed.
type PartUsage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TicketID  uint      `json:"ticket_id" gorm:"not null;index"`
	Ticket    Ticket    `json:"-" gorm:"foreignKey:TicketID"`
	PartName  string    `json:"part_name" gorm:"size:255;not null"`
	Quantity  int       `json:"quantity" gorm:"type:int;not null;check:quantity >= 1"`
	Cost      float64   `json:"cost" gorm:"not null;check:cost >= 0"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the PartUsage model
func (PartUsage) TableName() string {
	return "part_usages"
}

// TotalCost returns quantity times unit cost
func (p *PartUsage) TotalCost() float64 {
	return float64(p.Quantity) * p.Cost
}

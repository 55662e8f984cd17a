package models

import (
	"time"
)

// Device is a tracked physical asset identified by its serial number.
// Device rows are write-once: there is no update or delete path.
type Device struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SerialNumber string    `json:"serial_number" gorm:"size:255;uniqueIndex;not null"`
	Model        string    `json:"model" gorm:"size:255;not null"`
	Location     string    `json:"location" gorm:"size:255;not null"`
	OS           string    `json:"os" gorm:"column:os;size:100;not null"`
	DateIssued   time.Time `json:"date_issued" gorm:"type:date;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Device model
func (Device) TableName() string {
	return "devices"
}

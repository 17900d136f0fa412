package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusRequested ReservationStatus = "requested"
	StatusFixed     ReservationStatus = "fixed"
	StatusRejected  ReservationStatus = "rejected"
)

// Terminal reports whether no further status transition is permitted.
func (s ReservationStatus) Terminal() bool {
	return s == StatusFixed || s == StatusRejected
}

type ReservationRequest struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CustomerID   string `gorm:"index;not null" json:"customerId"`   // LINE user ID
	CustomerName string `gorm:"not null" json:"customerName"`       // LINE display name
	Menu         string `gorm:"not null" json:"menu"`

	// RequestedDateTime is kept verbatim as the ISO 8601 string the customer
	// submitted (with offset), so the calendar event start reproduces it exactly.
	RequestedDateTime string `gorm:"not null" json:"requestedDateTime"`

	Status ReservationStatus `gorm:"type:varchar(20);default:'requested';index" json:"status"`

	// Set only on the transition to fixed.
	GoogleCalendarEventID string `json:"googleCalendarEventId,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID before creating
func (r *ReservationRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = StatusRequested
	}
	return
}

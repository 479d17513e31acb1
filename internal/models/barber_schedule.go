package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BarberSchedule is one weekday of a barber's declared working hours.
// Times are stored as "15:04" strings; an inactive row means the barber
// does not work that day.
type BarberSchedule struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	BarberID string `gorm:"type:uuid;index;not null" json:"barber_id"`

	Weekday int `json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BarberSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

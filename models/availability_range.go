package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRange is one persisted weekly availability window of a
// counselor. The id is a server-assigned UUID so the editing dashboards can
// tell persisted ranges apart from ones they created locally. Day uses the
// availability API's uppercase vocabulary ("MONDAY".."SUNDAY").
type AvailabilityRange struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CounselorID uint      `json:"counselor_id" gorm:"index"`
	Counselor   User      `json:"counselor,omitempty" gorm:"foreignKey:CounselorID"`
	Day         string    `json:"day"`
	StartTime   string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime     string    `json:"end_time"`   // Format "HH:MM" in 24h
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *AvailabilityRange) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment is a student's counseling session booked at one of the
// counselor's published slots. Date carries the calendar day; StartTime is
// the booked slot in "HH:MM".
type Appointment struct {
	gorm.Model
	Subject     string            `json:"subject"`
	Notes       string            `json:"notes"`
	Date        time.Time         `json:"date"`
	StartTime   string            `json:"start_time"`
	Status      AppointmentStatus `json:"status"`
	CounselorID uint              `json:"counselor_id"`
	Counselor   User              `json:"counselor" gorm:"foreignKey:CounselorID"`
	StudentID   uint              `json:"student_id"`
	Student     User              `json:"student" gorm:"foreignKey:StudentID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// UpdateStatus enforces the session lifecycle before saving the new status.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}

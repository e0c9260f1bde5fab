package models

import (
	"time"
)

type User struct {
	ID                  uint                `json:"id" gorm:"primaryKey"`
	Name                string              `json:"name"`
	Email               string              `json:"email" gorm:"unique"`
	Password            string              `json:"password,omitempty"`
	RoleID              uint                `json:"role_id"`
	Role                Role                `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CounselorDetails    *CounselorDetails   `json:"counselor_details,omitempty" gorm:"foreignKey:CounselorID"`
	AvailabilityRanges  []AvailabilityRange `json:"availability_ranges,omitempty" gorm:"foreignKey:CounselorID"`
	Appointments        []Appointment       `json:"appointments,omitempty" gorm:"foreignKey:CounselorID"`
	StudentAppointments []Appointment       `json:"student_appointments,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

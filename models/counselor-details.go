package models

import (
	"gorm.io/gorm"
)

// CounselorDetails is the directory profile shown to students.
type CounselorDetails struct {
	gorm.Model
	CounselorID uint   `json:"counselor_id"`
	Speciality  string `json:"speciality"`
	Office      string `json:"office"`
	Campus      string `json:"campus"`
	Bio         string `json:"bio"`
	PhoneNumber string `json:"phone_number"`
	AvatarURL   string `json:"avatar_url"`
}

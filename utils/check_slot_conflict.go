package utils

import (
	"time"

	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"gorm.io/gorm"
)

// CheckSlotFree reports whether the counselor still has the given slot open
// on that date, i.e. no pending or confirmed session already holds it.
func CheckSlotFree(tx *gorm.DB, counselorID uint, date time.Time, startTime string) (bool, error) {
	if tx == nil {
		tx = db.DB
	}

	var count int64
	err := tx.Model(&models.Appointment{}).
		Where("counselor_id = ? AND date = ? AND start_time = ? AND status IN ?",
			counselorID, date, startTime,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

package consumer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/amamamou/we4lead-sub000/booking"
	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/utils"
)

// BookAppointment books a counseling session at one of the counselor's
// published slots
func BookAppointment(c *fiber.Ctx) error {
	studentID := c.Locals("userID").(uint)

	type bookingInput struct {
		CounselorID uint   `json:"counselor_id"`
		Date        string `json:"date"`
		StartTime   string `json:"start_time"`
		Subject     string `json:"subject"`
		Notes       string `json:"notes"`
	}

	input := new(bookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	// The slot must be one the counselor actually publishes for that date
	windows, err := loadWeeklyWindows(input.CounselorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load counselor availability",
			Error:   err.Error(),
		})
	}
	if !booking.IsDayBookable(time.Now(), date, windows) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Counselor is not bookable on this date",
		})
	}
	validSlot := false
	for _, slot := range booking.SlotsOn(date, windows) {
		if slot == input.StartTime {
			validSlot = true
			break
		}
	}
	if !validSlot {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Requested time is not an available slot",
		})
	}

	appointment := models.Appointment{
		Subject:     input.Subject,
		Notes:       input.Notes,
		Date:        date,
		StartTime:   input.StartTime,
		Status:      models.StatusPending,
		CounselorID: input.CounselorID,
		StudentID:   studentID,
	}

	// Create inside a transaction so the conflict check and the insert see
	// the same state
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		free, err := utils.CheckSlotFree(tx, input.CounselorID, date, input.StartTime)
		if err != nil {
			return err
		}
		if !free {
			return fmt.Errorf("time slot not available")
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments returns the student's sessions, newest first
func GetMyAppointments(c *fiber.Ctx) error {
	studentID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	if err := db.DB.Preload("Counselor").
		Where("student_id = ?", studentID).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	for i := range appointments {
		appointments[i].Counselor.Password = ""
	}
	return c.JSON(appointments)
}

// CancelAppointment cancels one of the student's own sessions
func CancelAppointment(c *fiber.Ctx) error {
	studentID := c.Locals("userID").(uint)
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND student_id = ?", id, studentID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot cancel appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

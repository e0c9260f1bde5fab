package counselor

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/utils"
)

// GetSchedule returns the counselor's upcoming sessions
func GetSchedule(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)

	from := time.Now().Truncate(24 * time.Hour)
	var appointments []models.Appointment
	if err := db.DB.Preload("Student").
		Where("counselor_id = ? AND date >= ?", counselorID, from).
		Order("date ASC, start_time ASC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}

	for i := range appointments {
		appointments[i].Student.Password = ""
	}
	return c.JSON(appointments)
}

// UpdateAppointmentStatus confirms, completes or cancels one of the
// counselor's sessions
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)
	id := c.Params("id")

	type statusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND counselor_id = ?", id, counselorID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

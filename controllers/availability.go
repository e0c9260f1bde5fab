package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/rangestore"
	"github.com/amamamou/we4lead-sub000/schedule"
	"github.com/amamamou/we4lead-sub000/utils"
)

// availabilityInput is the write shape shared by create and update.
type availabilityInput struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GetAvailability lists all availability ranges of the authenticated counselor
func GetAvailability(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)

	ranges := []models.AvailabilityRange{}
	if err := db.DB.Where("counselor_id = ?", counselorID).Find(&ranges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get availability",
		})
	}
	return c.JSON(ranges)
}

// CreateAvailability persists a new range and returns it with its assigned id
func CreateAvailability(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)

	input := new(availabilityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validateRangeInput(counselorID, input, ""); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid availability range",
			Error:   err.Error(),
		})
	}

	rec := models.AvailabilityRange{
		CounselorID: counselorID,
		Day:         input.Day,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	if err := db.DB.Create(&rec).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create availability",
		})
	}

	utils.InvalidateWindows(counselorID)
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// UpdateAvailability rewrites an existing range of the authenticated counselor
func UpdateAvailability(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)
	id := c.Params("id")

	var rec models.AvailabilityRange
	if err := db.DB.Where("id = ? AND counselor_id = ?", id, counselorID).First(&rec).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability range not found",
		})
	}

	input := new(availabilityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validateRangeInput(counselorID, input, rec.ID); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid availability range",
			Error:   err.Error(),
		})
	}

	rec.Day = input.Day
	rec.StartTime = input.StartTime
	rec.EndTime = input.EndTime
	if err := db.DB.Save(&rec).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability",
		})
	}

	utils.InvalidateWindows(counselorID)
	return c.JSON(rec)
}

// DeleteAvailability removes a range of the authenticated counselor
func DeleteAvailability(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)
	id := c.Params("id")

	var rec models.AvailabilityRange
	if err := db.DB.Where("id = ? AND counselor_id = ?", id, counselorID).First(&rec).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability range not found",
		})
	}
	if err := db.DB.Delete(&rec).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete availability",
		})
	}

	utils.InvalidateWindows(counselorID)
	return c.SendStatus(fiber.StatusNoContent)
}

// validateRangeInput checks the day name, the time strings and that the new
// range does not overlap the counselor's other ranges on that day. excludeID
// lets an update skip the range being rewritten.
func validateRangeInput(counselorID uint, input *availabilityInput, excludeID string) error {
	if _, err := rangestore.FromWireDay(input.Day); err != nil {
		return err
	}

	proposed := schedule.TimeRange{Start: input.StartTime, End: input.EndTime}

	var sameDay []models.AvailabilityRange
	query := db.DB.Where("counselor_id = ? AND day = ?", counselorID, input.Day)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&sameDay).Error; err != nil {
		return err
	}

	ranges := []schedule.TimeRange{proposed}
	for _, r := range sameDay {
		ranges = append(ranges, schedule.TimeRange{
			ID:    schedule.PersistedID(r.ID),
			Start: r.StartTime,
			End:   r.EndTime,
		})
	}
	return schedule.Validate(ranges)
}

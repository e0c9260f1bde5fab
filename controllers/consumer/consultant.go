package consumer

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/booking"
	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/utils"
)

const dateLayout = "2006-01-02"

// GetAllCounselors returns the counselor directory
func GetAllCounselors(c *fiber.Ctx) error {
	var counselors []models.User

	// Get pagination parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	// Only return users with the counselor role
	if err := db.DB.Preload("Role").Preload("CounselorDetails").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", models.RoleCounselor).
		Limit(limit).
		Offset(offset).
		Find(&counselors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch counselors",
		})
	}

	// Count total records for pagination
	var count int64
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", models.RoleCounselor).
		Count(&count)

	// Clean sensitive data
	for i := range counselors {
		counselors[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"counselors": counselors,
		"total":      count,
		"page":       page,
		"limit":      limit,
		"pages":      (int(count) + limit - 1) / limit,
	})
}

// GetCounselorDetails returns the directory profile for one counselor
func GetCounselorDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var counselor models.User
	if err := db.DB.Preload("Role").Preload("CounselorDetails").
		First(&counselor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Counselor not found",
		})
	}

	if counselor.Role.Name != models.RoleCounselor {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a counselor",
		})
	}

	counselor.Password = ""
	return c.JSON(counselor)
}

// GetCounselorSlots returns the slots a student may book with the counselor
// on the requested date
func GetCounselorSlots(c *fiber.Ctx) error {
	counselorID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid counselor id",
		})
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
	}

	windows, err := loadWeeklyWindows(uint(counselorID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load counselor availability",
			Error:   err.Error(),
		})
	}

	bookable := booking.IsDayBookable(time.Now(), date, windows)
	slots := []string{}
	if bookable {
		slots = booking.SlotsOn(date, windows)
	}

	return c.JSON(fiber.Map{
		"date":     date.Format(dateLayout),
		"bookable": bookable,
		"slots":    slots,
	})
}

// GetBookableDays reports which of the next days a calendar widget should
// enable for the counselor, starting from the "from" date (default today)
func GetBookableDays(c *fiber.Ctx) error {
	counselorID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid counselor id",
		})
	}

	now := time.Now()
	from := now
	if q := c.Query("from"); q != "" {
		from, err = time.Parse(dateLayout, q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid from date, expected YYYY-MM-DD",
			})
		}
	}

	days, _ := strconv.Atoi(c.Query("days", "30"))
	if days < 1 || days > 90 {
		days = 30
	}

	windows, err := loadWeeklyWindows(uint(counselorID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load counselor availability",
			Error:   err.Error(),
		})
	}

	type dayEntry struct {
		Date     string `json:"date"`
		Bookable bool   `json:"bookable"`
	}
	entries := make([]dayEntry, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		entries = append(entries, dayEntry{
			Date:     date.Format(dateLayout),
			Bookable: booking.IsDayBookable(now, date, windows),
		})
	}

	return c.JSON(entries)
}

// loadWeeklyWindows returns the counselor's weekly open/close lists, from
// cache when possible.
func loadWeeklyWindows(counselorID uint) (booking.WeeklyWindows, error) {
	if windows, ok := utils.GetCachedWindows(counselorID); ok {
		return windows, nil
	}

	var ranges []models.AvailabilityRange
	if err := db.DB.Where("counselor_id = ?", counselorID).Find(&ranges).Error; err != nil {
		return nil, err
	}

	windows, err := utils.BuildWeeklyWindows(ranges)
	if err != nil {
		return nil, err
	}

	utils.CacheWindows(counselorID, windows)
	return windows, nil
}

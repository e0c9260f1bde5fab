package counselor

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/utils"
)

// GetProfile returns the authenticated counselor's profile and details
func GetProfile(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)

	var counselor models.User
	if err := db.DB.Preload("Role").Preload("CounselorDetails").
		First(&counselor, counselorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Counselor not found",
		})
	}

	counselor.Password = ""
	return c.JSON(counselor)
}

// UpdateDetails creates or updates the counselor's directory details
func UpdateDetails(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)

	input := new(models.CounselorDetails)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var details models.CounselorDetails
	err := db.DB.Where("counselor_id = ?", counselorID).First(&details).Error
	if err != nil {
		// First write creates the details row
		input.CounselorID = counselorID
		if err := db.DB.Create(input).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create counselor details",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}

	details.Speciality = input.Speciality
	details.Office = input.Office
	details.Campus = input.Campus
	details.Bio = input.Bio
	details.PhoneNumber = input.PhoneNumber
	if err := db.DB.Save(&details).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update counselor details",
			Error:   err.Error(),
		})
	}
	return c.JSON(details)
}

// UploadAvatar stores a profile picture and saves its URL on the details row
func UploadAvatar(c *fiber.Ctx) error {
	counselorID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing avatar file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read avatar file",
		})
	}
	defer file.Close()

	url, err := utils.UploadAvatar(file, fmt.Sprintf("counselor-%d", counselorID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	var details models.CounselorDetails
	if err := db.DB.Where("counselor_id = ?", counselorID).First(&details).Error; err != nil {
		details = models.CounselorDetails{CounselorID: counselorID, AvatarURL: url}
		if err := db.DB.Create(&details).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save avatar URL",
			})
		}
	} else {
		details.AvatarURL = url
		if err := db.DB.Save(&details).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save avatar URL",
			})
		}
	}

	return c.JSON(fiber.Map{"avatar_url": url})
}

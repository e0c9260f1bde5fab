package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/schedule"
	"github.com/amamamou/we4lead-sub000/utils"
)

// StartCronJobs initializes and starts the cron scheduler for session reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for sessions in the next hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session reminders")
}

// sendSessionReminders checks for upcoming sessions and sends reminders
func sendSessionReminders() {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var appointments []models.Appointment
	err := db.DB.Preload("Student").Preload("Counselor").
		Where("status = ? AND date = ?", models.StatusConfirmed, today).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		minutes, err := schedule.ToMinutes(appointment.StartTime)
		if err != nil {
			log.Printf("Skipping appointment %d with bad start time %q", appointment.ID, appointment.StartTime)
			continue
		}
		start := today.Add(time.Duration(minutes) * time.Minute)

		// Look for sessions starting in roughly one hour
		lead := start.Sub(now)
		if lead < 55*time.Minute || lead > 65*time.Minute {
			continue
		}

		if err := sendReminderEmail(&appointment, start); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Student.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment, start time.Time) error {
	subject := fmt.Sprintf("Reminder: Upcoming Counseling Session - %s", appointment.Subject)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your counseling session scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Counselor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, do so from your dashboard as soon as possible.</p>
		<p>Best regards,</p>
		<p>The We4Lead Team</p>
	`, appointment.Student.Name, appointment.Counselor.Name,
		start.Format("2006-01-02"), appointment.StartTime, appointment.Status)

	return utils.SendEmail(appointment.Student.Email, subject, body)
}

// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"freshwash-backend/models"
	"freshwash-backend/scheduling"
	"freshwash-backend/storage"
)

// ReminderService texts customers the day before their confirmed
// appointments and logs every attempt.
type ReminderService struct {
	db     *gorm.DB
	blobs  storage.Store
	client *twilio.RestClient
	clock  scheduling.Clock
}

func NewReminderService(db *gorm.DB, blobs storage.Store) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db:    db,
		blobs: blobs,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		clock: scheduling.SystemClock{},
	}
}

// StartScheduler runs the daily reminder pass at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var laundries []models.Laundry
	if err := s.db.Find(&laundries).Error; err != nil {
		log.Printf("Failed to fetch laundries: %v", err)
		return
	}

	for _, laundry := range laundries {
		if !laundry.SMSNotifications {
			continue
		}
		s.ProcessLaundryReminders(laundry)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) ProcessLaundryReminders(laundry models.Laundry) {
	store := scheduling.NewStore(
		storage.Prefixed(s.blobs, laundry.ID.String()),
		nil, // read-only pass, no ids minted
		s.clock,
	)

	tomorrow := s.clock.Now().AddDate(0, 0, 1).Format(scheduling.DateLayout)
	appointments, err := store.FindByDate(tomorrow)
	if err != nil {
		log.Printf("Laundry %s: failed to load appointments: %v", laundry.ID, err)
		return
	}

	for _, apt := range appointments {
		if apt.Status != scheduling.StatusConfirmed || apt.Phone == "" {
			continue
		}
		s.sendReminder(laundry, apt)
	}
}

func (s *ReminderService) sendReminder(laundry models.Laundry, apt scheduling.Appointment) {
	message := fmt.Sprintf("Hi %s, a reminder from %s: your %s appointment is tomorrow at %s.",
		apt.Customer, laundry.Name, apt.Service, apt.Time)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(apt.Phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", apt.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", apt.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", apt.Phone)
	}

	reminderLog := models.ReminderLog{
		LaundryID:     laundry.ID,
		AppointmentID: apt.ID,
		Phone:         apt.Phone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", apt.ID, err)
	}
}

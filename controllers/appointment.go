package controllers

import (
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freshwash-backend/models"
	"freshwash-backend/scheduling"
	"freshwash-backend/storage"
	"freshwash-backend/utils"
)

// Machines and stations a booking may reserve.
var laundryResources = []string{
	"Washer 1", "Washer 2", "Washer 3", "Dryer 1", "Dryer 2", "Folding Station",
}

var laundryServices = []string{
	"Wash & Fold", "Dry Cleaning", "Bulk Laundry", "Express Service", "Delivery",
}

// AppointmentController serves the scheduling screen. Each laundry gets its
// own scheduling.Store view over the shared blob backend.
type AppointmentController struct {
	Blobs storage.Store
	IDs   scheduling.IDGenerator
	Clock scheduling.Clock
}

func NewAppointmentController(blobs storage.Store) *AppointmentController {
	return &AppointmentController{
		Blobs: blobs,
		IDs:   uuid.NewString,
		Clock: scheduling.SystemClock{},
	}
}

func (ac *AppointmentController) storeFor(c *gin.Context) (*scheduling.Store, bool) {
	laundryID, exists := c.Get("laundryId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Laundry ID not found in context")
		return nil, false
	}
	id, ok := laundryID.(string)
	if !ok || id == "" {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid laundry ID format")
		return nil, false
	}
	return scheduling.NewStore(storage.Prefixed(ac.Blobs, id), ac.IDs, ac.Clock), true
}

// RecurringInput is the recurrence rule attached to a new appointment.
type RecurringInput struct {
	Frequency string `json:"frequency" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	Customer  string          `json:"customer" binding:"required"`
	Phone     string          `json:"phone" binding:"required"`
	Service   string          `json:"service" binding:"required"`
	Resource  string          `json:"resource"`
	Date      string          `json:"date" binding:"required"`
	Time      string          `json:"time" binding:"required"`
	Duration  int             `json:"duration"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes"`
	Recurring *RecurringInput `json:"recurring"`
}

// UpdateAppointmentInput defines the fields an edit may change
type UpdateAppointmentInput struct {
	Customer *string `json:"customer"`
	Phone    *string `json:"phone"`
	Service  *string `json:"service"`
	Resource *string `json:"resource"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

func validService(name string) bool {
	for _, s := range laundryServices {
		if s == name {
			return true
		}
	}
	return false
}

func validResource(name string) bool {
	for _, r := range laundryResources {
		if r == name {
			return true
		}
	}
	return false
}

// CreateAppointment books an appointment; a recurring rule expands into
// independent instances stored in one batch. Double bookings are not
// rejected here: the resource board is how clients surface conflicts.
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !validService(input.Service) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service: "+input.Service)
		return
	}
	if input.Resource != "" && !validResource(input.Resource) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown resource: "+input.Resource)
		return
	}
	if _, err := time.Parse(scheduling.DateLayout, input.Date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if _, err := time.Parse(scheduling.TimeLayout, input.Time); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
		return
	}
	if input.Duration == 0 {
		input.Duration = 60
	}
	if !scheduling.ValidDuration(input.Duration) {
		utils.RespondWithError(c, http.StatusBadRequest, "Duration must be one of 60, 90, 120, 180")
		return
	}
	status := scheduling.Status(input.Status)
	if input.Status == "" {
		status = scheduling.StatusPending
	} else if !status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status: "+input.Status)
		return
	}

	draft := scheduling.Appointment{
		Customer: input.Customer,
		Phone:    input.Phone,
		Service:  input.Service,
		Resource: input.Resource,
		Date:     input.Date,
		Time:     input.Time,
		Duration: input.Duration,
		Status:   status,
		Notes:    input.Notes,
	}

	if input.Recurring != nil {
		rule := scheduling.Recurrence{
			Frequency: scheduling.Frequency(input.Recurring.Frequency),
			EndDate:   input.Recurring.EndDate,
		}
		if !rule.Frequency.Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Frequency must be daily, weekly or monthly")
			return
		}
		if _, err := time.Parse(scheduling.DateLayout, rule.EndDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Recurring end date must be YYYY-MM-DD")
			return
		}
		batch := scheduling.ExpandRecurring(draft, rule, ac.IDs, ac.Clock, scheduling.ExpandOptions{})
		if err := store.AddAll(batch); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save appointments")
			return
		}
		logActivity(c, "appointment", "Recurring Appointments Scheduled",
			fmt.Sprintf("%d bookings for %s", len(batch), input.Customer), "calendar-plus", "#2ecc71")
		c.JSON(http.StatusCreated, batch)
		return
	}

	created, err := store.Add(draft)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save appointment")
		return
	}
	logActivity(c, "appointment", "Appointment Scheduled",
		fmt.Sprintf("%s on %s at %s", input.Customer, input.Date, input.Time), "calendar-plus", "#2ecc71")
	c.JSON(http.StatusCreated, created)
}

// GetAppointments lists appointments sorted by date and time; optional
// ?status= and ?date= narrow the result.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	if date := c.Query("date"); date != "" {
		appointments, err := store.FindByDate(date)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
			return
		}
		c.JSON(http.StatusOK, appointments)
		return
	}
	if status := c.Query("status"); status != "" && status != "all" {
		appointments, err := store.FindByStatus(scheduling.Status(status))
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
			return
		}
		c.JSON(http.StatusOK, appointments)
		return
	}

	appointments, err := store.AllSortedByDateTime()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a single appointment by id
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	apt, found, err := store.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointment")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// UpdateAppointment merges the provided fields into an existing booking
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := scheduling.Patch{
		Customer: input.Customer,
		Phone:    input.Phone,
		Service:  input.Service,
		Resource: input.Resource,
		Date:     input.Date,
		Time:     input.Time,
		Duration: input.Duration,
		Notes:    input.Notes,
	}
	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if input.Service != nil && !validService(*input.Service) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service: "+*input.Service)
		return
	}
	if input.Resource != nil && *input.Resource != "" && !validResource(*input.Resource) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown resource: "+*input.Resource)
		return
	}
	if input.Date != nil {
		if _, err := time.Parse(scheduling.DateLayout, *input.Date); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
			return
		}
	}
	if input.Time != nil {
		if _, err := time.Parse(scheduling.TimeLayout, *input.Time); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
			return
		}
	}
	if input.Duration != nil && !scheduling.ValidDuration(*input.Duration) {
		utils.RespondWithError(c, http.StatusBadRequest, "Duration must be one of 60, 90, 120, 180")
		return
	}
	if input.Status != nil {
		status := scheduling.Status(*input.Status)
		if !status.Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status: "+*input.Status)
			return
		}
		patch.Status = &status
	}

	updated, found, err := store.Update(c.Param("id"), patch)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAppointment removes one booking; recurring siblings are untouched
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	removed, err := store.Remove(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// ToggleAppointmentStatus advances a booking one step along the status cycle
func (ac *AppointmentController) ToggleAppointmentStatus(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	apt, found, err := store.ToggleStatus(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// GetTimeSlots returns the bookable start times derived from business hours
func (ac *AppointmentController) GetTimeSlots(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	settings, err := store.Settings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load service settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slots":    scheduling.GenerateSlots(settings),
		"settings": settings,
	})
}

type resourceStatus struct {
	Name     string `json:"name"`
	Occupied bool   `json:"occupied"`
}

// GetResourceBoard reports which machines are occupied right now
func (ac *AppointmentController) GetResourceBoard(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	appointments, err := store.Appointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	now := ac.Clock.Now()
	board := make([]resourceStatus, 0, len(laundryResources))
	for _, r := range laundryResources {
		board = append(board, resourceStatus{
			Name:     r,
			Occupied: scheduling.IsOccupied(r, now, appointments),
		})
	}
	c.JSON(http.StatusOK, board)
}

// GetSchedulingStats returns the dashboard quick counters
func (ac *AppointmentController) GetSchedulingStats(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	appointments, err := store.Appointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, scheduling.QuickStats(appointments, ac.Clock.Now()))
}

// ExportCalendar serves the laundry's bookings as an iCalendar feed so staff
// can subscribe from their own calendar apps. Cancelled bookings are skipped.
func (ac *AppointmentController) ExportCalendar(c *gin.Context) {
	store, ok := ac.storeFor(c)
	if !ok {
		return
	}

	appointments, err := store.AllSortedByDateTime()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//FreshWash Pro//Scheduling//EN")

	for _, apt := range appointments {
		if apt.Status == scheduling.StatusCancelled {
			continue
		}
		start, err := apt.StartsAt(time.Local)
		if err != nil {
			continue
		}
		event := cal.AddEvent(apt.ID + "@freshwash")
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Duration(apt.DurationMinutes()) * time.Minute))
		event.SetSummary(fmt.Sprintf("%s - %s", apt.Service, apt.Customer))
		if apt.Resource != "" {
			event.SetLocation(apt.Resource)
		}
		if apt.Notes != "" {
			event.SetDescription(apt.Notes)
		}
		if !apt.CreatedAt.IsZero() {
			event.SetCreatedTime(apt.CreatedAt)
		}
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

// GetResources lists the bookable machines and offered services for the form
func (ac *AppointmentController) GetResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"resources": laundryResources,
		"services":  laundryServices,
	})
}

// logActivity appends to the dashboard activity feed; failures only log.
func logActivity(c *gin.Context, kind, title, description, icon, color string) {
	laundryID, exists := c.Get("laundryId")
	if !exists {
		return
	}
	id, err := uuid.Parse(laundryID.(string))
	if err != nil {
		return
	}
	recordActivity(models.Activity{
		LaundryID:   id,
		Type:        kind,
		Title:       title,
		Description: description,
		Icon:        icon,
		Color:       color,
	})
}

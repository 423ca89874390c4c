package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"freshwash-backend/config"
	"freshwash-backend/models"
	"freshwash-backend/scheduling"
	"freshwash-backend/utils"
)

// DashboardController aggregates counters across the other modules.
type DashboardController struct {
	Appointments *AppointmentController
}

// GetDashboardOverview returns the landing-page counters and the recent
// activity feed in one response.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	// Customer counters
	var activeCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("laundry_id = ? AND status = 'active' AND deleted_at IS NULL", laundryUUID).
		Count(&activeCustomers)

	monthAgo := time.Now().AddDate(0, 0, -30)
	var newCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("laundry_id = ? AND last_visit >= ? AND deleted_at IS NULL", laundryUUID, monthAgo).
		Count(&newCustomers)

	// This month's revenue
	firstOfMonth := utils.BeginningOfMonth(time.Now())
	var monthlyRevenue float64
	config.DB.Model(&models.FinancialRecord{}).
		Where("laundry_id = ? AND type = 'revenue' AND date >= ? AND deleted_at IS NULL", laundryUUID, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)

	// Scheduling quick stats
	var schedStats scheduling.Stats
	if store, ok := dc.Appointments.storeFor(c); ok {
		if appointments, err := store.Appointments(); err == nil {
			schedStats = scheduling.QuickStats(appointments, dc.Appointments.Clock.Now())
		} else {
			log.Printf("dashboard: failed to load appointments: %v", err)
		}
	} else {
		return
	}

	// Recent activity feed
	var activities []models.Activity
	config.DB.Where("laundry_id = ?", laundryUUID).
		Order("created_at DESC").Limit(10).Find(&activities)

	c.JSON(http.StatusOK, gin.H{
		"activeCustomers": activeCustomers,
		"newCustomers":    newCustomers,
		"monthlyRevenue":  monthlyRevenue,
		"scheduling":      schedStats,
		"recentActivity":  activities,
	})
}

// recordActivity appends one entry to the activity feed. Feed writes never
// fail the request that triggered them.
func recordActivity(activity models.Activity) {
	if config.DB == nil {
		return
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		log.Printf("failed to record activity %q: %v", activity.Title, err)
	}
}

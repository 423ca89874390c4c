package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"freshwash-backend/config"
	"freshwash-backend/models"
	"freshwash-backend/utils"
)

// CreateFinancialRecordInput defines the expected JSON structure for a record
type CreateFinancialRecordInput struct {
	Type        string  `json:"type" binding:"required,oneof=revenue expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Date        string  `json:"date" binding:"required"` // "2006-01-02"
	Description string  `json:"description"`
}

// UpdateFinancialRecordInput defines the fields an edit may change
type UpdateFinancialRecordInput struct {
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

// UpdateGoalsInput sets the monthly targets
type UpdateGoalsInput struct {
	MonthlyRevenue  *float64 `json:"monthlyRevenue"`
	MonthlyExpenses *float64 `json:"monthlyExpenses"`
	TargetProfit    *float64 `json:"targetProfit"`
}

// CreateFinancialRecord adds a revenue or expense entry
func CreateFinancialRecord(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateFinancialRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	record := models.FinancialRecord{
		LaundryID:       laundryUUID,
		CreatedByUserID: userUUID,
		Type:            input.Type,
		Amount:          input.Amount,
		Category:        input.Category,
		Date:            date,
		Description:     input.Description,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create record")
		return
	}

	recordActivity(models.Activity{
		LaundryID:   laundryUUID,
		Type:        "finance",
		Title:       "Financial Record Added",
		Description: input.Type + " of " + input.Category,
		Icon:        "dollar-sign",
		Color:       "#27ae60",
	})

	c.JSON(http.StatusCreated, record)
}

// GetFinancialRecords lists records, newest first; ?type= narrows the result
func GetFinancialRecords(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("laundry_id = ?", laundryUUID).Order("date DESC")
	if kind := c.Query("type"); kind != "" && kind != "all" {
		query = query.Where("type = ?", kind)
	}

	var records []models.FinancialRecord
	if err := query.Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdateFinancialRecord edits an existing record
func UpdateFinancialRecord(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var input UpdateFinancialRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var record models.FinancialRecord
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, recordUUID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type != nil {
		if *input.Type != "revenue" && *input.Type != "expense" {
			utils.RespondWithError(c, http.StatusBadRequest, "Type must be revenue or expense")
			return
		}
		record.Type = *input.Type
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be positive")
			return
		}
		record.Amount = *input.Amount
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	if input.Date != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
			return
		}
		record.Date = date
	}
	if input.Description != nil {
		record.Description = *input.Description
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteFinancialRecord soft deletes a record
func DeleteFinancialRecord(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	result := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, recordUUID).
		Delete(&models.FinancialRecord{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete record")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// GetFinancialGoals returns the monthly targets, creating defaults on first read
func GetFinancialGoals(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	goals, err := goalsFor(laundryUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// UpdateFinancialGoals changes the monthly targets
func UpdateFinancialGoals(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	var input UpdateGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	goals, err := goalsFor(laundryUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	if input.MonthlyRevenue != nil {
		goals.MonthlyRevenue = *input.MonthlyRevenue
	}
	if input.MonthlyExpenses != nil {
		goals.MonthlyExpenses = *input.MonthlyExpenses
	}
	if input.TargetProfit != nil {
		goals.TargetProfit = *input.TargetProfit
	}

	if err := config.DB.Save(&goals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update goals")
		return
	}

	c.JSON(http.StatusOK, goals)
}

type goalProgress struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type monthlyBucket struct {
	Month    string  `json:"month"` // "2006-01"
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// GetFinancialOverview aggregates the current month against the goals and
// buckets history by month for the charts
func GetFinancialOverview(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	var records []models.FinancialRecord
	if err := config.DB.Where("laundry_id = ?", laundryUUID).Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	goals, err := goalsFor(laundryUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	now := time.Now()
	currentMonth := utils.MonthKey(now)

	var revenue, expenses float64
	buckets := map[string]*monthlyBucket{}
	for _, r := range records {
		key := utils.MonthKey(r.Date)
		b, found := buckets[key]
		if !found {
			b = &monthlyBucket{Month: key}
			buckets[key] = b
		}
		switch r.Type {
		case "revenue":
			b.Revenue += r.Amount
			if key == currentMonth {
				revenue += r.Amount
			}
		case "expense":
			b.Expenses += r.Amount
			if key == currentMonth {
				expenses += r.Amount
			}
		}
	}

	months := make([]monthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, *b)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	profit := revenue - expenses
	var margin float64
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	progress := goalProgress{}
	if goals.MonthlyRevenue > 0 {
		progress.Revenue = revenue / goals.MonthlyRevenue * 100
	}
	if goals.MonthlyExpenses > 0 {
		progress.Expenses = expenses / goals.MonthlyExpenses * 100
	}
	if goals.TargetProfit > 0 {
		progress.Profit = profit / goals.TargetProfit * 100
	}

	c.JSON(http.StatusOK, gin.H{
		"month":        currentMonth,
		"revenue":      revenue,
		"expenses":     expenses,
		"profit":       profit,
		"profitMargin": margin,
		"goals":        goals,
		"goalProgress": progress,
		"monthly":      months,
	})
}

func goalsFor(laundryID uuid.UUID) (models.FinancialGoal, error) {
	var goals models.FinancialGoal
	err := config.DB.Where("laundry_id = ?", laundryID).First(&goals).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goals = models.FinancialGoal{
			LaundryID:       laundryID,
			MonthlyRevenue:  10000,
			MonthlyExpenses: 4000,
			TargetProfit:    6000,
		}
		err = config.DB.Create(&goals).Error
	}
	return goals, err
}

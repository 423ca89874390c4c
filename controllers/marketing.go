package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"freshwash-backend/config"
	"freshwash-backend/models"
	"freshwash-backend/utils"
)

var contentStatuses = map[string]bool{"draft": true, "scheduled": true, "published": true}

// CreateContentInput defines the expected JSON structure for marketing content
type CreateContentInput struct {
	Title       string   `json:"title" binding:"required"`
	Platforms   []string `json:"platforms" binding:"required,min=1"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Text        string   `json:"text"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
	PublishDate string   `json:"publishDate"`
	PublishTime string   `json:"publishTime"`
}

// UpdateContentInput defines the fields an edit may change
type UpdateContentInput struct {
	Title       *string   `json:"title"`
	Platforms   *[]string `json:"platforms"`
	Type        *string   `json:"type"`
	Status      *string   `json:"status"`
	Text        *string   `json:"text"`
	Tags        *[]string `json:"tags"`
	Notes       *string   `json:"notes"`
	PublishDate *string   `json:"publishDate"`
	PublishTime *string   `json:"publishTime"`
}

// CreateContent adds a marketing content item
func CreateContent(c *gin.Context) {
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

	var input CreateContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	status := input.Status
	if status == "" {
		status = "draft"
	}
	if !contentStatuses[status] {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be draft, scheduled or published")
		return
	}

	content := models.MarketingContent{
		LaundryID:       laundryUUID,
		CreatedByUserID: userUUID,
		Title:           input.Title,
		Platforms:       models.StringList(input.Platforms),
		Type:            input.Type,
		Status:          status,
		Text:            input.Text,
		Tags:            models.StringList(input.Tags),
		Notes:           input.Notes,
		PublishDate:     input.PublishDate,
		PublishTime:     input.PublishTime,
	}
	if status == "published" {
		now := time.Now()
		content.PublishedAt = &now
	}

	if err := config.DB.Create(&content).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create content")
		return
	}

	recordActivity(models.Activity{
		LaundryID:   laundryUUID,
		Type:        "marketing",
		Title:       "Marketing Content Created",
		Description: content.Title,
		Icon:        "bullhorn",
		Color:       "#9b59b6",
	})

	c.JSON(http.StatusCreated, content)
}

// GetContents lists content; ?platform= and ?status= narrow the result
func GetContents(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("laundry_id = ?", laundryUUID).Order("created_at DESC")
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if platform := c.Query("platform"); platform != "" && platform != "all" {
		// jsonb containment: platforms @> '["instagram"]'
		query = query.Where("platforms @> ?", `["`+platform+`"]`)
	}

	var contents []models.MarketingContent
	if err := query.Find(&contents).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve content")
		return
	}

	c.JSON(http.StatusOK, contents)
}

// GetContent retrieves one content item
func GetContent(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	contentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid content ID format")
		return
	}

	var content models.MarketingContent
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, contentUUID).
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Content not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, content)
}

// UpdateContent edits a content item
func UpdateContent(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	contentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid content ID format")
		return
	}

	var input UpdateContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var content models.MarketingContent
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, contentUUID).
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Content not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Platforms != nil {
		if len(*input.Platforms) == 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "At least one platform is required")
			return
		}
		content.Platforms = models.StringList(*input.Platforms)
	}
	if input.Type != nil {
		content.Type = *input.Type
	}
	if input.Status != nil {
		if !contentStatuses[*input.Status] {
			utils.RespondWithError(c, http.StatusBadRequest, "Status must be draft, scheduled or published")
			return
		}
		if *input.Status == "published" && content.Status != "published" {
			now := time.Now()
			content.PublishedAt = &now
		}
		content.Status = *input.Status
	}
	if input.Text != nil {
		content.Text = *input.Text
	}
	if input.Tags != nil {
		content.Tags = models.StringList(*input.Tags)
	}
	if input.Notes != nil {
		content.Notes = *input.Notes
	}
	if input.PublishDate != nil {
		content.PublishDate = *input.PublishDate
	}
	if input.PublishTime != nil {
		content.PublishTime = *input.PublishTime
	}

	if err := config.DB.Save(&content).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update content")
		return
	}

	c.JSON(http.StatusOK, content)
}

// PublishContent marks a content item published right now
func PublishContent(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	contentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid content ID format")
		return
	}

	var content models.MarketingContent
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, contentUUID).
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Content not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	content.Status = "published"
	content.PublishedAt = &now
	if err := config.DB.Save(&content).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to publish content")
		return
	}

	c.JSON(http.StatusOK, content)
}

// DeleteContent soft deletes a content item
func DeleteContent(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	contentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid content ID format")
		return
	}

	result := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, contentUUID).
		Delete(&models.MarketingContent{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete content")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Content not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// GetContentStats counts content by status
func GetContentStats(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	counts := gin.H{}
	for status := range contentStatuses {
		var n int64
		config.DB.Model(&models.MarketingContent{}).
			Where("laundry_id = ? AND status = ? AND deleted_at IS NULL", laundryUUID, status).
			Count(&n)
		counts[status] = n
	}

	var total int64
	config.DB.Model(&models.MarketingContent{}).
		Where("laundry_id = ? AND deleted_at IS NULL", laundryUUID).Count(&total)
	counts["total"] = total

	c.JSON(http.StatusOK, counts)
}

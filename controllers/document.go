package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"freshwash-backend/config"
	"freshwash-backend/models"
	"freshwash-backend/utils"
)

// CreateDocumentInput defines the expected JSON structure for a document
type CreateDocumentInput struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// UpdateDocumentInput defines the fields an edit may change
type UpdateDocumentInput struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Content  *string `json:"content"`
}

// CreateDocument saves a free-text document
func CreateDocument(c *gin.Context) {
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

	var input CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	document := models.Document{
		LaundryID:       laundryUUID,
		CreatedByUserID: userUUID,
		Title:           input.Title,
		Category:        input.Category,
		Content:         input.Content,
	}
	if document.Category == "" {
		document.Category = "General"
	}

	if err := config.DB.Create(&document).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocuments lists the laundry's documents, newest first
func GetDocuments(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("laundry_id = ?", laundryUUID).Order("updated_at DESC")
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetDocument retrieves one document
func GetDocument(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	documentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	var document models.Document
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, documentUUID).
		First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, document)
}

// UpdateDocument edits a document
func UpdateDocument(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	documentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	var input UpdateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var document models.Document
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, documentUUID).
		First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		document.Title = *input.Title
	}
	if input.Category != nil {
		document.Category = *input.Category
	}
	if input.Content != nil {
		document.Content = *input.Content
	}

	if err := config.DB.Save(&document).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update document")
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument soft deletes a document
func DeleteDocument(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	documentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	result := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, documentUUID).
		Delete(&models.Document{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

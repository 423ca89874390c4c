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

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Email       *string  `json:"email"`
	Address     string   `json:"address"`
	Preferences string   `json:"preferences"`
	Tags        []string `json:"tags"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	Address     *string    `json:"address"`
	Preferences *string    `json:"preferences"`
	Status      *string    `json:"status"`
	Tags        *[]string  `json:"tags"`
	LastVisit   *time.Time `json:"lastVisit"`
}

// CreateCustomer creates a new customer for the laundry
func CreateCustomer(c *gin.Context) {
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

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this laundry
	var existingCustomer models.Customer
	if err := config.DB.Where("laundry_id = ? AND phone = ?", laundryUUID, input.Phone).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	customer := models.Customer{
		ID:              uuid.New(),
		LaundryID:       laundryUUID,
		CreatedByUserID: userUUID,
		Name:            input.Name,
		Phone:           input.Phone,
		Address:         input.Address,
		Preferences:     input.Preferences,
		Status:          "active",
		LastVisit:       &now,
		LastContact:     &now,
		Tags:            models.StringList(input.Tags),
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	recordActivity(models.Activity{
		LaundryID:   laundryUUID,
		Type:        "customer",
		Title:       "New Customer Added",
		Description: customer.Name + " added to CRM",
		Icon:        "user-plus",
		Color:       "#e74c3c",
	})

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves the laundry's customers; ?search=, ?status= and
// ?preferences= narrow the result.
func GetCustomers(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("laundry_id = ?", laundryUUID).Preload("Notes")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if prefs := c.Query("preferences"); prefs != "" && prefs != "all" {
		query = query.Where("preferences = ?", prefs)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, customerUUID).
		Preload("Notes").First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if customer.Phone != *input.Phone {
			var existingCustomer models.Customer
			if err := config.DB.Where("laundry_id = ? AND phone = ?", laundryUUID, *input.Phone).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Preferences != nil {
		customer.Preferences = *input.Preferences
	}
	if input.Status != nil {
		if *input.Status != "active" && *input.Status != "inactive" {
			utils.RespondWithError(c, http.StatusBadRequest, "Status must be active or inactive")
			return
		}
		customer.Status = *input.Status
	}
	if input.Tags != nil {
		customer.Tags = models.StringList(*input.Tags)
	}
	if input.LastVisit != nil {
		customer.LastVisit = input.LastVisit
	}
	now := time.Now()
	customer.LastContact = &now

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, customerUUID).
		Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// AddCustomerNoteInput is the body for appending a CRM note
type AddCustomerNoteInput struct {
	Text string `json:"text" binding:"required"`
}

// AddCustomerNote appends a free-text note to a customer's record
func AddCustomerNote(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input AddCustomerNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("laundry_id = ? AND id = ?", laundryUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	note := models.CustomerNote{CustomerID: customer.ID, Text: input.Text}
	if err := config.DB.Create(&note).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add note")
		return
	}

	c.JSON(http.StatusCreated, note)
}

// laundryFromContext parses the tenant id the auth middleware stored.
func laundryFromContext(c *gin.Context) (uuid.UUID, bool) {
	laundryID, exists := c.Get("laundryId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Laundry ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(laundryID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid laundry ID format")
		return uuid.Nil, false
	}
	return id, true
}

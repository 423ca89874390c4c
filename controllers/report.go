package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"freshwash-backend/config"
	"freshwash-backend/models"
	"freshwash-backend/utils"
)

// ExportFinancialReport streams the laundry's financial records as CSV
// (Date,Type,Category,Amount,Description), oldest first.
func ExportFinancialReport(c *gin.Context) {
	laundryUUID, ok := laundryFromContext(c)
	if !ok {
		return
	}

	var records []models.FinancialRecord
	if err := config.DB.Where("laundry_id = ?", laundryUUID).
		Order("date ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	filename := fmt.Sprintf("financial_records_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"Date", "Type", "Category", "Amount", "Description"})
	for _, r := range records {
		w.Write([]string{
			r.Date.Format("2006-01-02"),
			r.Type,
			r.Category,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Description,
		})
	}
	w.Flush()
}

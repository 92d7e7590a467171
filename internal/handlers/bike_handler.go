package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/models"
	"go-dealer-agent/internal/validation"

	"github.com/gin-gonic/gin"
)

// BikeRequest defines what the frontend sends when adding a bike.
// Status, addedBy and timestamps are assigned server-side.
type BikeRequest struct {
	BikeName           string  `json:"bikeName" binding:"required"`
	Year               int     `json:"year" binding:"required"`
	RegistrationNumber string  `json:"registrationNumber" binding:"required"`
	OwnerPhone         string  `json:"ownerPhone" binding:"required"`
	OwnerAadhar        string  `json:"ownerAadhar" binding:"required,aadhar"`
	OwnerAddress       string  `json:"ownerAddress" binding:"required"`
	PurchasePrice      float64 `json:"purchasePrice" binding:"min=0"`
	SellingPrice       float64 `json:"sellingPrice" binding:"min=0"`
}

// --- GET: List bikes, optionally filtered by status ---
func GetBikes(c *gin.Context) {
	var bikes []models.Bike

	query := database.DB
	if status := c.Query("status"); status != "" {
		if status != models.StatusAvailable && status != models.StatusSold {
			Fail(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&bikes).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to fetch bikes")
		return
	}

	OK(c, http.StatusOK, bikes)
}

// --- GET: Single bike by ID ---
func GetBikeByID(c *gin.Context) {
	var bike models.Bike
	if err := database.DB.First(&bike, c.Param("id")).Error; err != nil {
		Fail(c, http.StatusNotFound, "Bike not found")
		return
	}
	OK(c, http.StatusOK, bike)
}

// --- POST: Add a new bike to inventory ---
func AddBike(c *gin.Context) {
	var req BikeRequest

	// 1. Parse and validate JSON input (aadhar rule included)
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Model year has a moving upper bound, so it is checked here rather
	// than in a binding tag.
	if !validation.YearInRange(req.Year) {
		Fail(c, http.StatusBadRequest, "Year must be between 1900 and next year")
		return
	}

	// 2. Every new bike starts its life available, owned by whoever added it
	bike := models.Bike{
		BikeName:           req.BikeName,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		OwnerPhone:         req.OwnerPhone,
		OwnerAadhar:        req.OwnerAadhar,
		OwnerAddress:       req.OwnerAddress,
		PurchasePrice:      req.PurchasePrice,
		SellingPrice:       req.SellingPrice,
		Status:             models.StatusAvailable,
		AddedBy:            c.MustGet("userID").(uint),
	}

	if err := database.DB.Create(&bike).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create bike")
		return
	}

	OK(c, http.StatusCreated, bike)
}

// --- PUT: Update bike details ---
func UpdateBike(c *gin.Context) {
	// 1. Get ID from URL (e.g., /bikes/5)
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	// 2. Find existing bike
	var bike models.Bike
	if err := database.DB.First(&bike, id).Error; err != nil {
		Fail(c, http.StatusNotFound, "Bike not found")
		return
	}

	// 3. We use a map so we only update what was sent (partial update)
	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	// The sold transition belongs to the sell endpoint alone; a direct
	// status write would bypass the sale record entirely.
	if _, found := updateData["status"]; found {
		Fail(c, http.StatusBadRequest, "Status cannot be updated directly, use the sell endpoint")
		return
	}

	if msg := validateBikeUpdate(updateData); msg != "" {
		Fail(c, http.StatusBadRequest, msg)
		return
	}

	// Translate JSON keys to columns; anything not on the allowlist
	// (id, addedBy, timestamps) is silently dropped.
	updates := make(map[string]interface{})
	for key, value := range updateData {
		if col, editable := bikeUpdateColumns[key]; editable {
			updates[col] = value
		}
	}

	// 4. Save updates
	if err := database.DB.Model(&bike).Updates(updates).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to update bike")
		return
	}

	OK(c, http.StatusOK, bike)
}

// bikeUpdateColumns maps the editable JSON fields to their columns.
var bikeUpdateColumns = map[string]string{
	"bikeName":           "bike_name",
	"year":               "year",
	"registrationNumber": "registration_number",
	"ownerPhone":         "owner_phone",
	"ownerAadhar":        "owner_aadhar",
	"ownerAddress":       "owner_address",
	"purchasePrice":      "purchase_price",
	"sellingPrice":       "selling_price",
}

// validateBikeUpdate applies the create-time rules to whichever fields a
// partial update actually carries. JSON numbers arrive as float64.
func validateBikeUpdate(fields map[string]interface{}) string {
	if v, found := fields["year"]; found {
		year, ok := v.(float64)
		if !ok || !validation.YearInRange(int(year)) {
			return "Year must be between 1900 and next year"
		}
	}
	if v, found := fields["ownerAadhar"]; found {
		aadhar, ok := v.(string)
		if !ok || !validation.IsAadhar(aadhar) {
			return "Owner Aadhar must be exactly 12 digits"
		}
	}
	for _, key := range []string{"purchasePrice", "sellingPrice"} {
		if v, found := fields[key]; found {
			price, ok := v.(float64)
			if !ok || price < 0 {
				return fmt.Sprintf("%s must be a non-negative number", key)
			}
		}
	}
	for _, key := range []string{"bikeName", "registrationNumber", "ownerPhone", "ownerAddress"} {
		if v, found := fields[key]; found {
			s, ok := v.(string)
			if !ok || s == "" {
				return fmt.Sprintf("%s cannot be empty", key)
			}
		}
	}
	return ""
}

// --- DELETE: Remove a bike from inventory ---
// If the bike was already sold, its Sale stays behind untouched - the
// snapshot fields on the Sale are the permanent record.
func DeleteBike(c *gin.Context) {
	var bike models.Bike
	if err := database.DB.First(&bike, c.Param("id")).Error; err != nil {
		Fail(c, http.StatusNotFound, "Bike not found")
		return
	}

	if err := database.DB.Delete(&bike).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to delete bike")
		return
	}

	OK(c, http.StatusOK, gin.H{"message": "Bike deleted successfully"})
}

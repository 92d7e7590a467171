package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/models"

	"github.com/gin-gonic/gin"
)

// SellRequest defines what the operator enters in the sell form
type SellRequest struct {
	SalePrice       float64 `json:"salePrice" binding:"min=0"`
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerEmail   string  `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string  `json:"customerPhone" binding:"required"`
	CustomerAadhar  string  `json:"customerAadhar" binding:"required,aadhar"`
	CustomerAddress string  `json:"customerAddress" binding:"required"`
}

// --- POST: /api/sales/bike/:id/sold ---
// Marks a bike as sold and creates its Sale in one shot. A second attempt
// on the same bike gets a 409, never a second Sale.
func SellBike(c *gin.Context) {
	bikeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), database.QueryTimeout)
	defer cancel()

	sale, err := database.SellBike(ctx, uint(bikeID), database.SaleInput{
		SalePrice:       req.SalePrice,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAadhar:  req.CustomerAadhar,
		CustomerAddress: req.CustomerAddress,
		SoldBy:          c.MustGet("userID").(uint),
	})

	switch {
	case errors.Is(err, database.ErrBikeNotFound):
		Fail(c, http.StatusNotFound, "Bike not found")
	case errors.Is(err, database.ErrBikeAlreadySold):
		Fail(c, http.StatusConflict, "Bike is already sold")
	case err != nil:
		Fail(c, http.StatusInternalServerError, "Failed to record sale")
	default:
		OK(c, http.StatusCreated, sale)
	}
}

// --- GET: /api/sales ---
func GetSales(c *gin.Context) {
	var sales []models.Sale
	if err := database.DB.Order("sale_date desc").Find(&sales).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to fetch sales")
		return
	}
	OK(c, http.StatusOK, sales)
}

// --- GET: /api/sales/:id ---
func GetSaleByID(c *gin.Context) {
	var sale models.Sale
	if err := database.DB.First(&sale, c.Param("id")).Error; err != nil {
		Fail(c, http.StatusNotFound, "Sale not found")
		return
	}
	OK(c, http.StatusOK, sale)
}

// --- GET: /api/sales/bike/:id ---
// At most one result per bike, since the sell transition is one-shot.
// Also the idempotency check for clients retrying a failed sell.
func GetSaleByBikeID(c *gin.Context) {
	var sale models.Sale
	if err := database.DB.Where("bike_id = ?", c.Param("id")).First(&sale).Error; err != nil {
		Fail(c, http.StatusNotFound, "No sale found for this bike")
		return
	}
	OK(c, http.StatusOK, sale)
}

// --- DELETE: /api/sales/clear-all (admin only) ---
func ClearAllSales(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), database.QueryTimeout)
	defer cancel()

	if err := database.ClearAllSales(ctx); err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to clear sales data")
		return
	}
	OK(c, http.StatusOK, gin.H{"message": "All sales cleared and bikes reset to available"})
}

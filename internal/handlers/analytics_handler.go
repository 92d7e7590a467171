package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go-dealer-agent/internal/database"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/analytics/kpi?year=&month= ---
// month is 0-indexed (0 = January) and optional; year defaults to the
// current year. The month/year filter narrows the sale aggregates only -
// totalBikesAvailable always reflects inventory right now.
func GetKPI(c *gin.Context) {
	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			Fail(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	var month *int
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 0 || parsed > 11 {
			Fail(c, http.StatusBadRequest, "Month must be between 0 and 11")
			return
		}
		month = &parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), database.QueryTimeout)
	defer cancel()

	kpi, err := database.ComputeKPI(ctx, year, month)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to compute KPI data")
		return
	}

	OK(c, http.StatusOK, kpi)
}

// --- GET: /api/analytics/monthly-sales?year= ---
// Always a full 12-month series for the chart, whatever the KPI filter is.
func GetMonthlySales(c *gin.Context) {
	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			Fail(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), database.QueryTimeout)
	defer cancel()

	series, err := database.ComputeMonthlySeries(ctx, year)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to compute monthly sales")
		return
	}

	OK(c, http.StatusOK, series)
}

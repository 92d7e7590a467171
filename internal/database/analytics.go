package database

import (
	"context"
	"time"

	"go-dealer-agent/internal/models"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// saleRange returns the [start, end) window for a year, optionally narrowed
// to a single month. month is 0-indexed (0 = January), matching the client.
func saleRange(year int, month *int) (time.Time, time.Time) {
	if month != nil {
		start := time.Date(year, time.Month(*month+1), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, 0)
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(1, 0, 0)
}

// ComputeKPI aggregates the sale ledger for the dashboard cards.
// The date filter narrows revenue/expense/profit/sold-count, but
// TotalBikesAvailable is always the current inventory count - availability
// is a point-in-time number, not a historical one.
func ComputeKPI(ctx context.Context, year int, month *int) (*models.KPIData, error) {
	var kpi models.KPIData
	db := DB.WithContext(ctx)
	start, end := saleRange(year, month)

	// COALESCE ensures we get 0 instead of NULL when no sales match
	err := db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Select("COALESCE(SUM(sale_price), 0)").
		Scan(&kpi.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Select("COALESCE(SUM(purchase_price), 0)").
		Scan(&kpi.TotalExpenses).Error
	if err != nil {
		return nil, err
	}

	// Equals SUM(profit) over the same rows, since every sale stores
	// profit = sale_price - purchase_price.
	kpi.TotalProfit = kpi.TotalRevenue - kpi.TotalExpenses

	err = db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Count(&kpi.TotalBikesSold).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Bike{}).
		Where("status = ?", models.StatusAvailable).
		Count(&kpi.TotalBikesAvailable).Error
	if err != nil {
		return nil, err
	}

	return &kpi, nil
}

// ComputeMonthlySeries buckets a full year of sales by month for the chart.
// Always 12 entries, zero-filled - the chart never narrows to a single month
// even when the KPI view does.
func ComputeMonthlySeries(ctx context.Context, year int) ([]models.MonthlySalesData, error) {
	start, end := saleRange(year, nil)

	var sales []models.Sale
	err := DB.WithContext(ctx).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}

	series := make([]models.MonthlySalesData, 12)
	for i := range series {
		series[i].Month = monthNames[i]
	}

	for _, s := range sales {
		i := int(s.SaleDate.Month()) - 1
		series[i].Sales += s.SalePrice
		series[i].Purchases += s.PurchasePrice
		series[i].Profit += s.Profit
	}

	return series, nil
}

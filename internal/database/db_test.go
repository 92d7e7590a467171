package database

import (
	"fmt"
	"testing"

	"go-dealer-agent/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level DB at a fresh in-memory database,
// one per test so nothing leaks between them.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Bike{}, &models.Sale{}))

	DB = db
}

func seedBike(t *testing.T, name string, purchasePrice float64) models.Bike {
	t.Helper()

	bike := models.Bike{
		BikeName:           name,
		Year:               2022,
		RegistrationNumber: "TN01AB1234",
		OwnerPhone:         "9876543210",
		OwnerAadhar:        "123456789012",
		OwnerAddress:       "12 Anna Salai, Chennai",
		PurchasePrice:      purchasePrice,
		SellingPrice:       purchasePrice * 1.25,
		Status:             models.StatusAvailable,
		AddedBy:            1,
	}
	require.NoError(t, DB.Create(&bike).Error)
	return bike
}

func testSaleInput(price float64) SaleInput {
	return SaleInput{
		SalePrice:       price,
		CustomerName:    "Ravi Kumar",
		CustomerEmail:   "ravi@example.com",
		CustomerPhone:   "9123456780",
		CustomerAadhar:  "987654321098",
		CustomerAddress: "4 MG Road, Bengaluru",
		SoldBy:          2,
	}
}

package database

import (
	"context"
	"errors"
	"time"

	"go-dealer-agent/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrBikeNotFound - the bike id does not exist in inventory
	ErrBikeNotFound = errors.New("bike not found")
	// ErrBikeAlreadySold - the one-shot sell transition was already taken
	ErrBikeAlreadySold = errors.New("bike is already sold")
)

// SaleInput is what the operator enters when closing a deal.
// Everything else on the Sale is snapshotted from the bike.
type SaleInput struct {
	SalePrice       float64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAadhar  string
	CustomerAddress string
	SoldBy          uint
}

// SellBike is the ONLY path that moves a bike from available to sold.
// It creates the Sale and flips the bike status in one transaction, so
// there is never a sold bike without a Sale or a Sale for an available bike.
func SellBike(ctx context.Context, bikeID uint, input SaleInput) (*models.Sale, error) {
	tx := DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var bike models.Bike

	// Lock the row so two concurrent sells on the same bike serialize:
	// the second one sees status=sold and fails instead of double-selling.
	// SQLite has no FOR UPDATE; its single-writer model covers this in tests.
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&bike, bikeID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, err
	}

	if bike.Status != models.StatusAvailable {
		tx.Rollback()
		return nil, ErrBikeAlreadySold
	}

	// Snapshot bike identity and cost basis at this instant. Later edits
	// or deletes of the bike must never rewrite this record.
	sale := models.Sale{
		BikeID:          bike.ID,
		BikeName:        bike.BikeName,
		BikeYear:        bike.Year,
		PurchasePrice:   bike.PurchasePrice,
		SalePrice:       input.SalePrice,
		Profit:          input.SalePrice - bike.PurchasePrice,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAadhar:  input.CustomerAadhar,
		CustomerAddress: input.CustomerAddress,
		SoldBy:          input.SoldBy,
		SaleDate:        time.Now(),
	}

	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	bike.Status = models.StatusSold
	if err := tx.Save(&bike).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &sale, nil
}

// ClearAllSales wipes the whole sale ledger and puts every sold bike back
// to available, as one bulk transaction. Demo/reset use only - this is the
// single sanctioned exception to "a Sale is permanent".
func ClearAllSales(ctx context.Context) error {
	tx := DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("1 = 1").Delete(&models.Sale{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Bike{}).
		Where("status = ?", models.StatusSold).
		Update("status", models.StatusAvailable).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

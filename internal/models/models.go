package models

import (
	"time"
)

// Bike status values. A bike moves available -> sold exactly once;
// only the sell transition (and the clear-all reset) may change it.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// User - A staff account. The role claim drives all authorization.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100" json:"email"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'admin', 'worker'
	DisplayName  string    `json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Bike - The Inventory
type Bike struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	BikeName           string    `json:"bikeName"`
	Year               int       `json:"year"`
	RegistrationNumber string    `json:"registrationNumber"`
	OwnerPhone         string    `json:"ownerPhone"`
	OwnerAadhar        string    `json:"ownerAadhar"`
	OwnerAddress       string    `json:"ownerAddress"`
	PurchasePrice      float64   `json:"purchasePrice"`
	SellingPrice       float64   `json:"sellingPrice"`
	Status             string    `json:"status"`  // 'available', 'sold'
	AddedBy            uint      `json:"addedBy"` // Who brought it into inventory
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Sale - One closed transaction for exactly one Bike.
// BikeName, BikeYear and PurchasePrice are snapshots taken at sale time,
// so editing or deleting the bike later never rewrites sale history.
type Sale struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BikeID          uint      `gorm:"index" json:"bikeId"`
	BikeName        string    `json:"bikeName"`
	BikeYear        int       `json:"bikeYear"`
	PurchasePrice   float64   `json:"purchasePrice"`
	SalePrice       float64   `json:"salePrice"`
	Profit          float64   `json:"profit"` // salePrice - purchasePrice, can be negative
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAadhar  string    `json:"customerAadhar"`
	CustomerAddress string    `json:"customerAddress"`
	SoldBy          uint      `json:"soldBy"` // Who closed the deal
	SaleDate        time.Time `json:"saleDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// KPIData - Dashboard numbers, computed on demand, never stored.
type KPIData struct {
	TotalProfit         float64 `json:"totalProfit"`
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalExpenses       float64 `json:"totalExpenses"`
	TotalBikesSold      int64   `json:"totalBikesSold"`
	TotalBikesAvailable int64   `json:"totalBikesAvailable"`
}

// MonthlySalesData - One chart bucket. The chart always gets 12 of these.
type MonthlySalesData struct {
	Month     string  `json:"month"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
	Profit    float64 `json:"profit"`
}

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/models"
	"go-dealer-agent/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the API against a fresh in-memory database, with a
// stub auth middleware that injects the given role the same way the real
// one does after validating a token.
func setupRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Bike{}, &models.Sale{}))
	database.DB = db

	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("role", role)
		c.Next()
	})

	api.GET("/bikes", GetBikes)
	api.GET("/bikes/:id", GetBikeByID)
	api.POST("/bikes", AddBike)
	api.PUT("/bikes/:id", UpdateBike)
	api.DELETE("/bikes/:id", DeleteBike)

	api.POST("/sales/bike/:id/sold", SellBike)
	api.GET("/sales", GetSales)
	api.GET("/sales/:id", GetSaleByID)
	api.GET("/sales/bike/:id", GetSaleByBikeID)

	api.GET("/analytics/kpi", GetKPI)
	api.GET("/analytics/monthly-sales", GetMonthlySales)

	admin := api.Group("/")
	admin.Use(func(c *gin.Context) {
		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	})
	admin.GET("/users", GetUsers)
	admin.POST("/users", CreateUser)
	admin.PUT("/users/:id", UpdateUser)
	admin.DELETE("/users/:id", DeleteUser)
	admin.DELETE("/sales/clear-all", ClearAllSales)

	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func validBikePayload() map[string]interface{} {
	return map[string]interface{}{
		"bikeName":           "RE Classic 350",
		"year":               2022,
		"registrationNumber": "TN01AB1234",
		"ownerPhone":         "9876543210",
		"ownerAadhar":        "123456789012",
		"ownerAddress":       "12 Anna Salai, Chennai",
		"purchasePrice":      120000,
		"sellingPrice":       150000,
	}
}

func validSellPayload() map[string]interface{} {
	return map[string]interface{}{
		"salePrice":       145000,
		"customerName":    "Ravi Kumar",
		"customerEmail":   "ravi@example.com",
		"customerPhone":   "9123456780",
		"customerAadhar":  "987654321098",
		"customerAddress": "4 MG Road, Bengaluru",
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"go-dealer-agent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBike(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)

	w := doJSON(r, http.MethodPost, "/api/bikes", validBikePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)

	var bike models.Bike
	require.NoError(t, json.Unmarshal(env.Data, &bike))
	assert.Equal(t, models.StatusAvailable, bike.Status)
	assert.Equal(t, uint(1), bike.AddedBy)
}

func TestAddBikeRejectsBadAadhar(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)

	for _, aadhar := range []string{"12345", "12345678901a", ""} {
		payload := validBikePayload()
		payload["ownerAadhar"] = aadhar
		w := doJSON(r, http.MethodPost, "/api/bikes", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "aadhar %q", aadhar)
		assert.False(t, decode(t, w).Success)
	}
}

func TestAddBikeRejectsBadYear(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)

	for _, year := range []int{1899, 2100} {
		payload := validBikePayload()
		payload["year"] = year
		w := doJSON(r, http.MethodPost, "/api/bikes", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "year %d", year)
	}
}

func TestAddBikeRejectsNegativePrice(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)

	payload := validBikePayload()
	payload["purchasePrice"] = -1
	w := doJSON(r, http.MethodPost, "/api/bikes", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBikesByStatus(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)

	doJSON(r, http.MethodPost, "/api/bikes", validBikePayload())
	second := validBikePayload()
	second["bikeName"] = "Pulsar 150"
	doJSON(r, http.MethodPost, "/api/bikes", second)
	doJSON(r, http.MethodPost, "/api/sales/bike/1/sold", validSellPayload())

	w := doJSON(r, http.MethodGet, "/api/bikes?status=available", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.Bike
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &bikes))
	require.Len(t, bikes, 1)
	assert.Equal(t, "Pulsar 150", bikes[0].BikeName)
}

func TestUpdateBikeRejectsStatusWrite(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)
	doJSON(r, http.MethodPost, "/api/bikes", validBikePayload())

	w := doJSON(r, http.MethodPut, "/api/bikes/1", map[string]interface{}{"status": "sold"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Status untouched
	get := doJSON(r, http.MethodGet, "/api/bikes/1", nil)
	var bike models.Bike
	require.NoError(t, json.Unmarshal(decode(t, get).Data, &bike))
	assert.Equal(t, models.StatusAvailable, bike.Status)
}

func TestUpdateBikePartial(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)
	doJSON(r, http.MethodPost, "/api/bikes", validBikePayload())

	w := doJSON(r, http.MethodPut, "/api/bikes/1", map[string]interface{}{"sellingPrice": 155000})
	require.Equal(t, http.StatusOK, w.Code)

	get := doJSON(r, http.MethodGet, "/api/bikes/1", nil)
	var bike models.Bike
	require.NoError(t, json.Unmarshal(decode(t, get).Data, &bike))
	assert.Equal(t, 155000.0, bike.SellingPrice)
	assert.Equal(t, "RE Classic 350", bike.BikeName)
}

func TestUpdateBikeNotFound(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)

	w := doJSON(r, http.MethodPut, "/api/bikes/42", map[string]interface{}{"sellingPrice": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBikeKeepsSale(t *testing.T) {
	r := setupRouter(t, models.RoleWorker)
	doJSON(r, http.MethodPost, "/api/bikes", validBikePayload())
	sell := doJSON(r, http.MethodPost, "/api/sales/bike/1/sold", validSellPayload())
	require.Equal(t, http.StatusCreated, sell.Code)

	w := doJSON(r, http.MethodDelete, "/api/bikes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The sale's snapshot is now the only remaining record of the bike
	get := doJSON(r, http.MethodGet, "/api/sales/bike/1", nil)
	require.Equal(t, http.StatusOK, get.Code)
	var sale models.Sale
	require.NoError(t, json.Unmarshal(decode(t, get).Data, &sale))
	assert.Equal(t, "RE Classic 350", sale.BikeName)
	assert.Equal(t, 120000.0, sale.PurchasePrice)
}

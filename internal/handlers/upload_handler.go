package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// --- POST: /api/upload ---
// Stores a bike or aadhar photo under ./uploads and returns its URL.
// The frontend sends multipart form data with "file" and a "type" field.
func UploadImage(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		Fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	// 2. Only images make sense here
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		Fail(c, http.StatusBadRequest, "File must be an image (jpg, png or webp)")
		return
	}

	if file.Size > 5*1024*1024 {
		Fail(c, http.StatusRequestEntityTooLarge, "File size must be less than 5MB")
		return
	}

	kind := c.PostForm("type")
	if kind != "aadhar" {
		kind = "bike"
	}

	// 3. Generate a safe unique filename, e.g. "bike_167890123_classic.jpg"
	filename := fmt.Sprintf("%s_%d_%s", kind, time.Now().Unix(), filepath.Base(file.Filename))
	dst := "./uploads/" + filename

	// 4. Save the file to the 'uploads' folder
	if err := c.SaveUploadedFile(file, dst); err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to save file")
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	OK(c, http.StatusOK, gin.H{"downloadURL": baseURL + "/uploads/" + filename})
}

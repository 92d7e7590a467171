package handlers

import (
	"net/http"
	"os"

	"go-dealer-agent/internal/ai"

	"github.com/gin-gonic/gin"
)

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- POST: /api/ask (admin only) ---
func AskAI(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Message is required")
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		Fail(c, http.StatusInternalServerError, "Server missing Gemini API key")
		return
	}

	response, err := ai.RunAgent(req.Message, apiKey)
	if err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	OK(c, http.StatusOK, gin.H{"reply": response})
}

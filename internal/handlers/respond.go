package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope the frontend expects:
// {success, data?, error?}.

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

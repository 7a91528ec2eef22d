package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes a uniform JSON error envelope.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

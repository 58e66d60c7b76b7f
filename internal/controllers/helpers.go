package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the id placed in the context by AuthMiddleware and
// answers 401 itself when it is missing.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Invalid user ID in token",
		})
		return 0, false
	}
	return userID, true
}

func respondError(c *gin.Context, status int, message string, err error) {
	body := gin.H{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

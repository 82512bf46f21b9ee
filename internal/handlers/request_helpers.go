package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/zohir26/IC-sub001/internal/config"
)

const dbTimeout = 5 * time.Second

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
	}
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), dbTimeout)
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

// respondInternalError hides the underlying message in production.
func respondInternalError(c *gin.Context, route string, err error) {
	log.Printf("[%s] internal error: %v", route, err)
	message := "internal server error"
	if err != nil && !config.IsProduction() {
		message = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   message,
	})
}

func respondValidationError(c *gin.Context, route string, err error, details []string) {
	if len(details) == 0 {
		details = unpackValidationErrors(err)
	}
	log.Printf("[%s] validation failed: %v", route, details)
	body := gin.H{"success": false, "error": "validation failed"}
	if len(details) > 0 {
		body["details"] = details
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// unpackValidationErrors flattens binding-layer failures into per-field
// messages.
func unpackValidationErrors(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
			switch fe.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", field))
			case "min", "gte":
				messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", field))
			}
		}
		return messages
	}
	return []string{err.Error()}
}

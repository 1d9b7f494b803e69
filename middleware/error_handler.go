package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/apperr"
	"github.com/taskboard-api/config"
)

// ErrorHandler is the single place that turns errors attached to the gin
// context into JSON responses. Handlers call c.Error and return; no other
// layer writes an error body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("💥 Request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

		var apiErr *apperr.ApiError
		if errors.As(err, &apiErr) {
			if apiErr.Cause != nil {
				log.Printf("Caused by: %v", apiErr.Cause)
			}
			if len(apiErr.Violations) > 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": apiErr.Message,
					"errors":  apiErr.Violations,
				})
				return
			}
			if apiErr.IsOperational {
				c.JSON(apiErr.StatusCode, gin.H{
					"success": false,
					"message": apiErr.Error(),
				})
				return
			}
		}

		// Unexpected failure: never leak details in production.
		message := http.StatusText(http.StatusInternalServerError)
		if !config.IsProduction() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": message,
		})
	}
}

// NotFoundHandler responds to unmatched routes with the shared error envelope.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}

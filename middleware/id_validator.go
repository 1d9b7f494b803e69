package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/apperr"
	"github.com/taskboard-api/utils"
)

// ValidateIDParams rejects requests whose route parameters are not valid
// CUIDs before the handler runs, independent of any body schema.
func ValidateIDParams(paramNames ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range paramNames {
			value := c.Param(name)
			if value == "" {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": fmt.Sprintf("Missing ID parameter '%s' in route.", name),
				})
				return
			}
			if !utils.IsCUID(value) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Invalid ID parameter.",
					"errors": []apperr.FieldViolation{{
						Path:    name,
						Message: "The supplied ID is not a valid CUID (e.g. 'clx123abcde...').",
					}},
				})
				return
			}
		}
		c.Next()
	}
}

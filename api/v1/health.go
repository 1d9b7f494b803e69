package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of the health check endpoint
type HealthResponse struct {
	Message   string    `json:"message"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthController serves the health check endpoint, independent of the store
type HealthController struct {
	startedAt time.Time
}

// NewHealthController creates a new health controller
func NewHealthController() *HealthController {
	return &HealthController{startedAt: time.Now()}
}

// RegisterRoutes registers the health check route
func (c *HealthController) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", c.Check)
}

// Check handles the health check endpoint
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Message:   "API is healthy and running!",
		Uptime:    time.Since(c.startedAt).Seconds(),
		Timestamp: time.Now().UTC(),
	})
}

package v1

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB) {
	projectController := NewProjectController(db)
	projectController.RegisterRoutes(router)

	taskController := NewTaskController(db)
	taskController.RegisterRoutes(router)
}

package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taskboard-api/apperr"
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/middleware"
	"github.com/taskboard-api/services"
)

// TaskController handles task-related API endpoints, nested under a project
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new task controller
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{
		taskService: services.NewTaskService(db),
	}
}

// RegisterRoutes registers task routes under the project-scoped path so the
// project id is inherited by child routes
func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/projects/:projectId/tasks", middleware.ValidateIDParams("projectId"))
	{
		tasks.POST("", c.CreateTask)
		tasks.GET("", c.ListTasks)
		tasks.GET("/:taskId", middleware.ValidateIDParams("taskId"), c.GetTask)
		tasks.PUT("/:taskId", middleware.ValidateIDParams("taskId"), c.UpdateTask)
		tasks.DELETE("/:taskId", middleware.ValidateIDParams("taskId"), c.DeleteTask)
	}
}

// CreateTask handles POST /projects/:projectId/tasks
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.Error(apperr.NewValidation([]apperr.FieldViolation{{Path: "body", Message: "Request body must be valid JSON."}}))
		return
	}
	if violations := req.Validate(); len(violations) > 0 {
		ctx.Error(apperr.NewValidation(violations))
		return
	}

	task, err := c.taskService.Create(ctx.Param("projectId"), req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": task})
}

// ListTasks handles GET /projects/:projectId/tasks
func (c *TaskController) ListTasks(ctx *gin.Context) {
	tasks, err := c.taskService.FindAllByProjectID(ctx.Param("projectId"))
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(tasks), "data": tasks})
}

// GetTask handles GET /projects/:projectId/tasks/:taskId
func (c *TaskController) GetTask(ctx *gin.Context) {
	task, err := c.taskService.FindByID(ctx.Param("projectId"), ctx.Param("taskId"))
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

// UpdateTask handles PUT /projects/:projectId/tasks/:taskId
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.Error(apperr.NewValidation([]apperr.FieldViolation{{Path: "body", Message: "Request body must be valid JSON."}}))
		return
	}
	if violations := req.Validate(); len(violations) > 0 {
		ctx.Error(apperr.NewValidation(violations))
		return
	}
	if req.IsEmpty() {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No data provided for update."})
		return
	}

	task, err := c.taskService.Update(ctx.Param("projectId"), ctx.Param("taskId"), req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

// DeleteTask handles DELETE /projects/:projectId/tasks/:taskId
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	if _, err := c.taskService.Delete(ctx.Param("projectId"), ctx.Param("taskId")); err != nil {
		ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

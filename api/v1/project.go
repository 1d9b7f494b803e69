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

// ProjectController handles project-related API endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(db),
	}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.POST("", c.CreateProject)
		projects.GET("", c.ListProjects)
		projects.GET("/:projectId", middleware.ValidateIDParams("projectId"), c.GetProject)
		projects.PUT("/:projectId", middleware.ValidateIDParams("projectId"), c.UpdateProject)
		projects.DELETE("/:projectId", middleware.ValidateIDParams("projectId"), c.DeleteProject)
	}
}

// CreateProject handles POST /projects
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.Error(apperr.NewValidation([]apperr.FieldViolation{{Path: "body", Message: "Request body must be valid JSON."}}))
		return
	}
	if violations := req.Validate(); len(violations) > 0 {
		ctx.Error(apperr.NewValidation(violations))
		return
	}

	project, err := c.projectService.Create(req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": project})
}

// ListProjects handles GET /projects
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.FindAll()
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(projects), "data": projects})
}

// GetProject handles GET /projects/:projectId
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.FindByID(ctx.Param("projectId"))
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// UpdateProject handles PUT /projects/:projectId
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
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

	project, err := c.projectService.Update(ctx.Param("projectId"), req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// DeleteProject handles DELETE /projects/:projectId
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if _, err := c.projectService.Delete(ctx.Param("projectId")); err != nil {
		ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

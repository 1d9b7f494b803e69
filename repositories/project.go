package repositories

import (
	"gorm.io/gorm"

	"github.com/taskboard-api/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindAll retrieves all projects, newest first, with their tasks attached in
// creation order
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	for i := range projects {
		if projects[i].Tasks == nil {
			projects[i].Tasks = []models.Task{}
		}
	}
	return projects, nil
}

// FindByID retrieves a project by its ID with its tasks attached in creation order
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&project, "id = ?", id)
	if project.Tasks == nil {
		project.Tasks = []models.Task{}
	}
	return project, result.Error
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update applies the given column updates to an existing project
func (r *ProjectRepository) Update(id string, updates map[string]interface{}) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a project and its tasks from the database
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

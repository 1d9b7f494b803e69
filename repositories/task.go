package repositories

import (
	"gorm.io/gorm"

	"github.com/taskboard-api/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByProjectID retrieves all tasks of a project in creation order
func (r *TaskRepository) FindByProjectID(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	result := r.db.
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// FindInProject retrieves a task matching both its ID and owning project
func (r *TaskRepository) FindInProject(projectID, taskID string) (models.Task, error) {
	var task models.Task
	result := r.db.First(&task, "id = ? AND project_id = ?", taskID, projectID)
	return task, result.Error
}

// UpdateInProject applies the given column updates to a task, keyed by both
// the task ID and the owning project so the scoping holds at the mutating
// statement itself
func (r *TaskRepository) UpdateInProject(projectID, taskID string, updates map[string]interface{}) error {
	return r.db.Model(&models.Task{}).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Updates(updates).Error
}

// DeleteInProject removes a task, keyed by both the task ID and the owning project
func (r *TaskRepository) DeleteInProject(projectID, taskID string) error {
	return r.db.Delete(&models.Task{}, "id = ? AND project_id = ?", taskID, projectID).Error
}

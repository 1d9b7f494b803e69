package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/taskboard-api/apperr"
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// TaskService handles business logic for tasks nested under a project
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository
}

// NewTaskService creates a new task service instance
func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(db),
		projectRepo: repositories.NewProjectRepository(db),
	}
}

// Create persists a new task under the given project. The status defaults to
// PENDING when omitted and the due date string is parsed to a date value.
func (s *TaskService) Create(projectID string, data dto.CreateTaskRequest) (models.Task, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		log.Printf("Error creating task in project %s: %v", projectID, err)
		return models.Task{}, apperr.NewInternal("Could not create the task.", err)
	}
	if !exists {
		return models.Task{}, apperr.NewNotFound(fmt.Sprintf("Project with ID %s not found to attach the task.", projectID))
	}

	task := models.Task{
		ProjectID: projectID,
		Title:     strings.TrimSpace(data.Title.Value),
		Status:    data.StatusValue(),
		DueDate:   data.DueDateValue(),
	}
	if data.Description.Set && data.Description.Valid {
		description := data.Description.Value
		task.Description = &description
	}

	if err := s.taskRepo.Create(&task); err != nil {
		log.Printf("Error creating task in project %s: %v", projectID, err)
		return models.Task{}, apperr.NewInternal("Could not create the task.", err)
	}
	return task, nil
}

// FindAllByProjectID returns the tasks of a project in creation order.
func (s *TaskService) FindAllByProjectID(projectID string) ([]models.Task, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		log.Printf("Error fetching tasks of project %s: %v", projectID, err)
		return nil, apperr.NewInternal(fmt.Sprintf("Could not fetch the tasks of project %s.", projectID), err)
	}
	if !exists {
		return nil, apperr.NewNotFound(fmt.Sprintf("Project with ID %s not found to list tasks.", projectID))
	}

	tasks, err := s.taskRepo.FindByProjectID(projectID)
	if err != nil {
		log.Printf("Error fetching tasks of project %s: %v", projectID, err)
		return nil, apperr.NewInternal(fmt.Sprintf("Could not fetch the tasks of project %s.", projectID), err)
	}
	return tasks, nil
}

// FindByID returns a task matching both its ID and the given project. A task
// reached through the wrong project is treated as not found.
func (s *TaskService) FindByID(projectID, taskID string) (models.Task, error) {
	task, err := s.taskRepo.FindInProject(projectID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperr.NewNotFound(fmt.Sprintf("Task with ID %s not found in project %s.", taskID, projectID))
		}
		log.Printf("Error fetching task %s of project %s: %v", taskID, projectID, err)
		return models.Task{}, apperr.NewInternal(fmt.Sprintf("Could not fetch the task %s.", taskID), err)
	}
	return task, nil
}

// Update verifies the task exists under the given project, applies the
// partial patch and returns the updated entity. A due date that is absent is
// left untouched, an explicit null clears it and a date string sets it.
func (s *TaskService) Update(projectID, taskID string, data dto.UpdateTaskRequest) (models.Task, error) {
	if _, err := s.taskRepo.FindInProject(projectID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperr.NewNotFound(fmt.Sprintf("Task with ID %s not found in project %s for update.", taskID, projectID))
		}
		log.Printf("Error updating task %s of project %s: %v", taskID, projectID, err)
		return models.Task{}, apperr.NewInternal(fmt.Sprintf("Could not update the task %s.", taskID), err)
	}

	updates := map[string]interface{}{}
	if data.Title.Set && data.Title.Valid {
		updates["title"] = strings.TrimSpace(data.Title.Value)
	}
	if data.Description.Set {
		if data.Description.Valid {
			updates["description"] = data.Description.Value
		} else {
			updates["description"] = nil
		}
	}
	if data.Status.Set && data.Status.Valid {
		updates["status"] = models.TaskStatus(data.Status.Value)
	}
	if data.DueDate.Set {
		if data.DueDate.Valid {
			updates["due_date"] = data.DueDateValue()
		} else {
			updates["due_date"] = nil
		}
	}

	if err := s.taskRepo.UpdateInProject(projectID, taskID, updates); err != nil {
		log.Printf("Error updating task %s of project %s: %v", taskID, projectID, err)
		return models.Task{}, apperr.NewInternal(fmt.Sprintf("Could not update the task %s.", taskID), err)
	}

	task, err := s.taskRepo.FindInProject(projectID, taskID)
	if err != nil {
		log.Printf("Error fetching task %s after update: %v", taskID, err)
		return models.Task{}, apperr.NewInternal(fmt.Sprintf("Could not update the task %s.", taskID), err)
	}
	return task, nil
}

// Delete verifies the task exists under the given project and removes it.
// It returns the deleted entity's last-known state.
func (s *TaskService) Delete(projectID, taskID string) (models.Task, error) {
	task, err := s.taskRepo.FindInProject(projectID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperr.NewNotFound(fmt.Sprintf("Task with ID %s not found in project %s for deletion.", taskID, projectID))
		}
		log.Printf("Error deleting task %s of project %s: %v", taskID, projectID, err)
		return models.Task{}, apperr.NewInternal(fmt.Sprintf("Could not delete the task %s.", taskID), err)
	}

	if err := s.taskRepo.DeleteInProject(projectID, taskID); err != nil {
		log.Printf("Error deleting task %s of project %s: %v", taskID, projectID, err)
		return models.Task{}, apperr.NewInternal(fmt.Sprintf("Could not delete the task %s.", taskID), err)
	}
	return task, nil
}

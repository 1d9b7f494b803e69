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

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(db),
	}
}

// Create persists a new project with the supplied name and description.
func (s *ProjectService) Create(data dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Name: strings.TrimSpace(data.Name.Value),
	}
	if data.Description.Set && data.Description.Valid {
		description := data.Description.Value
		project.Description = &description
	}

	if err := s.projectRepo.Create(&project); err != nil {
		log.Printf("Error creating project: %v", err)
		return models.Project{}, apperr.NewInternal("Could not create the project.", err)
	}

	project.Tasks = []models.Task{}
	return project, nil
}

// FindAll returns all projects, newest first, each with its tasks attached.
func (s *ProjectService) FindAll() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		return nil, apperr.NewInternal("Could not fetch the projects.", err)
	}
	return projects, nil
}

// FindByID returns one project with its tasks attached.
func (s *ProjectService) FindByID(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperr.NewNotFound(fmt.Sprintf("Project with ID %s not found.", id))
		}
		log.Printf("Error fetching project %s: %v", id, err)
		return models.Project{}, apperr.NewInternal(fmt.Sprintf("Could not fetch the project %s.", id), err)
	}
	return project, nil
}

// Update verifies the project exists, applies the partial patch and returns
// the updated entity. Omitted fields are left unchanged; an explicit null
// clears the description.
func (s *ProjectService) Update(id string, data dto.UpdateProjectRequest) (models.Project, error) {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperr.NewNotFound(fmt.Sprintf("Project with ID %s not found for update.", id))
		}
		log.Printf("Error updating project %s: %v", id, err)
		return models.Project{}, apperr.NewInternal(fmt.Sprintf("Could not update the project %s.", id), err)
	}

	updates := map[string]interface{}{}
	if data.Name.Set && data.Name.Valid {
		updates["name"] = strings.TrimSpace(data.Name.Value)
	}
	if data.Description.Set {
		if data.Description.Valid {
			updates["description"] = data.Description.Value
		} else {
			updates["description"] = nil
		}
	}

	if err := s.projectRepo.Update(id, updates); err != nil {
		log.Printf("Error updating project %s: %v", id, err)
		return models.Project{}, apperr.NewInternal(fmt.Sprintf("Could not update the project %s.", id), err)
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		log.Printf("Error fetching project %s after update: %v", id, err)
		return models.Project{}, apperr.NewInternal(fmt.Sprintf("Could not update the project %s.", id), err)
	}
	return project, nil
}

// Delete verifies the project exists and removes it together with its tasks.
// It returns the deleted entity's last-known state.
func (s *ProjectService) Delete(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperr.NewNotFound(fmt.Sprintf("Project with ID %s not found for deletion.", id))
		}
		log.Printf("Error deleting project %s: %v", id, err)
		return models.Project{}, apperr.NewInternal(fmt.Sprintf("Could not delete the project %s.", id), err)
	}

	if err := s.projectRepo.Delete(id); err != nil {
		log.Printf("Error deleting project %s: %v", id, err)
		return models.Project{}, apperr.NewInternal(fmt.Sprintf("Could not delete the project %s.", id), err)
	}
	return project, nil
}

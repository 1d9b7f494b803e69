package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskboard-api/apperr"
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
)

// A well-formed CUID that no entity ever receives.
const missingID = "c000000000000000000000000"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Task{}))
	return db
}

func requireApiError(t *testing.T, err error, statusCode int) *apperr.ApiError {
	t.Helper()
	var apiErr *apperr.ApiError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.True(t, apiErr.IsOperational)
	return apiErr
}

func createProjectPayload(t *testing.T, svc *ProjectService, payload string) models.Project {
	t.Helper()
	var req dto.CreateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Empty(t, req.Validate())
	project, err := svc.Create(req)
	require.NoError(t, err)
	return project
}

func createTaskPayload(t *testing.T, svc *TaskService, projectID, payload string) models.Task {
	t.Helper()
	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Empty(t, req.Validate())
	task, err := svc.Create(projectID, req)
	require.NoError(t, err)
	return task
}

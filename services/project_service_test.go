package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/utils"
)

func TestProjectServiceCreateAndFetch(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	created := createProjectPayload(t, svc, `{"name":"Alpha","description":"first"}`)
	assert.True(t, utils.IsCUID(created.ID))
	assert.Equal(t, "Alpha", created.Name)
	require.NotNil(t, created.Description)
	assert.Equal(t, "first", *created.Description)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	fetched, err := svc.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Alpha", fetched.Name)
	require.NotNil(t, fetched.Tasks)
	assert.Empty(t, fetched.Tasks)
}

func TestProjectServiceCreateWithoutDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	created := createProjectPayload(t, svc, `{"name":"Alpha"}`)
	assert.Nil(t, created.Description)
}

func TestProjectServiceFindAllOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	taskSvc := NewTaskService(db)

	first := createProjectPayload(t, svc, `{"name":"First"}`)
	time.Sleep(10 * time.Millisecond)
	second := createProjectPayload(t, svc, `{"name":"Second"}`)
	time.Sleep(10 * time.Millisecond)
	third := createProjectPayload(t, svc, `{"name":"Third"}`)

	taskA := createTaskPayload(t, taskSvc, second.ID, `{"title":"task A"}`)
	time.Sleep(10 * time.Millisecond)
	taskB := createTaskPayload(t, taskSvc, second.ID, `{"title":"task B"}`)

	projects, err := svc.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	// Projects newest first.
	assert.Equal(t, third.ID, projects[0].ID)
	assert.Equal(t, second.ID, projects[1].ID)
	assert.Equal(t, first.ID, projects[2].ID)

	// Tasks oldest first within their project.
	require.Len(t, projects[1].Tasks, 2)
	assert.Equal(t, taskA.ID, projects[1].Tasks[0].ID)
	assert.Equal(t, taskB.ID, projects[1].Tasks[1].ID)

	require.NotNil(t, projects[0].Tasks)
	assert.Empty(t, projects[0].Tasks)
}

func TestProjectServiceFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	_, err := svc.FindByID(missingID)
	apiErr := requireApiError(t, err, 404)
	assert.Contains(t, apiErr.Message, missingID)
}

func TestProjectServiceUpdatePartialPatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	created := createProjectPayload(t, svc, `{"name":"Alpha","description":"keep me"}`)

	var patch dto.UpdateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alpha v2"}`), &patch))
	updated, err := svc.Update(created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Alpha v2", updated.Name)
	require.NotNil(t, updated.Description, "omitted field must stay unchanged")
	assert.Equal(t, "keep me", *updated.Description)
}

func TestProjectServiceUpdateClearsDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	created := createProjectPayload(t, svc, `{"name":"Alpha","description":"old"}`)

	var patch dto.UpdateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &patch))
	updated, err := svc.Update(created.ID, patch)
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Equal(t, "Alpha", updated.Name)
}

func TestProjectServiceUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	var patch dto.UpdateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ghost"}`), &patch))
	_, err := svc.Update(missingID, patch)
	apiErr := requireApiError(t, err, 404)
	assert.Contains(t, apiErr.Message, missingID)
}

func TestProjectServiceDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	taskSvc := NewTaskService(db)

	project := createProjectPayload(t, svc, `{"name":"Doomed"}`)
	task := createTaskPayload(t, taskSvc, project.ID, `{"title":"orphan-to-be"}`)

	deleted, err := svc.Delete(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.Name)

	_, err = svc.FindByID(project.ID)
	requireApiError(t, err, 404)

	_, err = taskSvc.FindByID(project.ID, task.ID)
	requireApiError(t, err, 404)
}

func TestProjectServiceDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	_, err := svc.Delete(missingID)
	requireApiError(t, err, 404)
}

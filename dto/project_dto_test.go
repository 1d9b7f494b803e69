package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInto(t *testing.T, payload string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(payload), v))
}

func TestCreateProjectValid(t *testing.T) {
	var req CreateProjectRequest
	decodeInto(t, `{"name":"Alpha","description":"first project"}`, &req)

	assert.Empty(t, req.Validate())
	assert.Equal(t, "Alpha", req.Name.Value)
	assert.True(t, req.Description.Set)
	assert.Equal(t, "first project", req.Description.Value)
}

func TestCreateProjectNameRequired(t *testing.T) {
	var req CreateProjectRequest
	decodeInto(t, `{"description":"no name"}`, &req)

	violations := req.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Path)
	assert.Equal(t, "The project name is required.", violations[0].Message)
}

func TestCreateProjectNameLengthBounds(t *testing.T) {
	var short CreateProjectRequest
	decodeInto(t, `{"name":"Al"}`, &short)
	violations := short.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Path)
	assert.Contains(t, violations[0].Message, "at least 3 characters")

	var long CreateProjectRequest
	decodeInto(t, `{"name":"`+strings.Repeat("a", 101)+`"}`, &long)
	violations = long.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Path)
	assert.Contains(t, violations[0].Message, "cannot exceed 100 characters")

	// Boundary lengths are accepted.
	var min CreateProjectRequest
	decodeInto(t, `{"name":"abc"}`, &min)
	assert.Empty(t, min.Validate())

	var max CreateProjectRequest
	decodeInto(t, `{"name":"`+strings.Repeat("a", 100)+`"}`, &max)
	assert.Empty(t, max.Validate())
}

func TestCreateProjectWrongTypes(t *testing.T) {
	var req CreateProjectRequest
	decodeInto(t, `{"name":123,"description":false}`, &req)

	violations := req.Validate()
	require.Len(t, violations, 2)
	assert.Equal(t, "name", violations[0].Path)
	assert.Equal(t, "The project name must be a string.", violations[0].Message)
	assert.Equal(t, "description", violations[1].Path)
	assert.Equal(t, "The project description must be a string.", violations[1].Message)
}

func TestCreateProjectDescriptionRules(t *testing.T) {
	var long CreateProjectRequest
	decodeInto(t, `{"name":"Alpha","description":"`+strings.Repeat("d", 501)+`"}`, &long)
	violations := long.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "description", violations[0].Path)
	assert.Contains(t, violations[0].Message, "cannot exceed 500 characters")

	// Null is not accepted on creation, only on update.
	var null CreateProjectRequest
	decodeInto(t, `{"name":"Alpha","description":null}`, &null)
	violations = null.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "description", violations[0].Path)
}

func TestUpdateProjectTriState(t *testing.T) {
	var absent UpdateProjectRequest
	decodeInto(t, `{}`, &absent)
	assert.Empty(t, absent.Validate())
	assert.True(t, absent.IsEmpty())
	assert.False(t, absent.Description.Set)

	var cleared UpdateProjectRequest
	decodeInto(t, `{"description":null}`, &cleared)
	assert.Empty(t, cleared.Validate())
	assert.False(t, cleared.IsEmpty())
	assert.True(t, cleared.Description.Set)
	assert.False(t, cleared.Description.Valid)

	var set UpdateProjectRequest
	decodeInto(t, `{"description":"new text"}`, &set)
	assert.Empty(t, set.Validate())
	assert.True(t, set.Description.Set)
	assert.True(t, set.Description.Valid)
	assert.Equal(t, "new text", set.Description.Value)
}

func TestUpdateProjectNameNotNullable(t *testing.T) {
	var req UpdateProjectRequest
	decodeInto(t, `{"name":null}`, &req)

	violations := req.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Path)
	assert.Equal(t, "The project name must be a string.", violations[0].Message)
}

func TestUpdateProjectUnknownFieldsIgnored(t *testing.T) {
	var req UpdateProjectRequest
	decodeInto(t, `{"owner":"nobody"}`, &req)

	assert.Empty(t, req.Validate())
	assert.True(t, req.IsEmpty())
}

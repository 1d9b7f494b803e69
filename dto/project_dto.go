package dto

import "github.com/taskboard-api/apperr"

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        Nullable[string] `json:"name"`
	Description Nullable[string] `json:"description"`
}

// Validate checks the payload and returns violations in schema order.
func (r *CreateProjectRequest) Validate() []apperr.FieldViolation {
	var violations []apperr.FieldViolation
	violations = append(violations, stringRule{path: "name", label: "project name", required: true, min: 3, max: 100}.check(r.Name)...)
	violations = append(violations, stringRule{path: "description", label: "project description", max: 500}.check(r.Description)...)
	return violations
}

// UpdateProjectRequest represents the partial-patch payload for updating a
// project. All fields are optional; description may be explicitly null to
// clear it.
type UpdateProjectRequest struct {
	Name        Nullable[string] `json:"name"`
	Description Nullable[string] `json:"description"`
}

// Validate checks the payload and returns violations in schema order.
func (r *UpdateProjectRequest) Validate() []apperr.FieldViolation {
	var violations []apperr.FieldViolation
	violations = append(violations, stringRule{path: "name", label: "project name", min: 3, max: 100}.check(r.Name)...)
	violations = append(violations, stringRule{path: "description", label: "project description", nullable: true, max: 500}.check(r.Description)...)
	return violations
}

// IsEmpty reports whether no recognized field was supplied.
func (r *UpdateProjectRequest) IsEmpty() bool {
	return !r.Name.Set && !r.Description.Set
}

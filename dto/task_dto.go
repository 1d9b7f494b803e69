package dto

import (
	"time"

	"github.com/taskboard-api/apperr"
	"github.com/taskboard-api/models"
)

const invalidStatusMessage = "Invalid status. Use 'PENDING', 'IN_PROGRESS' or 'COMPLETED'."

func checkStatus(f Nullable[string]) []apperr.FieldViolation {
	if !f.Set {
		return nil
	}
	if !f.Valid || !models.TaskStatus(f.Value).IsValid() {
		return []apperr.FieldViolation{{Path: "status", Message: invalidStatusMessage}}
	}
	return nil
}

// CreateTaskRequest represents the request payload for creating a new task
type CreateTaskRequest struct {
	Title       Nullable[string] `json:"title"`
	Description Nullable[string] `json:"description"`
	Status      Nullable[string] `json:"status"`
	DueDate     Nullable[string] `json:"dueDate"`
}

// Validate checks the payload and returns violations in schema order.
func (r *CreateTaskRequest) Validate() []apperr.FieldViolation {
	var violations []apperr.FieldViolation
	violations = append(violations, stringRule{path: "title", label: "task title", required: true, min: 3, max: 150}.check(r.Title)...)
	violations = append(violations, stringRule{path: "description", label: "task description", max: 1000}.check(r.Description)...)
	violations = append(violations, checkStatus(r.Status)...)
	violations = append(violations, checkDueDate(r.DueDate)...)
	return violations
}

// StatusValue returns the supplied status, defaulting to PENDING when omitted.
// The default applies on creation only.
func (r *CreateTaskRequest) StatusValue() models.TaskStatus {
	if r.Status.Set && r.Status.Valid {
		return models.TaskStatus(r.Status.Value)
	}
	return models.TaskStatusPending
}

// DueDateValue returns the parsed due date, or nil for "no due date".
func (r *CreateTaskRequest) DueDateValue() *time.Time {
	return dueDateValue(r.DueDate)
}

// UpdateTaskRequest represents the partial-patch payload for updating a task.
// All fields are optional; description and dueDate may be explicitly null to
// clear them.
type UpdateTaskRequest struct {
	Title       Nullable[string] `json:"title"`
	Description Nullable[string] `json:"description"`
	Status      Nullable[string] `json:"status"`
	DueDate     Nullable[string] `json:"dueDate"`
}

// Validate checks the payload and returns violations in schema order.
func (r *UpdateTaskRequest) Validate() []apperr.FieldViolation {
	var violations []apperr.FieldViolation
	violations = append(violations, stringRule{path: "title", label: "task title", min: 3, max: 150}.check(r.Title)...)
	violations = append(violations, stringRule{path: "description", label: "task description", nullable: true, max: 1000}.check(r.Description)...)
	violations = append(violations, checkStatus(r.Status)...)
	violations = append(violations, checkDueDate(r.DueDate)...)
	return violations
}

// IsEmpty reports whether no recognized field was supplied.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set && !r.Status.Set && !r.DueDate.Set
}

// DueDateValue returns the parsed due date when the field carries a value.
func (r *UpdateTaskRequest) DueDateValue() *time.Time {
	return dueDateValue(r.DueDate)
}

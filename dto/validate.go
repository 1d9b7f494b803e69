package dto

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taskboard-api/apperr"
)

// stringRule describes the schema constraints for one string field.
type stringRule struct {
	path     string
	label    string
	required bool
	nullable bool
	min      int
	max      int
}

// check validates a tri-state field against the rule. Length bounds apply to
// the trimmed value.
func (r stringRule) check(f Nullable[string]) []apperr.FieldViolation {
	if !f.Set {
		if r.required {
			return []apperr.FieldViolation{{Path: r.path, Message: fmt.Sprintf("The %s is required.", r.label)}}
		}
		return nil
	}
	if f.WrongType || (!f.Valid && !r.nullable) {
		return []apperr.FieldViolation{{Path: r.path, Message: fmt.Sprintf("The %s must be a string.", r.label)}}
	}
	if !f.Valid {
		return nil
	}

	length := utf8.RuneCountInString(strings.TrimSpace(f.Value))
	if r.min > 0 && length < r.min {
		return []apperr.FieldViolation{{Path: r.path, Message: fmt.Sprintf("The %s must be at least %d characters.", r.label, r.min)}}
	}
	if r.max > 0 && length > r.max {
		return []apperr.FieldViolation{{Path: r.path, Message: fmt.Sprintf("The %s cannot exceed %d characters.", r.label, r.max)}}
	}
	return nil
}

func checkDueDate(f Nullable[string]) []apperr.FieldViolation {
	if !f.Set || (!f.Valid && !f.WrongType) {
		// Absent and null both mean "no due date".
		return nil
	}
	if f.WrongType {
		return []apperr.FieldViolation{{Path: "dueDate", Message: "The due date must be a string in ISO 8601 format."}}
	}
	if _, err := time.Parse(time.RFC3339, f.Value); err != nil {
		return []apperr.FieldViolation{{Path: "dueDate", Message: "Invalid date format. Use the ISO 8601 format."}}
	}
	return nil
}

// dueDateValue returns the parsed due date, or nil when the field is absent
// or null. Call only after Validate has passed.
func dueDateValue(f Nullable[string]) *time.Time {
	if !f.Set || !f.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339, f.Value)
	if err != nil {
		return nil
	}
	return &t
}

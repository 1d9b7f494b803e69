package dto

import (
	"encoding/json"
)

// Nullable distinguishes the three states an optional JSON field can be in:
// absent (Set=false), explicitly null (Set=true, Valid=false) and carrying a
// value (Set=true, Valid=true). A value of the wrong JSON type is recorded as
// WrongType instead of aborting the decode, so the schema can report it as a
// field-level violation.
type Nullable[T any] struct {
	Set       bool
	Valid     bool
	WrongType bool
	Value     T
}

// UnmarshalJSON is only invoked when the field is present in the payload.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			n.WrongType = true
			return nil
		}
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON round-trips the field, serializing null and absent states as null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

package form

import "context"

// ErrorRepository stores the current error message per (form id, field).
// A missing entry means the field has no error. Implementations must be
// safe for concurrent use and must only touch the bucket of the given form id.
type ErrorRepository interface {
	// Get returns the field's message and whether one is stored
	Get(ctx context.Context, formID, field string) (string, bool, error)

	// Set records a message for the field, replacing any previous one
	Set(ctx context.Context, formID, field, message string) error

	// Delete removes the field's entry; missing entries are not an error
	Delete(ctx context.Context, formID, field string) error

	// All returns a copy of every entry in the form's bucket
	All(ctx context.Context, formID string) (map[string]string, error)

	// Clear removes the form's whole bucket
	Clear(ctx context.Context, formID string) error
}

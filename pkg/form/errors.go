package form

import "errors"

var (
	// ErrNilRepository indicates a form or manager was built without an error repository
	ErrNilRepository = errors.New("form.nil_repository")

	// ErrEmptyFormID indicates a form was opened without an id
	ErrEmptyFormID = errors.New("form.empty_id")

	// ErrFormDisposed is returned by writes on a form after Dispose
	ErrFormDisposed = errors.New("form.disposed")

	// ErrFormIDInUse indicates another live form already owns the id
	ErrFormIDInUse = errors.New("form.id_in_use")

	// ErrSubmitFailed wraps the error returned by a submit callback
	ErrSubmitFailed = errors.New("form.submit_failed")

	// ErrRepository wraps failures of the underlying error repository
	ErrRepository = errors.New("form.repository_failed")
)

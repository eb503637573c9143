package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form binds field validators to the change, blur and submit lifecycle of one
// form instance. Errors live in the shared ErrorRepository under the form id;
// touched fields, pending timers and the submitting flag are local to the Form.
//
// Every write to the repository goes through commit, which drops results that
// were superseded by a newer validation of the same field or by a reset, and
// refuses to write once the form is disposed.
type Form struct {
	id     string
	repo   ErrorRepository
	logger *slog.Logger

	validateOnChange bool
	validateOnBlur   bool
	debounce         time.Duration
	release          func()

	mu         sync.Mutex
	touched    map[string]struct{}
	timers     map[string]*time.Timer
	gens       map[string]uint64
	submitting bool
	disposed   bool
}

// SubmitFunc receives the submitted fields once they all pass validation
type SubmitFunc func(ctx context.Context, fields map[string]any) error

// New creates a form that writes its errors into repo under formID.
// Panics on a nil repository or an empty id: both are wiring bugs.
func New(repo ErrorRepository, formID string, opts ...Option) *Form {
	if repo == nil {
		panic(ErrNilRepository)
	}
	if formID == "" {
		panic(ErrEmptyFormID)
	}

	cfg := DefaultConfig()
	f := &Form{
		id:               formID,
		repo:             repo,
		logger:           newNoopLogger(),
		validateOnChange: cfg.ValidateOnChange,
		validateOnBlur:   cfg.ValidateOnBlur,
		debounce:         cfg.Debounce,
		touched:          make(map[string]struct{}),
		timers:           make(map[string]*time.Timer),
		gens:             make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("form"), logger.FormID(formID))

	return f
}

// ID returns the form id
func (f *Form) ID() string {
	return f.id
}

// TouchField marks a field as interacted with. Idempotent.
func (f *Form) TouchField(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.touched[field] = struct{}{}
}

func (f *Form) IsFieldTouched(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.touched[field]
	return ok
}

// TouchedFields returns the touched field names in sorted order
func (f *Form) TouchedFields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Sorted(maps.Keys(f.touched))
}

func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

// PendingValidations reports how many debounced validations are scheduled
func (f *Form) PendingValidations() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.timers)
}

// ValidateField validates value and records the outcome for field.
//
// When immediate is false and a debounce window is configured, the validation
// is scheduled after the window, replacing any pending one for the field, and
// ValidateField reports true without waiting for the result. Otherwise it
// cancels any pending validation for the field, runs v synchronously and
// returns its verdict.
func (f *Form) ValidateField(ctx context.Context, field string, value any, v validator.FieldValidator, immediate bool) (bool, error) {
	if v == nil {
		panic(fmt.Errorf("%w: field %q", validator.ErrNilValidator, field))
	}

	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return false, ErrFormDisposed
	}
	if !immediate && f.debounce > 0 {
		f.scheduleLocked(ctx, field, value, v)
		f.mu.Unlock()
		return true, nil
	}
	gen := f.supersedeLocked(field)
	f.mu.Unlock()

	res := v(value)
	return res.Valid, f.commit(ctx, field, gen, res)
}

// scheduleLocked replaces the pending timer for field. Caller holds f.mu.
func (f *Form) scheduleLocked(ctx context.Context, field string, value any, v validator.FieldValidator) {
	gen := f.supersedeLocked(field)
	// The timer outlives the caller's request; keep its values, drop its deadline.
	bg := context.WithoutCancel(ctx)

	var timer *time.Timer
	timer = time.AfterFunc(f.debounce, func() {
		f.mu.Lock()
		if f.timers[field] == timer {
			delete(f.timers, field)
		}
		current := !f.disposed && f.gens[field] == gen
		f.mu.Unlock()
		if !current {
			return
		}

		res := v(value)
		if err := f.commit(bg, field, gen, res); err != nil && !errors.Is(err, ErrFormDisposed) {
			f.logger.WarnContext(bg, "debounced validation not recorded",
				logger.Field(field),
				logger.Error(err),
			)
			return
		}
		f.logger.DebugContext(bg, "debounced validation completed",
			logger.Field(field),
			slog.Bool("valid", res.Valid),
		)
	})
	f.timers[field] = timer

	f.logger.DebugContext(ctx, "validation scheduled",
		logger.Field(field),
		logger.Duration(f.debounce),
	)
}

// supersedeLocked cancels the pending timer for field and invalidates any
// validation already in flight for it. Caller holds f.mu.
func (f *Form) supersedeLocked(field string) uint64 {
	if t, ok := f.timers[field]; ok {
		t.Stop()
		delete(f.timers, field)
	}
	f.gens[field]++
	return f.gens[field]
}

// commit writes or clears the field's error unless gen has been superseded.
func (f *Form) commit(ctx context.Context, field string, gen uint64, res validator.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disposed {
		return ErrFormDisposed
	}
	if f.gens[field] != gen {
		return nil
	}

	var err error
	if res.Valid {
		err = f.repo.Delete(ctx, f.id, field)
	} else {
		// A failure always carries a message, even from hand-written validators.
		err = f.repo.Set(ctx, f.id, field, validator.Fail(res.Error).Error)
	}
	if err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}

// HandleFieldChange passes value to onChange, then validates with debounce
// when validate-on-change is enabled and the field is touched or the form is submitting.
func (f *Form) HandleFieldChange(ctx context.Context, field string, value any, v validator.FieldValidator, onChange func(value any)) error {
	if onChange != nil {
		onChange(value)
	}

	f.mu.Lock()
	_, touched := f.touched[field]
	shouldValidate := f.validateOnChange && (touched || f.submitting)
	f.mu.Unlock()

	if !shouldValidate {
		return nil
	}
	_, err := f.ValidateField(ctx, field, value, v, false)
	return err
}

// HandleFieldBlur touches the field, calls onBlur, then validates immediately
// when validate-on-blur is enabled.
func (f *Form) HandleFieldBlur(ctx context.Context, field string, value any, v validator.FieldValidator, onBlur func()) error {
	if f.isDisposed() {
		return ErrFormDisposed
	}
	f.TouchField(field)
	if onBlur != nil {
		onBlur()
	}

	if !f.validateOnBlur {
		return nil
	}
	_, err := f.ValidateField(ctx, field, value, v, true)
	return err
}

// ValidateFormFields touches every field named in validators, validates all of
// them synchronously and records every outcome. It reports overall validity.
func (f *Form) ValidateFormFields(ctx context.Context, fields map[string]any, validators map[string]validator.FieldValidator) (bool, error) {
	names := slices.Sorted(maps.Keys(validators))

	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return false, ErrFormDisposed
	}
	gens := make(map[string]uint64, len(names))
	for _, name := range names {
		f.touched[name] = struct{}{}
		gens[name] = f.supersedeLocked(name)
	}
	f.mu.Unlock()

	result := validator.ValidateFields(fields, validators)

	var errs []error
	for _, name := range names {
		res := validator.OK()
		if msg, failed := result.Errors[name]; failed {
			res = validator.Fail(msg)
		}
		if err := f.commit(ctx, name, gens[name], res); err != nil {
			errs = append(errs, err)
		}
	}

	f.logger.DebugContext(ctx, "form validated",
		logger.FieldCount(len(names)),
		slog.Bool("valid", result.Valid),
	)
	return result.Valid, errors.Join(errs...)
}

// HandleSubmit validates every field and, when all pass, calls onSubmit.
// The submitting flag is set for the whole call. An onSubmit failure is
// returned joined with ErrSubmitFailed; the reported validity stays true.
func (f *Form) HandleSubmit(ctx context.Context, fields map[string]any, validators map[string]validator.FieldValidator, onSubmit SubmitFunc) (bool, error) {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return false, ErrFormDisposed
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	valid, err := f.ValidateFormFields(ctx, fields, validators)
	if err != nil || !valid {
		return valid, err
	}

	if onSubmit != nil {
		if err := onSubmit(ctx, fields); err != nil {
			f.logger.WarnContext(ctx, "submit failed", logger.Error(err))
			return true, errors.Join(ErrSubmitFailed, err)
		}
	}
	return true, nil
}

// ClearFieldError removes the field's error and cancels its pending validation
func (f *Form) ClearFieldError(ctx context.Context, field string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disposed {
		return ErrFormDisposed
	}
	f.supersedeLocked(field)

	if err := f.repo.Delete(ctx, f.id, field); err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}

// ClearErrors removes every error of the form, cancels pending validations
// and resets the touched set and the submitting flag.
func (f *Form) ClearErrors(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disposed {
		return ErrFormDisposed
	}
	f.resetLocked()

	if err := f.repo.Clear(ctx, f.id); err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}

// ResetForm restores the form to its initial state
func (f *Form) ResetForm(ctx context.Context) error {
	return f.ClearErrors(ctx)
}

// resetLocked stops all timers and supersedes every field ever validated. Caller holds f.mu.
func (f *Form) resetLocked() {
	for field, t := range f.timers {
		t.Stop()
		delete(f.timers, field)
	}
	for field := range f.gens {
		f.gens[field]++
	}
	clear(f.touched)
	f.submitting = false
}

// GetFieldError returns the field's error message or "" when it has none.
// Repository failures are logged and reported as no error.
func (f *Form) GetFieldError(ctx context.Context, field string) string {
	if f.isDisposed() {
		return ""
	}
	msg, ok, err := f.repo.Get(ctx, f.id, field)
	if err != nil {
		f.logger.WarnContext(ctx, "failed to read field error", logger.Field(field), logger.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return msg
}

func (f *Form) HasFieldError(ctx context.Context, field string) bool {
	return f.GetFieldError(ctx, field) != ""
}

// ShouldShowError reports whether the field has an error and is either
// touched or part of a submit in progress.
func (f *Form) ShouldShowError(ctx context.Context, field string) bool {
	f.mu.Lock()
	_, touched := f.touched[field]
	visible := touched || f.submitting
	f.mu.Unlock()

	return visible && f.HasFieldError(ctx, field)
}

// GetAllErrors returns a copy of every recorded error, keyed by field
func (f *Form) GetAllErrors(ctx context.Context) map[string]string {
	if f.isDisposed() {
		return map[string]string{}
	}
	all, err := f.repo.All(ctx, f.id)
	if err != nil {
		f.logger.WarnContext(ctx, "failed to read form errors", logger.Error(err))
		return map[string]string{}
	}
	if all == nil {
		return map[string]string{}
	}
	return all
}

func (f *Form) HasErrors(ctx context.Context) bool {
	return len(f.GetAllErrors(ctx)) > 0
}

func (f *Form) IsFormValid(ctx context.Context) bool {
	return !f.HasErrors(ctx)
}

// Dispose tears the form down: pending validations are cancelled, late timer
// callbacks become no-ops and the form's bucket is removed from the repository.
// The form id becomes available again in the owning Manager. Idempotent.
func (f *Form) Dispose(ctx context.Context) error {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return nil
	}
	f.resetLocked()
	f.disposed = true
	release := f.release
	f.mu.Unlock()

	err := f.repo.Clear(ctx, f.id)
	if release != nil {
		release()
	}
	if err != nil {
		f.logger.WarnContext(ctx, "failed to clear form errors on dispose", logger.Error(err))
		return errors.Join(ErrRepository, err)
	}
	f.logger.DebugContext(ctx, "form disposed")
	return nil
}

func (f *Form) isDisposed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.disposed
}

// Package form binds field validators to the interaction lifecycle of a form:
// change, blur and submit. Errors are kept in an ErrorRepository under the
// form id so that several components can read them, while touched fields,
// debounce timers and the submitting flag stay local to each Form.
//
// # Usage
//
//	repo := form.NewMemoryRepository()
//	mgr, _ := form.NewManager(repo, form.WithManagerLogger(log))
//
//	f, err := mgr.Open("signup", form.WithValidateOnChange(true))
//	if err != nil {
//	    return err
//	}
//	defer f.Dispose(ctx)
//
//	_ = f.HandleFieldBlur(ctx, "email", "bad", validator.ValidateEmail, nil)
//	if f.ShouldShowError(ctx, "email") {
//	    fmt.Println(f.GetFieldError(ctx, "email"))
//	}
//
//	ok, err := f.HandleSubmit(ctx, fields, validators, func(ctx context.Context, fields map[string]any) error {
//	    return api.CreateAccount(ctx, fields)
//	})
//
// # Validation timing
//
// Change events validate after the debounce window, and only once the field
// is touched or a submit is running. A new change for the same field replaces
// the pending validation. Blur and submit validate immediately and cancel any
// pending validation of the field, so the most recent request always decides
// the stored error.
//
// # Teardown
//
// Dispose stops every timer, drops the form's bucket from the repository and
// frees the id in the Manager. Callbacks that were already running when
// Dispose was called do not write anything afterwards.
//
// # Storage
//
// MemoryRepository keeps buckets in process memory. RedisRepository keeps one
// Redis hash per form through redis.HashStorage, which lets several processes
// share error state and expires abandoned buckets.
package form

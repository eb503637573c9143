package form_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNewManager(t *testing.T) {
	t.Parallel()

	_, err := form.NewManager(nil)
	assert.ErrorIs(t, err, form.ErrNilRepository)

	mgr, err := form.NewManager(form.NewMemoryRepository())
	require.NoError(t, err)
	assert.Empty(t, mgr.FormIDs())
}

func TestManagerOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects a live id", func(t *testing.T) {
		t.Parallel()
		mgr, err := form.NewManager(form.NewMemoryRepository())
		require.NoError(t, err)

		f, err := mgr.Open("signup")
		require.NoError(t, err)

		_, err = mgr.Open("signup")
		assert.ErrorIs(t, err, form.ErrFormIDInUse)

		got, ok := mgr.Get("signup")
		assert.True(t, ok)
		assert.Same(t, f, got)
	})

	t.Run("dispose frees the id", func(t *testing.T) {
		t.Parallel()
		repo := form.NewMemoryRepository()
		mgr, err := form.NewManager(repo)
		require.NoError(t, err)

		first, err := mgr.Open("signup")
		require.NoError(t, err)
		require.NoError(t, first.HandleFieldBlur(ctx, "email", "bad", validator.ValidateEmail, nil))
		require.NoError(t, first.Dispose(ctx))

		_, ok := mgr.Get("signup")
		assert.False(t, ok)

		second, err := mgr.Open("signup")
		require.NoError(t, err)
		assert.False(t, second.HasErrors(ctx), "a reopened id starts with an empty bucket")

		require.NoError(t, first.Dispose(ctx))
		_, ok = mgr.Get("signup")
		assert.True(t, ok, "disposing a stale handle must not release the new owner")
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		mgr, err := form.NewManager(form.NewMemoryRepository())
		require.NoError(t, err)

		_, err = mgr.Open("")
		assert.ErrorIs(t, err, form.ErrEmptyFormID)
	})

	t.Run("defaults apply before per-form options", func(t *testing.T) {
		t.Parallel()
		mgr, err := form.NewManager(form.NewMemoryRepository(),
			form.WithDefaults(form.WithValidateOnChange(true), form.WithDebounce(time.Hour)),
		)
		require.NoError(t, err)

		f, err := mgr.Open("f", form.WithDebounce(0))
		require.NoError(t, err)
		f.TouchField("email")

		require.NoError(t, f.HandleFieldChange(ctx, "email", "bad", validator.ValidateEmail, nil))
		assert.True(t, f.HasFieldError(ctx, "email"), "per-form zero debounce validates synchronously")
	})
}

func TestManagerLogger(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	mgr, err := form.NewManager(form.NewMemoryRepository(), form.WithManagerLogger(log))
	require.NoError(t, err)

	f, err := mgr.Open("signup", form.WithDebounce(0))
	require.NoError(t, err)
	_, err = f.ValidateFormFields(ctx, map[string]any{"email": "x"},
		map[string]validator.FieldValidator{"email": validator.ValidateEmail})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"form_id":"signup"`)
	assert.Contains(t, out, `"component":"form"`)
	assert.Contains(t, out, "form validated")
}

func TestManagerClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := form.NewMemoryRepository()
	mgr, err := form.NewManager(repo)
	require.NoError(t, err)

	for _, id := range []string{"signup", "login", form.NewFormID()} {
		f, err := mgr.Open(id)
		require.NoError(t, err)
		require.NoError(t, f.HandleFieldBlur(ctx, "email", "", validator.ValidateEmail, nil))
	}
	require.Len(t, mgr.FormIDs(), 3)
	require.Equal(t, 3, repo.Len())

	require.NoError(t, mgr.Close(ctx))
	assert.Empty(t, mgr.FormIDs())
	assert.Zero(t, repo.Len())
}

func TestNewFormID(t *testing.T) {
	t.Parallel()

	a, b := form.NewFormID(), form.NewFormID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

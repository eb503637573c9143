package form_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestMemoryRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("set get delete", func(t *testing.T) {
		t.Parallel()
		repo := form.NewMemoryRepository()

		require.NoError(t, repo.Set(ctx, "signup", "email", "Email is required"))

		msg, ok, err := repo.Get(ctx, "signup", "email")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Email is required", msg)

		require.NoError(t, repo.Delete(ctx, "signup", "email"))
		_, ok, err = repo.Get(ctx, "signup", "email")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, repo.Len(), "empty buckets are dropped")
	})

	t.Run("buckets are isolated", func(t *testing.T) {
		t.Parallel()
		repo := form.NewMemoryRepository()

		require.NoError(t, repo.Set(ctx, "signup", "email", "a"))
		require.NoError(t, repo.Set(ctx, "login", "email", "b"))
		require.NoError(t, repo.Clear(ctx, "signup"))

		all, err := repo.All(ctx, "signup")
		require.NoError(t, err)
		assert.Empty(t, all)

		msg, ok, err := repo.Get(ctx, "login", "email")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "b", msg)
	})

	t.Run("all returns a copy", func(t *testing.T) {
		t.Parallel()
		repo := form.NewMemoryRepository()
		require.NoError(t, repo.Set(ctx, "f", "a", "x"))

		all, err := repo.All(ctx, "f")
		require.NoError(t, err)
		all["a"] = "mutated"

		msg, _, _ := repo.Get(ctx, "f", "a")
		assert.Equal(t, "x", msg)
	})

	t.Run("missing entries", func(t *testing.T) {
		t.Parallel()
		repo := form.NewMemoryRepository()

		assert.NoError(t, repo.Delete(ctx, "nope", "a"))
		assert.NoError(t, repo.Clear(ctx, "nope"))
		assert.ErrorIs(t, repo.Set(ctx, "", "a", "x"), form.ErrEmptyFormID)
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		repo := form.NewMemoryRepository()

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				field := string(rune('a' + i%26))
				_ = repo.Set(ctx, "f", field, "err")
				_, _, _ = repo.Get(ctx, "f", field)
				_, _ = repo.All(ctx, "f")
				if i%3 == 0 {
					_ = repo.Delete(ctx, "f", field)
				}
			}(i)
		}
		wg.Wait()

		_, err := repo.All(ctx, "f")
		assert.NoError(t, err)
	})
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobpost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_GetPut(t *testing.T) {
	t.Parallel()

	t.Run("miss on unknown key", func(t *testing.T) {
		t.Parallel()

		c := NewLRU(10, 0)

		job, ok, err := c.Get(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, job)
	})

	t.Run("stores and returns a copy", func(t *testing.T) {
		t.Parallel()

		c := NewLRU(10, 0)
		job := jobpost.NewJob()
		job.Position = "Backend Engineer"

		require.NoError(t, c.Put(context.Background(), "k", job))

		got, ok, err := c.Get(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Backend Engineer", got.Position)

		// Mutations on the returned copy must not leak back into the cache.
		got.Position = "changed"
		again, ok, err := c.Get(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Backend Engineer", again.Position)
	})

	t.Run("rejects nil job", func(t *testing.T) {
		t.Parallel()

		c := NewLRU(10, 0)

		err := c.Put(context.Background(), "k", nil)
		require.Error(t, err)
		assert.Equal(t, jobpost.EINVALID, jobpost.ErrorCode(err))
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		t.Parallel()

		c := NewLRU(10, 0)
		first := jobpost.NewJob()
		first.Company = "Acme"
		second := jobpost.NewJob()
		second.Company = "BrightLabs"

		require.NoError(t, c.Put(context.Background(), "k", first))
		require.NoError(t, c.Put(context.Background(), "k", second))

		got, ok, err := c.Get(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "BrightLabs", got.Company)
		assert.Equal(t, 1, c.Len())
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("evicts the least recently used entry", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := NewLRU(2, 0)
		require.NoError(t, c.Put(ctx, "a", jobpost.NewJob()))
		require.NoError(t, c.Put(ctx, "b", jobpost.NewJob()))

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok, err := c.Get(ctx, "a")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, c.Put(ctx, "c", jobpost.NewJob()))

		_, ok, err = c.Get(ctx, "b")
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = c.Get(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, c.Len())
	})
}

func TestLRU_TTL(t *testing.T) {
	t.Parallel()

	t.Run("expired entries count as misses", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		now := time.Now()
		c := NewLRU(10, time.Hour)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Put(ctx, "k", jobpost.NewJob()))

		now = now.Add(30 * time.Minute)
		_, ok, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)

		now = now.Add(time.Hour)
		_, ok, err = c.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("zero ttl disables expiry", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		now := time.Now()
		c := NewLRU(10, 0)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Put(ctx, "k", jobpost.NewJob()))

		now = now.Add(24 * time.Hour)
		_, ok, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestKey(t *testing.T) {
	t.Parallel()

	t.Run("deterministic for identical requests", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Key("content", true), Key("content", true))
	})

	t.Run("differs by content-type flag", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, Key("content", true), Key("content", false))
	})

	t.Run("differs by content", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, Key("one", false), Key("two", false))
	})
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCompetitorStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("create initializes the version and an empty vote set", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()

		competitor := &Competitor{ID: "C1", Name: "Ana", Work: "Fineline"}
		require.NoError(t, store.Create(ctx, competitor))

		stored, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.Version)
		assert.NotNil(t, stored.Votes)
		assert.Empty(t, stored.Votes)
	})

	t.Run("create rejects duplicate ids", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()
		require.NoError(t, store.Create(ctx, &Competitor{ID: "C1"}))

		err := store.Create(ctx, &Competitor{ID: "C1"})

		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("get returns not found for unknown id", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()

		_, err := store.Get(ctx, "missing")

		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get returns a copy that is safe to mutate", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()
		require.NoError(t, store.Create(ctx, &Competitor{ID: "C1", Votes: []VoteEntry{{JudgeID: "J1", Anatomy: 5}}}))

		first, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		first.Votes[0].Anatomy = 9

		second, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, 5, second.Votes[0].Anatomy)
	})

	t.Run("update succeeds on the read version and bumps it", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()
		require.NoError(t, store.Create(ctx, &Competitor{ID: "C1"}))

		competitor, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		competitor.TotalScore = 42

		require.NoError(t, store.Update(ctx, competitor))
		assert.Equal(t, int64(2), competitor.Version)

		stored, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, 42, stored.TotalScore)
	})

	t.Run("update on a stale version returns conflict", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()
		require.NoError(t, store.Create(ctx, &Competitor{ID: "C1"}))

		first, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		second, err := store.Get(ctx, "C1")
		require.NoError(t, err)

		first.TotalScore = 10
		require.NoError(t, store.Update(ctx, first))

		second.TotalScore = 20
		err = store.Update(ctx, second)
		require.ErrorIs(t, err, ErrConflict)

		stored, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, 10, stored.TotalScore)
	})

	t.Run("update on a deleted competitor returns not found", func(t *testing.T) {
		store := NewMemoryCompetitorStorage()
		require.NoError(t, store.Create(ctx, &Competitor{ID: "C1"}))
		competitor, err := store.Get(ctx, "C1")
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, "C1"))

		err = store.Update(ctx, competitor)

		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryQRCodeStorage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 13, 18, 0, 0, 0, time.UTC)

	freshCode := func(code string) *QRCode {
		return &QRCode{
			Code:          code,
			CreatedAt:     now,
			ExpiresAt:     now.Add(72 * time.Hour),
			ValidityHours: 72,
		}
	}

	t.Run("consume flips the code exactly once", func(t *testing.T) {
		store := NewMemoryQRCodeStorage()
		require.NoError(t, store.Put(ctx, freshCode("qr-1")))

		require.NoError(t, store.Consume(ctx, "qr-1", now.Add(time.Hour)))

		stored, err := store.Get(ctx, "qr-1")
		require.NoError(t, err)
		assert.True(t, stored.IsUsed)
		require.NotNil(t, stored.UsedAt)
		assert.Equal(t, now.Add(time.Hour), *stored.UsedAt)

		err = store.Consume(ctx, "qr-1", now.Add(2*time.Hour))
		require.ErrorIs(t, err, ErrAlreadyUsed)
	})

	t.Run("consume past expiry is rejected", func(t *testing.T) {
		store := NewMemoryQRCodeStorage()
		require.NoError(t, store.Put(ctx, freshCode("qr-2")))

		err := store.Consume(ctx, "qr-2", now.Add(73*time.Hour))

		require.ErrorIs(t, err, ErrExpired)
		stored, getErr := store.Get(ctx, "qr-2")
		require.NoError(t, getErr)
		assert.False(t, stored.IsUsed)
	})

	t.Run("consume of an unknown code returns not found", func(t *testing.T) {
		store := NewMemoryQRCodeStorage()

		err := store.Consume(ctx, "missing", now)

		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put rejects duplicate codes", func(t *testing.T) {
		store := NewMemoryQRCodeStorage()
		require.NoError(t, store.Put(ctx, freshCode("qr-3")))

		err := store.Put(ctx, freshCode("qr-3"))

		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestQRCodeStatus(t *testing.T) {
	now := time.Date(2025, 6, 13, 18, 0, 0, 0, time.UTC)
	usedAt := now.Add(time.Hour)

	t.Run("used wins over expiry", func(t *testing.T) {
		qr := &QRCode{ExpiresAt: now.Add(-time.Hour), IsUsed: true, UsedAt: &usedAt}
		assert.Equal(t, QRCodeStatusUsed, qr.Status(now))
	})

	t.Run("expired once the clock passes expiresAt", func(t *testing.T) {
		qr := &QRCode{ExpiresAt: now.Add(-time.Second)}
		assert.Equal(t, QRCodeStatusExpired, qr.Status(now))
	})

	t.Run("valid until then", func(t *testing.T) {
		qr := &QRCode{ExpiresAt: now.Add(time.Second)}
		assert.Equal(t, QRCodeStatusValid, qr.Status(now))
	})
}

package qrauth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQRService(t *testing.T) (*Service, *storage.MemoryQRCodeStorage) {
	t.Helper()
	logging.Log = logrus.New()
	qrCodes := storage.NewMemoryQRCodeStorage()
	return NewService(qrCodes), qrCodes
}

func TestIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a code with the requested validity window", func(t *testing.T) {
		service, _ := setupQRService(t)
		issuedAt := time.Date(2025, 6, 13, 18, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return issuedAt }

		qrCode, err := service.Issue(ctx, DefaultValidityHours)

		require.NoError(t, err)
		assert.Len(t, qrCode.Code, 36)
		assert.Equal(t, issuedAt, qrCode.CreatedAt)
		assert.Equal(t, issuedAt.Add(72*time.Hour), qrCode.ExpiresAt)
		assert.False(t, qrCode.IsUsed)
		assert.Nil(t, qrCode.UsedAt)
	})

	t.Run("issued codes are unique", func(t *testing.T) {
		service, _ := setupQRService(t)

		first, err := service.Issue(ctx, 1)
		require.NoError(t, err)
		second, err := service.Issue(ctx, 1)
		require.NoError(t, err)

		assert.NotEqual(t, first.Code, second.Code)
	})

	t.Run("rejects non-positive validity", func(t *testing.T) {
		service, _ := setupQRService(t)

		var validationErr *ValidationError
		_, err := service.Issue(ctx, 0)
		require.ErrorAs(t, err, &validationErr)

		_, err = service.Issue(ctx, -5)
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("derived status of a fresh code is valid", func(t *testing.T) {
		service, _ := setupQRService(t)

		qrCode, err := service.Issue(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, storage.QRCodeStatusValid, qrCode.Status(time.Now().UTC()))
	})
}

func TestValidateAndConsume(t *testing.T) {
	ctx := context.Background()

	t.Run("a valid code is consumed exactly once", func(t *testing.T) {
		service, qrCodes := setupQRService(t)
		issued, err := service.Issue(ctx, 1)
		require.NoError(t, err)

		consumed, err := service.ValidateAndConsume(ctx, issued.Code)
		require.NoError(t, err)
		assert.True(t, consumed.IsUsed)
		require.NotNil(t, consumed.UsedAt)
		assert.Equal(t, storage.QRCodeStatusUsed, consumed.Status(time.Now().UTC()))

		stored, err := qrCodes.Get(ctx, issued.Code)
		require.NoError(t, err)
		assert.True(t, stored.IsUsed)
	})

	t.Run("a second validation reports already used with the original time", func(t *testing.T) {
		service, _ := setupQRService(t)
		issued, err := service.Issue(ctx, 1)
		require.NoError(t, err)

		first, err := service.ValidateAndConsume(ctx, issued.Code)
		require.NoError(t, err)

		_, err = service.ValidateAndConsume(ctx, issued.Code)
		var usedErr *AlreadyUsedError
		require.ErrorAs(t, err, &usedErr)
		assert.Equal(t, first.UsedAt.Unix(), usedErr.UsedAt.Unix())
	})

	t.Run("an expired code is rejected and stays unused", func(t *testing.T) {
		service, qrCodes := setupQRService(t)
		issuedAt := time.Date(2025, 6, 13, 18, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return issuedAt }
		issued, err := service.Issue(ctx, 0.001)
		require.NoError(t, err)

		service.now = func() time.Time { return issuedAt.Add(time.Minute) }
		_, err = service.ValidateAndConsume(ctx, issued.Code)

		var expiredErr *ExpiredError
		require.ErrorAs(t, err, &expiredErr)
		assert.Equal(t, issued.ExpiresAt.Unix(), expiredErr.ExpiresAt.Unix())

		stored, err := qrCodes.Get(ctx, issued.Code)
		require.NoError(t, err)
		assert.False(t, stored.IsUsed)
		assert.Equal(t, storage.QRCodeStatusExpired, stored.Status(service.now()))
	})

	t.Run("72h code validates at one hour and conflicts at two", func(t *testing.T) {
		service, _ := setupQRService(t)
		t0 := time.Date(2025, 6, 13, 18, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return t0 }
		issued, err := service.Issue(ctx, 72)
		require.NoError(t, err)

		service.now = func() time.Time { return t0.Add(time.Hour) }
		consumed, err := service.ValidateAndConsume(ctx, issued.Code)
		require.NoError(t, err)
		assert.Equal(t, storage.QRCodeStatusUsed, consumed.Status(service.now()))

		service.now = func() time.Time { return t0.Add(2 * time.Hour) }
		_, err = service.ValidateAndConsume(ctx, issued.Code)
		var usedErr *AlreadyUsedError
		require.ErrorAs(t, err, &usedErr)
		assert.Equal(t, t0.Add(time.Hour).Unix(), usedErr.UsedAt.Unix())
	})

	t.Run("unknown code returns not found", func(t *testing.T) {
		service, _ := setupQRService(t)

		_, err := service.ValidateAndConsume(ctx, "no-such-code")

		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("empty code is a validation error", func(t *testing.T) {
		service, _ := setupQRService(t)

		var validationErr *ValidationError
		_, err := service.ValidateAndConsume(ctx, "")
		require.ErrorAs(t, err, &validationErr)
	})
}

// TestValidateAndConsumeConcurrent races many validators on one code: exactly
// one wins, everyone else observes already-used.
func TestValidateAndConsumeConcurrent(t *testing.T) {
	ctx := context.Background()
	service, _ := setupQRService(t)
	issued, err := service.Issue(ctx, 1)
	require.NoError(t, err)

	numValidators := 20
	var successCount, usedCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < numValidators; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ValidateAndConsume(ctx, issued.Code)
			if err == nil {
				successCount.Add(1)
				return
			}
			var usedErr *AlreadyUsedError
			if assert.ErrorAs(t, err, &usedErr) {
				usedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successCount.Load())
	assert.Equal(t, int32(numValidators-1), usedCount.Load())
}

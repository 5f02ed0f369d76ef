package qrauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/storage"
)

// DefaultValidityHours is the issue policy applied when a caller does not ask
// for a specific validity window.
const DefaultValidityHours = 72.0

// AlreadyUsedError reports a consume attempt on a code that was already
// redeemed. UsedAt is zero when the original redemption time is unavailable.
type AlreadyUsedError struct {
	UsedAt time.Time
}

func (e *AlreadyUsedError) Error() string {
	if e.UsedAt.IsZero() {
		return "qr code already used"
	}
	return fmt.Sprintf("qr code already used at %s", e.UsedAt.Format(time.RFC3339))
}

// ExpiredError reports a consume attempt past the code's expiry.
type ExpiredError struct {
	ExpiresAt time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("qr code expired at %s", e.ExpiresAt.Format(time.RFC3339))
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Service issues single-use QR access codes and redeems them exactly once.
// The clock is injected so expiry behavior is testable without sleeping.
type Service struct {
	qrCodes storage.QRCodeStorage
	now     func() time.Time
}

func NewService(qrCodes storage.QRCodeStorage) *Service {
	return &Service{
		qrCodes: qrCodes,
		now:     time.Now,
	}
}

// Issue creates a fresh code valid for validityHours from now. The code is a
// random 128-bit identifier, so collisions are negligible.
func (s *Service) Issue(ctx context.Context, validityHours float64) (*storage.QRCode, error) {
	if validityHours <= 0 {
		return nil, &ValidationError{Reason: "validityHours must be a positive number"}
	}

	now := s.now().UTC()
	qrCode := &storage.QRCode{
		Code:          uuid.NewString(),
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Duration(validityHours * float64(time.Hour))),
		IsUsed:        false,
		ValidityHours: validityHours,
	}

	if err := s.qrCodes.Put(ctx, qrCode); err != nil {
		return nil, err
	}
	logging.Log.Infof("QR: issued code %s, expires %s", qrCode.Code, qrCode.ExpiresAt.Format(time.RFC3339))
	return qrCode, nil
}

// ValidateAndConsume transitions a code from valid to used, exactly once. The
// pre-checks give precise errors; the conditional consume is what actually
// guards against two validators racing past them.
func (s *Service) ValidateAndConsume(ctx context.Context, code string) (*storage.QRCode, error) {
	if code == "" {
		return nil, &ValidationError{Reason: "code is required"}
	}

	qrCode, err := s.qrCodes.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if qrCode.IsUsed {
		usedAt := time.Time{}
		if qrCode.UsedAt != nil {
			usedAt = *qrCode.UsedAt
		}
		return nil, &AlreadyUsedError{UsedAt: usedAt}
	}
	now := s.now().UTC()
	if now.After(qrCode.ExpiresAt) {
		return nil, &ExpiredError{ExpiresAt: qrCode.ExpiresAt}
	}

	if err := s.qrCodes.Consume(ctx, code, now); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyUsed):
			// Another validator won the race between our read and write.
			logging.Log.Warnf("QR: code %s consumed concurrently", code)
			if fresh, getErr := s.qrCodes.Get(ctx, code); getErr == nil && fresh.UsedAt != nil {
				return nil, &AlreadyUsedError{UsedAt: *fresh.UsedAt}
			}
			return nil, &AlreadyUsedError{}
		case errors.Is(err, storage.ErrExpired):
			return nil, &ExpiredError{ExpiresAt: qrCode.ExpiresAt}
		default:
			return nil, err
		}
	}

	qrCode.IsUsed = true
	qrCode.UsedAt = &now
	logging.Log.Infof("QR: code %s validated and consumed", code)
	return qrCode, nil
}

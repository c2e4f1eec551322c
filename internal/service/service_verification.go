package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

// verificationService is the concrete implementation of VerificationService.
// A pending verification token acts as its own cooldown marker: until the
// token expires, no new mail may be sent.
type verificationService struct {
	verificationTokenRepository store.VerificationTokenRepository

	// now is stubbed in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

// NewVerificationService constructs a VerificationService backed by the given
// token repository.
func NewVerificationService(verificationTokenRepository store.VerificationTokenRepository, logger *logger.Logger) VerificationService {
	return &verificationService{
		verificationTokenRepository: verificationTokenRepository,
		now:                         time.Now,
		logger:                      logger,
	}
}

// ResendCooldown reports the remaining cooldown before another verification
// mail may be sent to the user.
//
// The latest token row decides: if its ExpiresAt is still in the future, the
// remaining duration is ExpiresAt − now. A user with no token rows, or whose
// latest token has already expired, has no active cooldown and gets zero.
func (s *verificationService) ResendCooldown(ctx context.Context, userID int64) (time.Duration, error) {
	log := logger.FromContext(ctx)

	token, err := s.verificationTokenRepository.FindLatestTokenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoVerificationTokenWasFound) {
			return 0, nil
		}

		log.Err(err).Int64("userId", userID).Msg("verification token search failed")
		return 0, fmt.Errorf("verification token search failed: %w", err)
	}

	now := s.now()
	if token.ExpiresAt.After(now) {
		return token.ExpiresAt.Sub(now), nil
	}

	return 0, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// verificationTokenRepository is the PostgreSQL-backed implementation of
// [VerificationTokenRepository]. It reads the "verification_tokens" table.
type verificationTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVerificationTokenRepository constructs a [VerificationTokenRepository]
// backed by the provided database connection and logger.
func NewVerificationTokenRepository(db *DB, logger *logger.Logger) VerificationTokenRepository {
	logger.Debug().Msg("creating verification token repository")
	return &verificationTokenRepository{
		db:     db,
		logger: logger,
	}
}

// FindLatestTokenByUserID retrieves the most recently issued verification
// token for the given user.
//
// Error handling:
//   - No rows for the user → [ErrNoVerificationTokenWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *verificationTokenRepository) FindLatestTokenByUserID(ctx context.Context, userID int64) (models.VerificationToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindLatestTokenByUserIDQuery(ctx, userID)
	if err != nil {
		return models.VerificationToken{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// find latest token by user id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*verificationTokenRepository.FindLatestTokenByUserID").Msg("error: row is nil")

		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*verificationTokenRepository.FindLatestTokenByUserID").Msg("transient database error")
		}
		return models.VerificationToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found token from db
	var token models.VerificationToken
	err = row.Scan(
		&token.TokenID,
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VerificationToken{}, ErrNoVerificationTokenWasFound
		}

		log.Err(err).Str("func", "*verificationTokenRepository.FindLatestTokenByUserID").Msg("error: scanning error")
		return models.VerificationToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

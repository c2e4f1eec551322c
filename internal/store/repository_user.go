package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByGithubID retrieves the user record whose GithubID matches the
// given GitHub account ID.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByGithubID(ctx context.Context, githubID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByGithubIDQuery(ctx, githubID)
	if err != nil {
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// find user by github id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByGithubID").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			if r.db.errorClassificator.Classify(err) == Retryable {
				log.Warn().Str("func", "*userRepository.FindUserByGithubID").Msg("transient database error")
			}
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan found user from db
	var foundUser models.User
	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByGithubID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// FindUserByEmail retrieves the user record whose Email matches the given
// address. The caller is responsible for normalising case; the lookup itself
// is an exact match.
//
// Error handling:
//   - Empty email → [ErrInvalidDataProvided], no SQL is issued.
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	query, args, err := buildFindUserByEmailQuery(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			if r.db.errorClassificator.Classify(err) == Retryable {
				log.Warn().Str("func", "*userRepository.FindUserByEmail").Msg("transient database error")
			}
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan found user from db
	var foundUser models.User
	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// scanUser scans a single users-table row in [userColumns] order.
func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.GithubID,
		&user.Login,
		&user.Name,
		&user.Email,
		&user.IsVerified,
		&user.CreatedAt,
	)
}

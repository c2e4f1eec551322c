package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns lists the persisted columns of the "users" table in scan order.
var userColumns = []string{
	"user_id",
	"github_id",
	"login",
	"name",
	"email",
	"is_verified",
	"created_at",
}

// verificationTokenColumns lists the persisted columns of the
// "verification_tokens" table in scan order.
var verificationTokenColumns = []string{
	"token_id",
	"user_id",
	"token",
	"expires_at",
	"created_at",
}

func buildFindUserByGithubIDQuery(ctx context.Context, githubID int64) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"github_id": githubID}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildFindUserByGithubIDQuery").Msg("error building sql query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildFindUserByEmailQuery").Msg("error building sql query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindLatestTokenByUserIDQuery selects the most recently issued
// verification token for a user. Only the newest row matters for cooldown
// checks, hence the ORDER BY + LIMIT 1.
func buildFindLatestTokenByUserIDQuery(ctx context.Context, userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(verificationTokenColumns...).
		From("verification_tokens").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildFindLatestTokenByUserIDQuery").Msg("error building sql query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

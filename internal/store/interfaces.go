package store

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

type UserRepository interface {
	FindUserByGithubID(ctx context.Context, githubID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type VerificationTokenRepository interface {
	FindLatestTokenByUserID(ctx context.Context, userID int64) (models.VerificationToken, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

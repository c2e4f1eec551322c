package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gate-keeper/models"
)

type AuthService interface {
	// Authenticate verifies a raw JWT string and resolves it to the user
	// account referenced by its "id" claim.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByGithubID(ctx context.Context, githubID int64) (models.User, error)
}

type VerificationService interface {
	// ResendCooldown reports how long the user must still wait before another
	// verification mail may be sent. A zero duration means no cooldown is
	// active.
	ResendCooldown(ctx context.Context, userID int64) (time.Duration, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

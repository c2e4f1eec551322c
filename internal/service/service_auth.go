package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies JWT tokens and resolves them to user accounts using a
// UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to verify JWT token signatures.
	tokenSignKey string

	// tokenIssuer is the "iss" claim expected in every accepted JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// Authenticate validates a raw JWT string and loads the user it refers to.
//
// The token signature and issuer are checked first; any validation failure
// (expired, wrong issuer, malformed, missing "id" claim) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors. A token whose "id" claim matches no user account yields a
// wrapped store.ErrNoUserWasFound.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token validation failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	// a verified token without an "id" claim cannot name a user
	if token.GithubID == 0 {
		log.Debug().Str("func", "*authService.Authenticate").Msg("token carries no id claim")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByGithubID(ctx, token.GithubID)
	if err != nil {
		log.Err(err).Int64("githubId", token.GithubID).Msg("user search by github id failed")
		return models.User{}, fmt.Errorf("user search by github id failed: %w", err)
	}

	return foundUser, nil
}

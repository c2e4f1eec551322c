package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService backed by the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// FindUserByEmail looks up a user account by email address.
//
// The address is lower-cased before the lookup so that the match is
// case-insensitive regardless of how the client spelled it.
//
// Returns:
//   - ErrInvalidDataProvided if the email is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrNoUserWasFound).
func (s *userService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		log.Error().Str("func", "*userService.FindUserByEmail").Msg("invalid email provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return foundUser, nil
}

// FindUserByGithubID looks up a user account by GitHub account ID.
//
// Returns a wrapped storage error if the repository lookup fails (e.g. user
// not found, see store.ErrNoUserWasFound).
func (s *userService) FindUserByGithubID(ctx context.Context, githubID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByGithubID(ctx, githubID)
	if err != nil {
		log.Err(err).Int64("githubId", githubID).Msg("user search by github id failed")
		return models.User{}, fmt.Errorf("user search by github id failed: %w", err)
	}

	return foundUser, nil
}

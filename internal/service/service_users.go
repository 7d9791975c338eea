package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
)

// userService is the concrete implementation of UserService.
// It handles account registration, credential verification, and account
// administration using a UserRepository for persistence and bcrypt for
// password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks that registration and verification payloads carry
	// both username and password.
	validator validators.Validator

	// bcryptCost is the cost factor passed to bcrypt when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository and configured with the bcrypt cost from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// AddUser registers a new account.
//
// It validates that both Username and Password are non-empty, replaces the
// plaintext password with its bcrypt hash, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - validators.ErrCredentialsRequired if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameTaken).
func (s *userService) AddUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}
	user.Password = hash

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// VerifyUser authenticates an existing account.
//
// It looks up the account by username and compares the supplied plaintext
// password against the stored bcrypt hash.
//
// Returns nil on success or:
//   - validators.ErrCredentialsRequired if Username or Password is empty.
//   - ErrNotVerified if the username is unknown or the password does not
//     match. The two cases are deliberately indistinguishable.
//   - A wrapped storage error if the lookup itself fails; infrastructure
//     failures must not masquerade as a negative verification.
func (s *userService) VerifyUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return err
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrNotVerified
		}
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPasswordHash(foundUser.Password, user.Password) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return ErrNotVerified
	}

	return nil
}

// ListUsers returns every stored account.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// DeleteAllUsers removes every account.
func (s *userService) DeleteAllUsers(ctx context.Context) error {
	if err := s.userRepository.DeleteAllUsers(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("deleting all users failed")
		return fmt.Errorf("deleting all users failed: %w", err)
	}

	return nil
}

// DeleteUser removes the account with the given id and returns the deleted
// record. Returns a wrapped store.ErrUserNotFound if no such account exists.
func (s *userService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	deletedUser, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user deletion ended with error")
		return models.User{}, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return deletedUser, nil
}

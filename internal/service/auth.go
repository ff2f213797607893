package service

import (
	"errors"
	"fmt"

	"utmbot/internal/repository"
)

// ErrBanned is returned when an operation is attempted for a
// permanently blocked user.
var ErrBanned = errors.New("user is banned")

// BanReasonInvalidPassword marks bans issued for exhausting password
// attempts.
const BanReasonInvalidPassword = "invalid_password"

// AuthService handles password authorization and the permanent-ban
// policy. A user who fails the password maxAttempts times is banned
// forever; a ban is never reversed.
type AuthService struct {
	access      repository.AccessRepository
	botPassword string
	maxAttempts int
}

// NewAuthService creates a new auth service. maxAttempts of 1
// reproduces the ban-on-first-failure policy.
func NewAuthService(access repository.AccessRepository, botPassword string, maxAttempts int) *AuthService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &AuthService{
		access:      access,
		botPassword: botPassword,
		maxAttempts: maxAttempts,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.access.IsAuthorized(userID)
}

// IsBanned checks if user is banned
func (s *AuthService) IsBanned(userID int64) (bool, error) {
	return s.access.IsBanned(userID)
}

// Authorize grants access to a user. Banned users are refused with
// ErrBanned regardless of the password they supplied.
func (s *AuthService) Authorize(userID int64) error {
	banned, err := s.access.IsBanned(userID)
	if err != nil {
		return fmt.Errorf("check ban: %w", err)
	}
	if banned {
		return ErrBanned
	}

	if err := s.access.Authorize(userID); err != nil {
		return fmt.Errorf("authorize: %w", err)
	}

	return s.access.ResetAuthAttempts(userID)
}

// AttemptsRemaining reports how many password attempts the user has
// left before the permanent ban fires.
func (s *AuthService) AttemptsRemaining(userID int64) (int, error) {
	attempts, err := s.access.AuthAttempts(userID)
	if err != nil {
		return 0, fmt.Errorf("read attempts: %w", err)
	}

	remaining := s.maxAttempts - attempts
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// RegisterFailure counts a wrong password attempt. When the configured
// limit is reached the user is banned permanently and banned is true.
func (s *AuthService) RegisterFailure(userID int64) (banned bool, err error) {
	attempts, err := s.access.IncrementAuthAttempts(userID)
	if err != nil {
		return false, fmt.Errorf("count attempt: %w", err)
	}

	if attempts < s.maxAttempts {
		return false, nil
	}

	if err := s.access.Ban(userID, BanReasonInvalidPassword); err != nil {
		return false, fmt.Errorf("ban: %w", err)
	}
	if err := s.access.ResetAuthAttempts(userID); err != nil {
		return true, fmt.Errorf("reset attempts: %w", err)
	}

	return true, nil
}

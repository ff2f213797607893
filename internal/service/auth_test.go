package service

import (
	"testing"

	"utmbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		botPassword    string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			botPassword:    "secret123",
			inputPassword:  "secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			botPassword:    "secret123",
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			botPassword:    "secret123",
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAccessRepository)
			service := NewAuthService(mockRepo, tt.botPassword, 3)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAuthService_Authorize(t *testing.T) {
	mockRepo := new(testutil.MockAccessRepository)
	mockRepo.On("IsBanned", int64(123)).Return(false, nil)
	mockRepo.On("Authorize", int64(123)).Return(nil)
	mockRepo.On("ResetAuthAttempts", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, "password", 3)

	err := service.Authorize(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Authorize_BannedUserRefused(t *testing.T) {
	mockRepo := new(testutil.MockAccessRepository)
	mockRepo.On("IsBanned", int64(123)).Return(true, nil)

	service := NewAuthService(mockRepo, "password", 3)

	err := service.Authorize(123)

	assert.ErrorIs(t, err, ErrBanned)
	mockRepo.AssertNotCalled(t, "Authorize", int64(123))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterFailure(t *testing.T) {
	tests := []struct {
		name           string
		maxAttempts    int
		attemptsAfter  int
		expectedBanned bool
	}{
		{
			name:           "first failure below limit",
			maxAttempts:    3,
			attemptsAfter:  1,
			expectedBanned: false,
		},
		{
			name:           "failure reaching limit bans",
			maxAttempts:    3,
			attemptsAfter:  3,
			expectedBanned: true,
		},
		{
			name:           "ban on first failure when limit is 1",
			maxAttempts:    1,
			attemptsAfter:  1,
			expectedBanned: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAccessRepository)
			mockRepo.On("IncrementAuthAttempts", int64(123)).Return(tt.attemptsAfter, nil)
			if tt.expectedBanned {
				mockRepo.On("Ban", int64(123), BanReasonInvalidPassword).Return(nil)
				mockRepo.On("ResetAuthAttempts", int64(123)).Return(nil)
			}

			service := NewAuthService(mockRepo, "password", tt.maxAttempts)

			banned, err := service.RegisterFailure(123)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBanned, banned)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_AttemptsRemaining(t *testing.T) {
	tests := []struct {
		name        string
		maxAttempts int
		attempts    int
		expected    int
	}{
		{
			name:        "no failures yet",
			maxAttempts: 3,
			attempts:    0,
			expected:    3,
		},
		{
			name:        "two failures leave one",
			maxAttempts: 3,
			attempts:    2,
			expected:    1,
		},
		{
			name:        "counter past the limit clamps to zero",
			maxAttempts: 3,
			attempts:    5,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAccessRepository)
			mockRepo.On("AuthAttempts", int64(123)).Return(tt.attempts, nil)

			service := NewAuthService(mockRepo, "password", tt.maxAttempts)

			remaining, err := service.AttemptsRemaining(123)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, remaining)
		})
	}
}

func TestAuthService_BannedUserStaysUnauthorized(t *testing.T) {
	// ban(u) then authorize(u) must leave the user unauthorized:
	// Authorize refuses banned users and never reaches the repository.
	mockRepo := new(testutil.MockAccessRepository)
	mockRepo.On("IncrementAuthAttempts", int64(777)).Return(1, nil)
	mockRepo.On("Ban", int64(777), BanReasonInvalidPassword).Return(nil)
	mockRepo.On("ResetAuthAttempts", int64(777)).Return(nil)
	mockRepo.On("IsBanned", int64(777)).Return(true, nil)
	mockRepo.On("IsAuthorized", int64(777)).Return(false, nil)

	service := NewAuthService(mockRepo, "password", 1)

	banned, err := service.RegisterFailure(777)
	assert.NoError(t, err)
	assert.True(t, banned)

	err = service.Authorize(777)
	assert.ErrorIs(t, err, ErrBanned)

	authorized, err := service.IsAuthorized(777)
	assert.NoError(t, err)
	assert.False(t, authorized)

	mockRepo.AssertNotCalled(t, "Authorize", int64(777))
}

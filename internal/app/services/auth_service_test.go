package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/pkg/apperrors"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:       "JDoe",
		Password:       "password123",
		Email:          "jdoe@my.uni.edu",
		FirstName:      "John",
		LastName:       "Doe",
		Faculty:        "Science and Technology",
		Department:     "Computing",
		Programme:      "Computer Science",
		GraduatingYear: 2026,
	}
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, zerolog.Nop())

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "jdoe", user.Username, "username must be lowercased")
	assert.NotEqual(t, "password123", user.Password, "password must be stored as a digest")
	assert.Equal(t, models.DefaultPicture, user.Picture)
	assert.Empty(t, user.Biography)
	assert.Empty(t, user.FeaturedWorks)
	assert.NotZero(t, user.ID)
}

func TestRegister_KeepsSuppliedPicture(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, zerolog.Nop())

	req := validRegisterRequest()
	req.Picture = "https://img.example/me.png"

	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/me.png", user.Picture)
}

func TestRegister_DuplicateUsernameCaseInsensitive(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, zerolog.Nop())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.Username = "JDOE"
	dup.Email = "other@my.uni.edu"

	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), zerolog.Nop())

	tests := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		wantErr error
	}{
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }, apperrors.ErrInvalidPassword},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, apperrors.ErrInvalidEmail},
		{"bad username charset", func(r *dto.RegisterRequest) { r.Username = "j doe!" }, apperrors.ErrInvalidUsername},
		{"username too short", func(r *dto.RegisterRequest) { r.Username = "j" }, apperrors.ErrInvalidUsername},
		{"year too early", func(r *dto.RegisterRequest) { r.GraduatingYear = 1850 }, apperrors.ErrValidationFailed},
		{"year too late", func(r *dto.RegisterRequest) { r.GraduatingYear = 2200 }, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, zerolog.Nop())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "jdoe", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)

	// Login is case-insensitive on the username.
	user, err = svc.Login(context.Background(), "JDoe", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
}

func TestLogin_FailuresAreUniform(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, zerolog.Nop())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// Unknown user and wrong password must be indistinguishable.
	_, unknownErr := svc.Login(context.Background(), "nobody", "password123")
	_, wrongErr := svc.Login(context.Background(), "jdoe", "wrong password")

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), zerolog.Nop())

	_, err := svc.Login(context.Background(), "", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "jdoe", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

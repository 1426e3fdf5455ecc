package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/pkg/apperrors"
	"github.com/emre/unifolio/internal/pkg/auth"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9._\-]{2,64}$`)
)

// dummyDigest is compared against on the unknown-user login path so both
// failure paths do comparable work.
var dummyDigest, _ = auth.HashPassword("unifolio-dummy-credential")

// authService implements AuthService on top of the user store.
type authService struct {
	users  UserStore
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, logger zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

// validateEmail validates an email address
func (s *authService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if password meets requirements
func (s *authService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	return nil
}

// validateUsername checks the normalized username charset and length.
func (s *authService) validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("%w: username must be 2-64 characters of lowercase letters, digits, dot, dash or underscore", apperrors.ErrInvalidUsername)
	}
	return nil
}

// validateGraduatingYear keeps the year inside a sane range.
func (s *authService) validateGraduatingYear(year int) error {
	if year < 1900 || year > 2100 {
		return fmt.Errorf("%w: graduating year out of range", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates a new user from the registration form. The username is
// lowercased before any check so duplicates collide case-insensitively.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if err := s.validateUsername(username); err != nil {
		return nil, err
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.validateGraduatingYear(req.GraduatingYear); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	picture := req.Picture
	if picture == "" {
		picture = models.DefaultPicture
	}

	user := &models.User{
		Username:       username,
		Email:          req.Email,
		Password:       hashedPassword,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Faculty:        req.Faculty,
		Department:     req.Department,
		Programme:      req.Programme,
		GraduatingYear: req.GraduatingYear,
		Picture:        picture,
		Biography:      "",
		FeaturedWorks:  "",
		Facebook:       req.Facebook,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		LinkedIn:       req.LinkedIn,
	}

	// The unique constraint decides duplicates; no pre-check, so two
	// concurrent registrations cannot both pass.
	userID, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	user.ID = userID
	s.logger.Info().Str("username", username).Int64("userID", userID).Msg("User registered")

	return user, nil
}

// Login verifies credentials and returns the user. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Burn a comparison so the missing-user path costs the same as
			// a digest mismatch.
			auth.CheckPassword(dummyDigest, password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

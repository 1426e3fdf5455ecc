package services

import (
	"context"
	"strings"

	"github.com/emre/unifolio/internal/app/models"
)

// profileService implements ProfileService.
type profileService struct {
	users UserStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(users UserStore) ProfileService {
	return &profileService{users: users}
}

// GetOwnProfile returns the caller's own record.
func (s *profileService) GetOwnProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// GetPublicProfile looks up another user's profile by username.
func (s *profileService) GetPublicProfile(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
}

// UpdateBiography replaces the biography field and nothing else. The text is
// free-form; only the request body ceiling bounds it.
func (s *profileService) UpdateBiography(ctx context.Context, userID int64, biography string) error {
	return s.users.UpdateBiography(ctx, userID, biography)
}

// UpdateFeaturedWorks replaces the featured-works field and nothing else.
func (s *profileService) UpdateFeaturedWorks(ctx context.Context, userID int64, featuredWorks string) error {
	return s.users.UpdateFeaturedWorks(ctx, userID, featuredWorks)
}

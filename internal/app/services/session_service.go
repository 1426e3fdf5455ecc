package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/pkg/apperrors"
	"github.com/emre/unifolio/internal/pkg/auth"
)

// sessionService implements SessionService. Each login gets its own token;
// nothing limits how many live sessions one user may hold.
type sessionService struct {
	sessions SessionStore
	users    UserStore
	maxAge   time.Duration // 0 means sessions never expire
	logger   zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions SessionStore, users UserStore, maxAge time.Duration, logger zerolog.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		users:    users,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Start issues an opaque token for an authenticated user and persists the
// token-to-user mapping.
func (s *sessionService) Start(ctx context.Context, user *models.User) (string, error) {
	session := &models.Session{
		Token:     auth.NewSessionToken(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}

	if s.maxAge > 0 {
		expires := session.CreatedAt.Add(s.maxAge)
		session.ExpiresAt = &expires
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("Session started")
	return session.Token, nil
}

// Resolve maps a token back to a live user record, re-fetched from the user
// store rather than replayed from a snapshot. Missing, unknown and expired
// tokens all resolve to nil without error.
func (s *sessionService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if session.Expired(time.Now()) {
		if delErr := s.sessions.Delete(ctx, token); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("Failed to drop expired session")
		}
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Dangling session, the user row is gone.
			if delErr := s.sessions.Delete(ctx, token); delErr != nil {
				s.logger.Warn().Err(delErr).Msg("Failed to drop dangling session")
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// SweepExpired removes all sessions whose expiry has passed. Resolve drops
// expired sessions lazily as they are seen; the sweep catches abandoned ones
// that are never presented again.
func (s *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", err)
	}

	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("Swept expired sessions")
	}
	return removed, nil
}

// End destroys the session; a later Resolve of the same token yields nil.
func (s *sessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

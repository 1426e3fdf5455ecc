package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/pkg/apperrors"
	"github.com/emre/unifolio/internal/pkg/dberrors"
	"github.com/emre/unifolio/internal/pkg/logger"
)

// SessionRepository persists the session-token mapping. Backing the mapping
// with the database keeps concurrent insert/lookup/delete safety in the
// store and survives process restarts.
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new session row.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("token", "user_id", "created_at", "expires_at").
		Values(session.Token, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create session SQL")
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		// Tokens are random UUIDs; a collision means something is badly wrong.
		if dberrors.IsDuplicateKeyError(err) {
			logger.Warn().Str("token", session.Token).Msg("Attempted to create duplicate session token")
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Int64("userID", session.UserID).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetByToken retrieves a session by token value.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	sql, args, err := r.sb.Select("token", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get session SQL")
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session := &models.Session{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	return session, nil
}

// Delete removes a session row. Deleting an unknown token is not an error;
// signout must be idempotent.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete session SQL")
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing delete session query")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// DeleteExpired removes sessions whose expiry has passed. Called
// opportunistically; non-expiring sessions (NULL expires_at) are untouched.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build delete expired sessions query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting expired sessions")
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/pkg/apperrors"
	"github.com/emre/unifolio/internal/pkg/dberrors"
	"github.com/emre/unifolio/internal/pkg/logger"
)

// userColumns is the scan order shared by every user query.
var userColumns = []string{
	"id", "username", "email", "password", "first_name", "last_name",
	"faculty", "department", "programme", "graduating_year", "picture",
	"biography", "featured_works", "sm_facebook", "sm_twitter",
	"sm_instagram", "sm_linkedin", "created_at", "updated_at",
}

// UserFilter selects users by exact equality on a single directory field.
// Empty fields are ignored; the zero value matches all users.
type UserFilter struct {
	Faculty    string
	Department string
	Programme  string
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.Faculty, &u.Department, &u.Programme, &u.GraduatingYear, &u.Picture,
		&u.Biography, &u.FeaturedWorks, &u.Facebook, &u.Twitter,
		&u.Instagram, &u.LinkedIn, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user and returns its assigned ID. Usernames are
// expected to be normalized by the caller; the unique constraint is the
// final arbiter for duplicates.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "email", "password", "first_name", "last_name",
			"faculty", "department", "programme", "graduating_year", "picture",
			"biography", "featured_works", "sm_facebook", "sm_twitter",
			"sm_instagram", "sm_linkedin").
		Values(user.Username, user.Email, user.Password, user.FirstName, user.LastName,
			user.Faculty, user.Department, user.Programme, user.GraduatingYear, user.Picture,
			user.Biography, user.FeaturedWorks, user.Facebook, user.Twitter,
			user.Instagram, user.LinkedIn).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByUsername retrieves a user by its normalized username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by username SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// List retrieves users matching the filter, ordered by username for stable
// output. Filters are exact-match equality on the stored free-text values.
func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]*models.User, error) {
	builder := r.sb.Select(userColumns...).
		From("users").
		OrderBy("username ASC")

	if filter.Faculty != "" {
		builder = builder.Where(squirrel.Eq{"faculty": filter.Faculty})
	}
	if filter.Department != "" {
		builder = builder.Where(squirrel.Eq{"department": filter.Department})
	}
	if filter.Programme != "" {
		builder = builder.Where(squirrel.Eq{"programme": filter.Programme})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user row during list")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// UpdateBiography replaces the biography column for one user and nothing else.
func (r *UserRepository) UpdateBiography(ctx context.Context, userID int64, biography string) error {
	return r.updateColumn(ctx, userID, "biography", biography)
}

// UpdateFeaturedWorks replaces the featured_works column for one user and nothing else.
func (r *UserRepository) UpdateFeaturedWorks(ctx context.Context, userID int64, featuredWorks string) error {
	return r.updateColumn(ctx, userID, "featured_works", featuredWorks)
}

// updateColumn performs a single-column partial write.
func (r *UserRepository) updateColumn(ctx context.Context, userID int64, column, value string) error {
	sql, args, err := r.sb.Update("users").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error building update user SQL")
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Str("column", column).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/pkg/logger"
)

// ProgrammeRepository handles the read-only programme catalogue. Create is
// used only by the seeder; the application never writes programme rows.
type ProgrammeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgrammeRepository creates a new ProgrammeRepository
func NewProgrammeRepository(db *pgxpool.Pool) *ProgrammeRepository {
	return &ProgrammeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// distinctValues runs a DISTINCT projection of one column with optional
// equality conditions. Each call scans the catalogue; at catalogue scale
// that is acceptable and no caching is layered on top.
func (r *ProgrammeRepository) distinctValues(ctx context.Context, column string, conditions squirrel.Eq) ([]string, error) {
	builder := r.sb.Select("DISTINCT " + column).
		From("programmes").
		OrderBy(column + " ASC")

	if len(conditions) > 0 {
		builder = builder.Where(conditions)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error building distinct programme SQL")
		return nil, fmt.Errorf("failed to build distinct query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error executing distinct programme query")
		return nil, fmt.Errorf("error querying distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			logger.Error().Err(err).Msg("Error scanning distinct value row")
			return nil, fmt.Errorf("error scanning distinct value: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating distinct value rows")
		return nil, fmt.Errorf("error iterating distinct values: %w", err)
	}

	return values, nil
}

// DistinctFaculties returns the distinct faculty values of the catalogue.
func (r *ProgrammeRepository) DistinctFaculties(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "faculty", nil)
}

// DistinctDepartments returns the distinct departments within a faculty.
func (r *ProgrammeRepository) DistinctDepartments(ctx context.Context, faculty string) ([]string, error) {
	return r.distinctValues(ctx, "department", squirrel.Eq{"faculty": faculty})
}

// DistinctProgrammes returns the distinct programmes within a department of a faculty.
func (r *ProgrammeRepository) DistinctProgrammes(ctx context.Context, faculty, department string) ([]string, error) {
	return r.distinctValues(ctx, "programme", squirrel.Eq{"faculty": faculty, "department": department})
}

// Count returns the number of catalogue rows.
func (r *ProgrammeRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("programmes").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count programmes query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting programme rows")
		return 0, fmt.Errorf("error counting programmes: %w", err)
	}

	return count, nil
}

// Create inserts a catalogue row. Seeder use only.
func (r *ProgrammeRepository) Create(ctx context.Context, programme *models.Programme) error {
	sql, args, err := r.sb.Insert("programmes").
		Columns("faculty", "department", "programme").
		Values(programme.Faculty, programme.Department, programme.Programme).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create programme query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("programme", programme.Programme).Msg("Error inserting programme row")
		return fmt.Errorf("error creating programme: %w", err)
	}

	return nil
}

package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/repositories"
)

// defaultProgrammes is the starter catalogue. The application treats the
// programmes table as read-only, so an empty table would leave the cascading
// lookups with nothing to serve.
var defaultProgrammes = []models.Programme{
	{Faculty: "Science and Technology", Department: "Computing", Programme: "Computer Science"},
	{Faculty: "Science and Technology", Department: "Computing", Programme: "Information Technology"},
	{Faculty: "Science and Technology", Department: "Life Sciences", Programme: "Biology"},
	{Faculty: "Science and Technology", Department: "Life Sciences", Programme: "Biochemistry"},
	{Faculty: "Engineering", Department: "Electrical Engineering", Programme: "Electrical Engineering"},
	{Faculty: "Engineering", Department: "Civil Engineering", Programme: "Civil Engineering"},
	{Faculty: "Humanities and Education", Department: "Literatures in English", Programme: "Literature"},
	{Faculty: "Humanities and Education", Department: "History", Programme: "History"},
	{Faculty: "Social Sciences", Department: "Economics", Programme: "Economics"},
	{Faculty: "Social Sciences", Department: "Management Studies", Programme: "Management"},
}

// CreateDefaultData populates the programme catalogue when it is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	programmeRepo := repositories.NewProgrammeRepository(dbPool)

	count, err := programmeRepo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		lgr.Debug().Int64("rows", count).Msg("Programme catalogue already populated")
		return nil
	}

	lgr.Info().Msg("Seeding programme catalogue...")
	for i := range defaultProgrammes {
		if err := programmeRepo.Create(ctx, &defaultProgrammes[i]); err != nil {
			return err
		}
	}

	lgr.Info().Int("rows", len(defaultProgrammes)).Msg("Programme catalogue seeded")
	return nil
}

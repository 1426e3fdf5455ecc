package services

import (
	"context"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/repositories"
)

// directoryService implements DirectoryService. Users and the programme
// catalogue are unrelated tables; a user's faculty/department/programme are
// free-text copies, so listings never join against the catalogue.
type directoryService struct {
	users      UserStore
	programmes ProgrammeStore
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(users UserStore, programmes ProgrammeStore) DirectoryService {
	return &directoryService{
		users:      users,
		programmes: programmes,
	}
}

// ListUsers returns users matching the exact-equality filter.
func (s *directoryService) ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error) {
	return s.users.List(ctx, filter)
}

// ListFaculties returns the distinct faculties of the programme catalogue.
func (s *directoryService) ListFaculties(ctx context.Context) ([]string, error) {
	return s.programmes.DistinctFaculties(ctx)
}

// ListDepartments returns the distinct departments under one faculty.
func (s *directoryService) ListDepartments(ctx context.Context, faculty string) ([]string, error) {
	return s.programmes.DistinctDepartments(ctx, faculty)
}

// ListProgrammes returns the distinct programmes under one department.
func (s *directoryService) ListProgrammes(ctx context.Context, faculty, department string) ([]string, error) {
	return s.programmes.DistinctProgrammes(ctx, faculty, department)
}

package services

import (
	"context"
	"time"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/app/repositories"
)

// UserStore is the slice of the user repository the services depend on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error)
	UpdateBiography(ctx context.Context, userID int64, biography string) error
	UpdateFeaturedWorks(ctx context.Context, userID int64, featuredWorks string) error
}

// SessionStore is the slice of the session repository the services depend on.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ProgrammeStore is the slice of the programme repository the services depend on.
type ProgrammeStore interface {
	DistinctFaculties(ctx context.Context) ([]string, error)
	DistinctDepartments(ctx context.Context, faculty string) ([]string, error)
	DistinctProgrammes(ctx context.Context, faculty, department string) ([]string, error)
}

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// SessionService manages the session lifecycle between login and signout.
type SessionService interface {
	Start(ctx context.Context, user *models.User) (string, error)
	Resolve(ctx context.Context, token string) (*models.User, error)
	End(ctx context.Context, token string) error
	SweepExpired(ctx context.Context) (int64, error)
}

// ProfileService covers a user's own profile and public profile lookups.
type ProfileService interface {
	GetOwnProfile(ctx context.Context, userID int64) (*models.User, error)
	GetPublicProfile(ctx context.Context, username string) (*models.User, error)
	UpdateBiography(ctx context.Context, userID int64, biography string) error
	UpdateFeaturedWorks(ctx context.Context, userID int64, featuredWorks string) error
}

// DirectoryService covers the filtered user listing and the cascading
// faculty > department > programme lookups.
type DirectoryService interface {
	ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error)
	ListFaculties(ctx context.Context) ([]string, error)
	ListDepartments(ctx context.Context, faculty string) ([]string, error)
	ListProgrammes(ctx context.Context, faculty, department string) ([]string, error)
}

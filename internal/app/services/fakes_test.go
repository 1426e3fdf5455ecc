package services

import (
	"context"
	"sort"
	"time"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/repositories"
	"github.com/emre/unifolio/internal/pkg/apperrors"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range s.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}

	clone := *user
	clone.ID = s.nextID
	s.nextID++
	s.users[clone.ID] = &clone
	return clone.ID, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *fakeUserStore) List(_ context.Context, filter repositories.UserFilter) ([]*models.User, error) {
	var out []*models.User
	for _, u := range s.users {
		if filter.Faculty != "" && u.Faculty != filter.Faculty {
			continue
		}
		if filter.Department != "" && u.Department != filter.Department {
			continue
		}
		if filter.Programme != "" && u.Programme != filter.Programme {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (s *fakeUserStore) UpdateBiography(_ context.Context, userID int64, biography string) error {
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Biography = biography
	return nil
}

func (s *fakeUserStore) UpdateFeaturedWorks(_ context.Context, userID int64, featuredWorks string) error {
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.FeaturedWorks = featuredWorks
	return nil
}

// fakeSessionStore is an in-memory SessionStore for service tests.
type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*models.Session{}}
}

func (s *fakeSessionStore) Create(_ context.Context, session *models.Session) error {
	if _, ok := s.sessions[session.Token]; ok {
		return apperrors.ErrConflict
	}
	clone := *session
	s.sessions[clone.Token] = &clone
	return nil
}

func (s *fakeSessionStore) GetByToken(_ context.Context, token string) (*models.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *fakeSessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n, nil
}

// fakeProgrammeStore holds catalogue rows and, like the real store's DISTINCT
// projections, collapses duplicates and sorts on query.
type fakeProgrammeStore struct {
	rows []models.Programme
}

func (s *fakeProgrammeStore) distinct(pick func(models.Programme) (string, bool)) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, row := range s.rows {
		value, match := pick(row)
		if !match || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

func (s *fakeProgrammeStore) DistinctFaculties(_ context.Context) ([]string, error) {
	return s.distinct(func(p models.Programme) (string, bool) {
		return p.Faculty, true
	}), nil
}

func (s *fakeProgrammeStore) DistinctDepartments(_ context.Context, faculty string) ([]string, error) {
	return s.distinct(func(p models.Programme) (string, bool) {
		return p.Department, p.Faculty == faculty
	}), nil
}

func (s *fakeProgrammeStore) DistinctProgrammes(_ context.Context, faculty, department string) ([]string, error) {
	return s.distinct(func(p models.Programme) (string, bool) {
		return p.Programme, p.Faculty == faculty && p.Department == department
	}), nil
}

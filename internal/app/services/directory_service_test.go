package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/repositories"
)

func seedDirectory(t *testing.T) *fakeUserStore {
	t.Helper()

	store := newFakeUserStore()
	seed := []*models.User{
		{Username: "ada", Faculty: "Engineering", Department: "Computing", Programme: "Computer Science"},
		{Username: "grace", Faculty: "Engineering", Department: "Computing", Programme: "Software Engineering"},
		{Username: "marie", Faculty: "Science", Department: "Physics", Programme: "Applied Physics"},
	}
	for _, u := range seed {
		_, err := store.Create(context.Background(), u)
		require.NoError(t, err)
	}
	return store
}

func usernames(users []*models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}

func TestDirectoryService_ListUsers(t *testing.T) {
	svc := NewDirectoryService(seedDirectory(t), &fakeProgrammeStore{})

	all, err := svc.ListUsers(context.Background(), repositories.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byFaculty, err := svc.ListUsers(context.Background(), repositories.UserFilter{Faculty: "Engineering"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ada", "grace"}, usernames(byFaculty))

	byDepartment, err := svc.ListUsers(context.Background(), repositories.UserFilter{Department: "Physics"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"marie"}, usernames(byDepartment))

	byProgramme, err := svc.ListUsers(context.Background(), repositories.UserFilter{Programme: "Computer Science"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ada"}, usernames(byProgramme))
}

func TestDirectoryService_ListUsers_ExactMatchOnly(t *testing.T) {
	svc := NewDirectoryService(seedDirectory(t), &fakeProgrammeStore{})

	// Filters are exact equality, not substring or case-folded matches.
	none, err := svc.ListUsers(context.Background(), repositories.UserFilter{Faculty: "engineering"})
	require.NoError(t, err)
	assert.Empty(t, none)

	none, err = svc.ListUsers(context.Background(), repositories.UserFilter{Programme: "Computer"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDirectoryService_CascadingLookups(t *testing.T) {
	// The catalogue holds one row per concrete offering, so every level of
	// the cascade sees duplicate values that must collapse to one entry.
	programmes := &fakeProgrammeStore{rows: []models.Programme{
		{Faculty: "Engineering", Department: "Computing", Programme: "Computer Science"},
		{Faculty: "Engineering", Department: "Computing", Programme: "Computer Science"},
		{Faculty: "Engineering", Department: "Computing", Programme: "Software Engineering"},
		{Faculty: "Engineering", Department: "Mechanical", Programme: "Mechanical Engineering"},
		{Faculty: "Science", Department: "Physics", Programme: "Applied Physics"},
	}}
	svc := NewDirectoryService(newFakeUserStore(), programmes)

	faculties, err := svc.ListFaculties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Science"}, faculties)

	departments, err := svc.ListDepartments(context.Background(), "Engineering")
	require.NoError(t, err)
	assert.Equal(t, []string{"Computing", "Mechanical"}, departments)

	progs, err := svc.ListProgrammes(context.Background(), "Engineering", "Computing")
	require.NoError(t, err)
	assert.Equal(t, []string{"Computer Science", "Software Engineering"}, progs)

	// Programmes are scoped by both faculty and department.
	progs, err = svc.ListProgrammes(context.Background(), "Science", "Computing")
	require.NoError(t, err)
	assert.Empty(t, progs)

	// Unknown branches yield empty lists, not errors.
	departments, err = svc.ListDepartments(context.Background(), "Law")
	require.NoError(t, err)
	assert.Empty(t, departments)
}

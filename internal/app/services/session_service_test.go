package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/unifolio/internal/app/models"
)

func seedUser(t *testing.T, store *fakeUserStore) *models.User {
	t.Helper()

	id, err := store.Create(context.Background(), &models.User{
		Username:  "jdoe",
		Email:     "jdoe@my.uni.edu",
		FirstName: "John",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	user, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

func TestSessionService_StartAndResolve(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, users, 0, zerolog.Nop())

	user := seedUser(t, users)

	token, err := svc.Start(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "jdoe", resolved.Username)
}

func TestSessionService_ResolveReturnsLiveRecord(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, users, 0, zerolog.Nop())

	user := seedUser(t, users)

	token, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	// Profile edits between requests must be visible on the next resolve.
	require.NoError(t, users.UpdateBiography(context.Background(), user.ID, "updated bio"))

	resolved, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "updated bio", resolved.Biography)
}

func TestSessionService_ResolveUnknownToken(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore(), newFakeUserStore(), 0, zerolog.Nop())

	resolved, err := svc.Resolve(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, resolved)

	resolved, err = svc.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestSessionService_ExpiredSessionIsDropped(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, users, time.Nanosecond, zerolog.Nop())

	user := seedUser(t, users)

	token, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, resolved)

	// The expired row is removed, not just ignored.
	_, err = sessions.GetByToken(context.Background(), token)
	require.Error(t, err)
}

func TestSessionService_NoExpiryByDefault(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, users, 0, zerolog.Nop())

	user := seedUser(t, users)

	token, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	session, err := sessions.GetByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, session.ExpiresAt)
}

func TestSessionService_End(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, users, 0, zerolog.Nop())

	user := seedUser(t, users)

	token, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, svc.End(context.Background(), token))

	resolved, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, resolved)

	// Ending an already-ended session is not an error.
	require.NoError(t, svc.End(context.Background(), token))
	require.NoError(t, svc.End(context.Background(), ""))
}

func TestSessionService_SweepExpired(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	user := seedUser(t, users)

	// One abandoned expired session, one live one.
	expiredSvc := NewSessionService(sessions, users, time.Nanosecond, zerolog.Nop())
	abandoned, err := expiredSvc.Start(context.Background(), user)
	require.NoError(t, err)

	liveSvc := NewSessionService(sessions, users, 0, zerolog.Nop())
	live, err := liveSvc.Start(context.Background(), user)
	require.NoError(t, err)

	removed, err := liveSvc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// The abandoned token is gone without ever being presented again.
	_, err = sessions.GetByToken(context.Background(), abandoned)
	require.Error(t, err)

	resolved, err := liveSvc.Resolve(context.Background(), live)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)

	// A second sweep finds nothing.
	removed, err = liveSvc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSessionService_EachLoginGetsOwnToken(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, users, 0, zerolog.Nop())

	user := seedUser(t, users)

	first, err := svc.Start(context.Background(), user)
	require.NoError(t, err)
	second, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Ending one leaves the other resolvable.
	require.NoError(t, svc.End(context.Background(), first))

	resolved, err := svc.Resolve(context.Background(), second)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

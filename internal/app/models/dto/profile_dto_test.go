package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/unifolio/internal/app/models"
)

func TestUserResponse_NeverCarriesCredentials(t *testing.T) {
	user := &models.User{
		ID:       1,
		Username: "jdoe",
		Email:    "jdoe@my.uni.edu",
		Password: "$2a$12$secret-digest",
	}

	raw, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret-digest")
	assert.Contains(t, string(raw), `"username":"jdoe"`)
}

func TestUserModel_PasswordExcludedFromJSON(t *testing.T) {
	raw, err := json.Marshal(&models.User{Username: "jdoe", Password: "$2a$12$secret-digest"})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret-digest")
	assert.NotContains(t, string(raw), `"password"`)
}

func TestNewUserResponseList(t *testing.T) {
	users := []*models.User{
		{ID: 1, Username: "ada"},
		{ID: 2, Username: "grace"},
	}

	out := NewUserResponseList(users)
	require.Len(t, out, 2)
	assert.Equal(t, "ada", out[0].Username)
	assert.Equal(t, "grace", out[1].Username)

	assert.NotNil(t, NewUserResponseList(nil))
	assert.Empty(t, NewUserResponseList(nil))
}

package application_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/validation"
)

func profile(t *testing.T, body string) application.UpdateProfileInput {
	t.Helper()
	var in application.UpdateProfileInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestUpdateProfile_OmittedVersusEmpty(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	me := app.register(t, "a@x.com", "Alice")

	u, err := app.users.UpdateProfile(ctx, me, profile(t, `{"avatar":"kangaroo","flag":"au"}`))
	require.NoError(t, err)
	require.NotNil(t, u.Avatar)
	assert.Equal(t, "kangaroo", *u.Avatar)

	u, err = app.users.UpdateProfile(ctx, me, profile(t, `{"flag":"nz"}`))
	require.NoError(t, err)
	require.NotNil(t, u.Avatar)
	assert.Equal(t, "kangaroo", *u.Avatar, "omitted avatar is untouched")
	assert.Equal(t, "nz", *u.Flag)

	u, err = app.users.UpdateProfile(ctx, me, profile(t, `{"avatar":""}`))
	require.NoError(t, err)
	require.NotNil(t, u.Avatar)
	assert.Equal(t, "", *u.Avatar)

	u, err = app.users.UpdateProfile(ctx, me, profile(t, `{"flag":null}`))
	require.NoError(t, err)
	assert.Nil(t, u.Flag)

	again, err := app.auth.Me(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, "", *again.Avatar)
	assert.Nil(t, again.Flag)
}

func TestUpdateProfile_Name(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	me := app.register(t, "a@x.com", "Alice")

	u, err := app.users.UpdateProfile(ctx, me, application.UpdateProfileInput{Name: validation.Set("  Alicia  ")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	assert.True(t, u.IsAdmin)

	for _, body := range []string{`{"name":" a "}`, `{"name":""}`, `{"name":null}`} {
		_, err := app.users.UpdateProfile(ctx, me, profile(t, body))
		requireKind(t, err, application.KindValidation)
		assert.Equal(t, "Name must be at least 2 characters", application.AsError(err).Message)
	}
}

func TestUpdateProfile_MissingUser(t *testing.T) {
	app := newTestApp(t)
	_, err := app.users.UpdateProfile(context.Background(), application.Identity{ID: 1}, application.UpdateProfileInput{})
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com", "Alice")
	app.register(t, "b@x.com", "Bob")

	users, err := app.users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.NotNil(t, users[0].CreatedAt)

	b, err := json.Marshal(users[0])
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
}

package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

func newTestService() (Service, *FakeRepository) {
	repo := NewFakeRepository()
	tokens := NewTokenIssuer("test-secret", time.Hour)
	return NewService(repo, tokens), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Sam@Campus.Edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)
	assert.Equal(t, "sam@campus.edu", user.Email, "emails are normalized")
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	token, loggedIn, err := svc.Login(ctx, "sam@campus.edu", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	userID, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "a@b.c", "short", "A")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "sam@campus.edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "sam@campus.edu", "different-pass", "Other Sam")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "sam@campus.edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "sam@campus.edu", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody@campus.edu", "whatever1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"unknown email must not be distinguishable from a bad password")
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	other := NewTokenIssuer("other-secret", time.Hour)
	token, err := other.Issue("u1")
	require.NoError(t, err)

	svc, _ := newTestService()
	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestVerifyToken_Expired(t *testing.T) {
	tokens := NewTokenIssuer("test-secret", -time.Minute)
	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	svc := NewService(NewFakeRepository(), NewTokenIssuer("test-secret", time.Hour))
	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "sam@campus.edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, user.ID, "wrong-old", "newpassword1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.UpdatePassword(ctx, user.ID, "hunter2hunter2", "newpassword1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "sam@campus.edu", "hunter2hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "sam@campus.edu", "newpassword1")
	assert.NoError(t, err)
}

func TestUpdateEmailRequiresPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "sam@campus.edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)

	_, err = svc.UpdateEmail(ctx, user.ID, "new@campus.edu", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	updated, err := svc.UpdateEmail(ctx, user.ID, "new@campus.edu", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "new@campus.edu", updated.Email)
}

func TestGetUser_CacheInvalidatedOnUpdate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "sam@campus.edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)

	// Prime the cache
	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.DisplayName)

	_, err = svc.UpdateName(ctx, user.ID, "Sammy")
	require.NoError(t, err)

	got, err = svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sammy", got.DisplayName)
}

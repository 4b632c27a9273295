package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/somchaidev/activity-calendar/internal/model"
)

type fakeUserRepo struct {
	users   []*model.User
	listErr error
}

func (f *fakeUserRepo) List() ([]*model.User, error)   { return f.users, f.listErr }
func (f *fakeUserRepo) ReplaceAll([]*model.User) error { return nil }

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: []*model.User{
		{ID: "u1", Username: "somchai", Password: "s3cret", Fullname: "สมชาย ใจดี"},
	}}
	svc := NewAuthService(repo, "test-secret", time.Hour, false)

	user, token, err := svc.Login("somchai", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "u1", user.ID)
	require.Empty(t, user.Password)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims["user_id"])
	require.Equal(t, "somchai", claims["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: []*model.User{
		{ID: "u1", Username: "somchai", Password: "s3cret"},
	}}
	svc := NewAuthService(repo, "test-secret", time.Hour, false)

	_, _, err := svc.Login("somchai", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDevFallback(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(&fakeUserRepo{}, "test-secret", time.Hour, true)

	user, token, err := svc.Login("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "local-admin", user.ID)
}

func TestLoginDevFallbackDisabledInProduction(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(&fakeUserRepo{}, "test-secret", time.Hour, false)

	_, _, err := svc.Login("admin", "admin")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDevFallbackOnlyWhenTableEmpty(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: []*model.User{
		{ID: "u1", Username: "somchai", Password: "s3cret"},
	}}
	svc := NewAuthService(repo, "test-secret", time.Hour, true)

	_, _, err := svc.Login("admin", "admin")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRepoError(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{listErr: errors.New("no such table")}
	svc := NewAuthService(repo, "test-secret", time.Hour, false)

	_, _, err := svc.Login("somchai", "s3cret")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsForgedToken(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(&fakeUserRepo{}, "test-secret", time.Hour, true)
	_, token, err := svc.Login("admin", "admin")
	require.NoError(t, err)

	other := NewAuthService(&fakeUserRepo{}, "other-secret", time.Hour, true)
	_, err = other.VerifyToken(token)
	require.Error(t, err)

	_, err = svc.VerifyToken("not-a-token")
	require.Error(t, err)
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/service"
)

type memUserRepo struct {
	users []*model.User
}

func (m *memUserRepo) List() ([]*model.User, error) { return m.users, nil }

func (m *memUserRepo) ReplaceAll(users []*model.User) error {
	m.users = users
	return nil
}

// The user manager fetches the list, edits it, and posts the whole thing
// back. That cycle must keep credentials intact or every editor gets
// locked out on the first save.
func TestUserListRoundTripKeepsPasswords(t *testing.T) {
	t.Parallel()

	repo := &memUserRepo{users: []*model.User{
		{ID: "u1", Username: "somchai", Password: "s3cret", Fullname: "สมชาย ใจดี"},
	}}
	h := NewCalendarHandler(service.NewCalendarService(nil, nil, nil, repo, nil))

	rec := httptest.NewRecorder()
	h.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []*model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "s3cret", listed[0].Password)

	// Post the listing straight back, as the UI does on save.
	body, err := json.Marshal(listed)
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	h.ReplaceUsers(rec, httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	auth := service.NewAuthService(repo, "test-secret", time.Hour, false)
	_, _, err = auth.Login("somchai", "s3cret")
	require.NoError(t, err)
}

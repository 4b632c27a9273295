package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadsServesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1700000000000_plan.pdf"), []byte("%PDF-1.4"), 0o644))

	h := Uploads(dir)

	req := httptest.NewRequest(http.MethodGet, "/uploads/1700000000000_plan.pdf", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestUploadsRejectsDirectoryListing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1700000000000_plan.pdf"), []byte("%PDF-1.4"), 0o644))

	h := Uploads(dir)

	for _, path := range []string{"/uploads/", "/uploads/sub/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code, path)
		require.NotContains(t, rec.Body.String(), "plan.pdf")
	}
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/somchaidev/activity-calendar/internal/compressor"
)

const thumbPrefix = "thumb_"

// LocalStore writes uploads into a flat directory on the serving host.
// It is the fallback when the remote store is unavailable and the primary
// store when no remote container is configured.
type LocalStore struct {
	dir     string
	baseURL string // URL prefix the directory is served under, e.g. /uploads
	comp    compressor.Compressor
}

func NewLocalStore(dir, baseURL string, comp compressor.Compressor) *LocalStore {
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		comp:    comp,
	}
}

// Dir returns the upload directory, for wiring the static file route.
func (s *LocalStore) Dir() string { return s.dir }

// Save writes the payload under a timestamp-qualified name and, for
// images, a thumb_-prefixed thumbnail next to it. The upload directory is
// created on demand.
func (s *LocalStore) Save(_ context.Context, data []byte, filename, mimeType string) (*Object, error) {
	err := os.MkdirAll(s.dir, 0o755)
	if err != nil {
		return nil, &SaveError{Backend: "local", Err: fmt.Errorf("create upload dir: %w", err)}
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFilename(filename))
	path := filepath.Join(s.dir, name)

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return nil, &SaveError{Backend: "local", Err: fmt.Errorf("write %s: %w", name, err)}
	}

	obj := &Object{
		ID:           name,
		URL:          s.baseURL + "/" + name,
		ThumbnailURL: s.baseURL + "/" + name,
	}

	thumb, ok := s.comp.Thumbnail(data, mimeType)
	if ok {
		thumbName := thumbPrefix + name
		err = os.WriteFile(filepath.Join(s.dir, thumbName), thumb, 0o644)
		if err != nil {
			// The main file is stored; the preview just falls back to it.
			slog.Warn("local thumbnail write failed", "file", thumbName, "error", err)
		} else {
			obj.ThumbnailURL = s.baseURL + "/" + thumbName
		}
	}

	return obj, nil
}

// Delete removes the stored file and, best-effort, its thumbnail. Missing
// files are not errors.
func (s *LocalStore) Delete(_ context.Context, id string) error {
	// Reject anything that could escape the upload directory.
	if id != filepath.Base(id) {
		return fmt.Errorf("invalid local file id %q", id)
	}

	err := os.Remove(filepath.Join(s.dir, id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", id, err)
	}

	err = os.Remove(filepath.Join(s.dir, thumbPrefix+id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("thumbnail delete failed", "file", thumbPrefix+id, "error", err)
	}

	return nil
}

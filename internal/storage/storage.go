package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotConfigured signals that the remote backend has no target container
// configured. This is not a failure: it selects local-only mode.
var ErrNotConfigured = errors.New("remote storage not configured")

// Object is the result of storing one file.
type Object struct {
	ID           string
	URL          string
	ThumbnailURL string
}

// Store is the contract shared by the local filesystem store and the
// remote object store. Save places the payload plus, for images, a
// thumbnail; Delete is best-effort and must tolerate missing objects.
type Store interface {
	Save(ctx context.Context, data []byte, filename, mimeType string) (*Object, error)
	Delete(ctx context.Context, id string) error
}

// SaveError wraps a per-file store failure so the orchestrator can tell a
// transient upload error (fall back for this file only) apart from a
// backend that is unavailable for the whole batch.
type SaveError struct {
	Backend string
	Err     error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%s store failed: %v", e.Backend, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename makes an uploader-supplied name safe for object keys
// and filesystem paths. Path separators and special characters become
// underscores.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

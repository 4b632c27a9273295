package validation

import (
	"fmt"
	"net/http"
)

// UploadConstraints bounds a raw upload before any processing. The
// calendar accepts every file type (non-images are stored as-is), so size
// is the only hard rule.
type UploadConstraints struct {
	MaxSize int64
}

// ValidateUpload rejects oversize files with a user-facing message that
// names the file.
func ValidateUpload(name string, size int64, constraints UploadConstraints) error {
	if size > constraints.MaxSize {
		return fmt.Errorf("%s: file too large (max %d MB)", name, constraints.MaxSize>>20)
	}
	return nil
}

// DetectMimeType returns the declared content type, falling back to magic
// number sniffing when the client sent none. The result drives the
// compression branch and the stored content type.
func DetectMimeType(declared string, data []byte) string {
	if declared != "" {
		return declared
	}
	if len(data) == 0 {
		return "application/octet-stream"
	}
	return http.DetectContentType(data)
}

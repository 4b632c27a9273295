package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	t.Parallel()

	constraints := UploadConstraints{MaxSize: 25 << 20}

	require.NoError(t, ValidateUpload("report.pdf", 25<<20, constraints))

	err := ValidateUpload("video.mp4", 25<<20+1, constraints)
	require.Error(t, err)
	require.Contains(t, err.Error(), "video.mp4")
	require.Contains(t, err.Error(), "max 25 MB")
}

func TestDetectMimeType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "image/jpeg", DetectMimeType("image/jpeg", nil))
	require.Equal(t, "application/octet-stream", DetectMimeType("", nil))

	png := []byte("\x89PNG\r\n\x1a\n rest of header")
	require.Equal(t, "image/png", DetectMimeType("", png))
}

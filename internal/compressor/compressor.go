package compressor

import (
	"bytes"
	"image"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Images are bounded to this many pixels on the long edge before storage.
	MaxLongEdge = 2000

	mainQuality  = 85
	thumbSize    = 200
	thumbQuality = 70
	qualityStep  = 10
	qualityFloor = 10
)

// Compressor reduces image payloads before storage. Implementations must
// never fail an upload: on any codec error the best available buffer is
// returned and the caller proceeds with it.
type Compressor interface {
	// Compress re-encodes an image as a bounded JPEG. Non-image inputs and
	// undecodable buffers pass through unchanged. The result is never
	// larger than the input.
	Compress(data []byte, mimeType string) []byte

	// Thumbnail produces a small square JPEG preview. The second return is
	// false when the input is not an image or generation fails; callers
	// then fall back to the primary URL.
	Thumbnail(data []byte, mimeType string) ([]byte, bool)
}

// Resolve picks the Compressor implementation once at startup. Compression
// can be switched off by configuration; uploads then store originals.
// targetBytes bounds the compressed payload; zero disables the stepwise
// quality reduction and a single fixed-quality encode is used.
func Resolve(enabled bool, targetBytes int64) Compressor {
	if !enabled {
		slog.Info("image compression disabled, storing originals")
		return Noop{}
	}
	return &jpegCompressor{targetBytes: targetBytes}
}

// Noop stores inputs unchanged and produces no thumbnails.
type Noop struct{}

func (Noop) Compress(data []byte, _ string) []byte { return data }

func (Noop) Thumbnail(_ []byte, _ string) ([]byte, bool) { return nil, false }

type jpegCompressor struct {
	targetBytes int64
}

func (c *jpegCompressor) Compress(data []byte, mimeType string) []byte {
	if !IsImage(mimeType) {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		slog.Debug("image decode failed, storing original", "error", err)
		return data
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxLongEdge || h > MaxLongEdge {
		if w >= h {
			img = imaging.Resize(img, MaxLongEdge, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, MaxLongEdge, imaging.Lanczos)
		}
	}

	out, err := encodeJPEG(img, mainQuality)
	if err != nil {
		slog.Debug("image encode failed, storing original", "error", err)
		return data
	}

	// Step quality down until the payload fits the configured target:
	// fixed decrements to a floor, then stop with whatever we have.
	quality := mainQuality
	for c.targetBytes > 0 && int64(len(out)) > c.targetBytes && quality-qualityStep >= qualityFloor {
		quality -= qualityStep
		next, err := encodeJPEG(img, quality)
		if err != nil {
			break
		}
		out = next
	}

	if len(out) >= len(data) {
		return data
	}
	return out
}

func (c *jpegCompressor) Thumbnail(data []byte, mimeType string) ([]byte, bool) {
	if !IsImage(mimeType) {
		return nil, false
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false
	}

	thumb := imaging.Fill(img, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)
	out, err := encodeJPEG(thumb, thumbQuality)
	if err != nil {
		return nil, false
	}
	return out, true
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsImage reports whether the declared MIME type selects the image
// compression branch.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

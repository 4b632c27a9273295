package compressor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// jpegBytes renders a noisy gradient so JPEG has something to compress.
func jpegBytes(t *testing.T, w, h, quality int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 7 % 256),
				G: uint8(y * 13 % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func decodeBounds(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestCompressBoundsLongEdge(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	in := jpegBytes(t, 3000, 1500, 95)

	out := c.Compress(in, "image/jpeg")
	w, h := decodeBounds(t, out)

	require.Equal(t, MaxLongEdge, w)
	require.Equal(t, 1000, h, "aspect ratio must be preserved")
	require.LessOrEqual(t, len(out), len(in))
}

func TestCompressPortraitUsesHeightBound(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	in := jpegBytes(t, 1200, 2400, 95)

	out := c.Compress(in, "image/jpeg")
	w, h := decodeBounds(t, out)

	require.Equal(t, MaxLongEdge, h)
	require.Equal(t, 1000, w)
}

func TestCompressNeverGrowsSmallImages(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	// Tiny, already heavily compressed: a q85 re-encode would likely be
	// larger, so the original must come back.
	in := jpegBytes(t, 40, 40, 10)

	out := c.Compress(in, "image/jpeg")
	require.LessOrEqual(t, len(out), len(in))
}

func TestCompressNoUpscale(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	in := jpegBytes(t, 800, 600, 95)

	out := c.Compress(in, "image/jpeg")
	w, h := decodeBounds(t, out)
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)
}

func TestCompressPassesThroughNonImages(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	in := []byte("%PDF-1.4 not an image")

	out := c.Compress(in, "application/pdf")
	require.Equal(t, in, out)
}

func TestCompressPassesThroughUndecodable(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	in := []byte{0x00, 0x01, 0x02, 0x03}

	out := c.Compress(in, "image/jpeg")
	require.Equal(t, in, out)
}

func TestCompressHonorsByteTarget(t *testing.T) {
	t.Parallel()

	in := jpegBytes(t, 1900, 1900, 100)
	loose := Resolve(true, 0).Compress(in, "image/jpeg")
	target := int64(len(loose)) / 2

	out := Resolve(true, target).Compress(in, "image/jpeg")
	require.Less(t, len(out), len(loose))
}

func TestCompressHandlesPNGInput(t *testing.T) {
	t.Parallel()

	// High-frequency content so the lossless PNG stays large and the JPEG
	// re-encode is guaranteed to shrink it.
	img := image.NewRGBA(image.Rect(0, 0, 2500, 1000))
	for y := 0; y < 1000; y++ {
		for x := 0; x < 2500; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x*x*31 + y*y*17) % 251),
				G: uint8((x*y + y*29) % 241),
				B: uint8((x*13 ^ y*7) % 239),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out := Resolve(true, 0).Compress(buf.Bytes(), "image/png")
	w, h := decodeBounds(t, out)
	require.Equal(t, MaxLongEdge, w)
	require.Equal(t, 1000, h)
}

func TestThumbnailIsSquare(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	in := jpegBytes(t, 1024, 768, 90)

	thumb, ok := c.Thumbnail(in, "image/jpeg")
	require.True(t, ok)

	w, h := decodeBounds(t, thumb)
	require.Equal(t, thumbSize, w)
	require.Equal(t, thumbSize, h)
}

func TestThumbnailRejectsNonImages(t *testing.T) {
	t.Parallel()

	c := Resolve(true, 0)
	_, ok := c.Thumbnail([]byte("plain text"), "text/plain")
	require.False(t, ok)

	_, ok = c.Thumbnail([]byte{0xde, 0xad}, "image/jpeg")
	require.False(t, ok)
}

func TestNoopCompressor(t *testing.T) {
	t.Parallel()

	c := Resolve(false, 5<<20)
	in := jpegBytes(t, 3000, 1500, 95)

	require.Equal(t, in, c.Compress(in, "image/jpeg"))
	_, ok := c.Thumbnail(in, "image/jpeg")
	require.False(t, ok)
}

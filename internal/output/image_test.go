package output

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhead/macos-screen-mcp/internal/model"
)

func testCapture(w, h int) *model.CaptureResult {
	pixels := make([]byte, w*h*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = byte(i)
		pixels[i+1] = byte(i >> 2)
		pixels[i+2] = 0x40
		pixels[i+3] = 255
	}
	return &model.CaptureResult{Width: w, Height: h, Pixels: pixels}
}

func TestImageFromCapture_SizeMismatch(t *testing.T) {
	res := &model.CaptureResult{Width: 2, Height: 2, Pixels: make([]byte, 12)}
	_, err := ImageFromCapture(res)
	assert.Error(t, err)
}

func TestEncodePNG_RoundTripsPixels(t *testing.T) {
	res := testCapture(4, 3)
	data, err := EncodePNG(res, 1.0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	// Opaque pixels survive PNG losslessly.
	r, g, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(res.Pixels[4]), r>>8)
	assert.Equal(t, uint32(res.Pixels[5]), g>>8)
	assert.Equal(t, uint32(res.Pixels[6]), b>>8)
}

func TestEncodePNG_Scaled(t *testing.T) {
	res := testCapture(8, 8)
	data, err := EncodePNG(res, 0.5)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestEncodePNG_ScaleNeverBelowOnePixel(t *testing.T) {
	res := testCapture(2, 2)
	data, err := EncodePNG(res, 0.1)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), 1)
	assert.GreaterOrEqual(t, img.Bounds().Dy(), 1)
}

func TestBase64_RoundTrip(t *testing.T) {
	res := testCapture(3, 3)
	encoded := EncodeBase64(res.Pixels)
	decoded, err := DecodeBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, res.Pixels, decoded)
}

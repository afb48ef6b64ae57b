package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/jhead/macos-screen-mcp/internal/model"
)

// ImageFromCapture wraps a capture result as an image.NRGBA without copying.
// The capture buffer is already canonical RGBA with no row padding, which is
// exactly NRGBA's layout.
func ImageFromCapture(res *model.CaptureResult) (*image.NRGBA, error) {
	if want := res.Width * res.Height * 4; len(res.Pixels) != want {
		return nil, fmt.Errorf("capture buffer is %d bytes, want %d for %dx%d",
			len(res.Pixels), want, res.Width, res.Height)
	}
	return &image.NRGBA{
		Pix:    res.Pixels,
		Stride: res.Width * 4,
		Rect:   image.Rect(0, 0, res.Width, res.Height),
	}, nil
}

// EncodePNG encodes a capture result as PNG, optionally scaled down. PNG is
// lossless, so at scale 1.0 the pixel bytes survive unchanged. scale outside
// (0, 1] means no scaling.
func EncodePNG(res *model.CaptureResult, scale float64) ([]byte, error) {
	img, err := ImageFromCapture(res)
	if err != nil {
		return nil, err
	}

	var src image.Image = img
	if scale > 0 && scale < 1.0 {
		w := int(float64(res.Width) * scale)
		h := int(float64(res.Height) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, img.Bounds(), draw.Over, nil)
		src = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 encodes raw bytes as standard base64 text.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

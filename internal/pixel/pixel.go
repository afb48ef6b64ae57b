// Package pixel normalizes raw window-server pixel buffers into the canonical
// RGBA layout promised to callers: 4 bytes per pixel, rows top to bottom,
// no row padding.
package pixel

import "fmt"

// FromBGRA converts a BGRA source buffer (32-bit little-endian, alpha first,
// the layout CoreGraphics hands back for window images) into tightly packed
// RGBA. bytesPerRow may exceed width*4; the row tail is padding and dropped.
func FromBGRA(src []byte, width, height, bytesPerRow int) ([]byte, error) {
	if err := checkBounds(src, width, height, bytesPerRow); err != nil {
		return nil, err
	}
	dst := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		row := src[y*bytesPerRow:]
		out := dst[y*width*4:]
		for x := 0; x < width; x++ {
			b, g, r, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			out[x*4], out[x*4+1], out[x*4+2], out[x*4+3] = r, g, b, a
		}
	}
	return dst, nil
}

// FromRGBA repacks an already-RGBA source buffer, dropping row padding.
func FromRGBA(src []byte, width, height, bytesPerRow int) ([]byte, error) {
	if err := checkBounds(src, width, height, bytesPerRow); err != nil {
		return nil, err
	}
	dst := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		copy(dst[y*width*4:(y+1)*width*4], src[y*bytesPerRow:])
	}
	return dst, nil
}

func checkBounds(src []byte, width, height, bytesPerRow int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if bytesPerRow < width*4 {
		return fmt.Errorf("bytesPerRow %d too small for width %d", bytesPerRow, width)
	}
	// The last row may be unpadded.
	if need := (height-1)*bytesPerRow + width*4; len(src) < need {
		return fmt.Errorf("source buffer %d bytes, need at least %d", len(src), need)
	}
	return nil
}

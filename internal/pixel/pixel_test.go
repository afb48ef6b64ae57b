package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBGRA_SwapsRAndBOnly(t *testing.T) {
	// One pixel: B=1 G=2 R=3 A=4.
	out, err := FromBGRA([]byte{1, 2, 3, 4}, 1, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 4}, out)
}

func TestFromBGRA_KnownPattern(t *testing.T) {
	// 2x2 pure-color pattern in BGRA: blue, green / red, white.
	src := []byte{
		255, 0, 0, 255 /* blue */, 0, 255, 0, 255, /* green */
		0, 0, 255, 255 /* red */, 255, 255, 255, 255, /* white */
	}
	out, err := FromBGRA(src, 2, 2, 8)
	require.NoError(t, err)
	want := []byte{
		0, 0, 255, 255, 0, 255, 0, 255,
		255, 0, 0, 255, 255, 255, 255, 255,
	}
	assert.Equal(t, want, out)
}

func TestFromBGRA_DropsRowPadding(t *testing.T) {
	// 1x2, bytesPerRow 8 (4 bytes padding per row, last row unpadded).
	src := []byte{
		1, 2, 3, 4, 0xEE, 0xEE, 0xEE, 0xEE,
		5, 6, 7, 8,
	}
	out, err := FromBGRA(src, 1, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8}, out)
}

func TestFromBGRA_SelfInverse(t *testing.T) {
	src := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	once, err := FromBGRA(src, 2, 1, 8)
	require.NoError(t, err)
	twice, err := FromBGRA(once, 2, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, src, twice)
}

func TestFromRGBA_TrimsStride(t *testing.T) {
	src := []byte{
		1, 2, 3, 4, 0, 0, 0, 0,
		5, 6, 7, 8,
	}
	out, err := FromRGBA(src, 1, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, out)
}

func TestBoundsChecks(t *testing.T) {
	_, err := FromBGRA(nil, 0, 1, 4)
	assert.Error(t, err)

	_, err = FromBGRA(make([]byte, 4), 2, 1, 4)
	assert.Error(t, err, "bytesPerRow smaller than width*4")

	_, err = FromBGRA(make([]byte, 7), 1, 2, 4)
	assert.Error(t, err, "buffer shorter than required")
}

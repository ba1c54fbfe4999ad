package ppm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrepka10/imgResample/internal/ir"
)

// encodePPM assembles a P6 stream by hand so decoder tests do not
// depend on Encode.
func encodePPM(header string, pixels []byte) []byte {
	return append([]byte(header), pixels...)
}

func gradientImage(t *testing.T, w, h int) *ir.Image {
	t.Helper()
	img, err := ir.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, uint8(x*40), uint8(y*40), uint8((x+y)*20))
		}
	}
	return img
}

func TestDecodeBasic(t *testing.T) {
	pixels := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	img, err := Decode(encodePPM("P6\n2 2\n255\n", pixels))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, pixels, img.Pix)
}

func TestDecodeSkipsComments(t *testing.T) {
	pixels := []byte{1, 2, 3}
	header := "P6\n# generated by some tool\n# second comment\n1 1\n# between size and max\n255\n"
	img, err := Decode(encodePPM(header, pixels))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, pixels, img.Pix)
}

func TestDecodeKeepsPixelBytesThatLookLikeText(t *testing.T) {
	// Pixel data starting with '#' or digits must not be eaten by the
	// header parser; only one whitespace byte follows the max value.
	pixels := []byte{'#', '5', '\n'}
	img, err := Decode(encodePPM("P6\n1 1\n255\n", pixels))
	require.NoError(t, err)
	assert.Equal(t, pixels, img.Pix)
}

func TestDecodeErrors(t *testing.T) {
	pixels := []byte{1, 2, 3}
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", encodePPM("P5\n1 1\n255\n", pixels)},
		{"ascii variant", encodePPM("P3\n1 1\n255\n", pixels)},
		{"missing size", []byte("P6\n255\n")},
		{"missing max value", []byte("P6\n1 1\n")},
		{"junk size", encodePPM("P6\nw h\n255\n", pixels)},
		{"zero width", encodePPM("P6\n0 1\n255\n", pixels)},
		{"zero height", encodePPM("P6\n1 0\n255\n", pixels)},
		{"unsupported max value", encodePPM("P6\n1 1\n65535\n", pixels)},
		{"low max value", encodePPM("P6\n1 1\n254\n", pixels)},
		{"truncated pixels", encodePPM("P6\n2 2\n255\n", pixels)},
		{"header only", []byte("P6\n1 1\n255")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.data)
			require.Error(t, err)
			var fe *FormatError
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestEncodeHeaderLayout(t *testing.T) {
	img := gradientImage(t, 3, 2)
	data := Encode(img)

	want := fmt.Sprintf("P6\n# Created by %s\n3 2\n255\n", creator)
	require.True(t, bytes.HasPrefix(data, []byte(want)), "header = %q", data[:len(want)])
	assert.Equal(t, img.Pix, data[len(want):])
}

func TestRoundTrip(t *testing.T) {
	src := gradientImage(t, 5, 4)

	img, err := Decode(Encode(src))
	require.NoError(t, err)
	assert.Equal(t, src.Width, img.Width)
	assert.Equal(t, src.Height, img.Height)
	assert.Equal(t, src.Pix, img.Pix)
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	pixels := []byte{1, 2, 3}
	data := encodePPM("P6\n1 1\n255\n", append(pixels, 0xAA, 0xBB))
	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, pixels, img.Pix)
}

func TestInfo(t *testing.T) {
	img := gradientImage(t, 6, 3)
	data := Encode(img)

	info, err := Info(data)
	require.NoError(t, err)
	assert.Equal(t, 6, info.Width)
	assert.Equal(t, 3, info.Height)
	assert.Equal(t, 255, info.MaxValue)
	assert.Equal(t, 6*3*3, info.PixelBytes)
	assert.True(t, info.Complete)

	info, err = Info(data[:len(data)-5])
	require.NoError(t, err)
	assert.False(t, info.Complete)

	_, err = Info([]byte("P4\n1 1\n255\n"))
	assert.Error(t, err)
}

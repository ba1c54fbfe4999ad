package resample

import (
	"errors"
	"fmt"

	"github.com/rrepka10/imgResample/internal/ir"
)

// ErrSourceTooSmall is returned when the fixed 2x downsample is asked
// to halve an image narrower or shorter than 2 pixels.
var ErrSourceTooSmall = errors.New("source must be at least 2x2 for the 2x downsample")

// DownsampleHalf shrinks src to half size with a 2x2 box filter.
// Destination dimensions are srcW/2 x srcH/2 (truncating); an odd
// trailing row or column is dropped. Each destination channel is the
// truncated average of the four covering source samples, summed before
// dividing so a uniform block reproduces its color exactly.
func DownsampleHalf(src *ir.Image) (*ir.Image, error) {
	if src.Width < 2 || src.Height < 2 {
		return nil, fmt.Errorf("%dx%d source: %w", src.Width, src.Height, ErrSourceTooSmall)
	}

	dst, err := ir.New(src.Width/2, src.Height/2)
	if err != nil {
		return nil, err
	}

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			off00 := (2*y*src.Width + 2*x) * 3
			off10 := off00 + 3
			off01 := ((2*y+1)*src.Width + 2*x) * 3
			off11 := off01 + 3

			dstOff := (y*dst.Width + x) * 3
			for ch := 0; ch < 3; ch++ {
				sum := uint16(src.Pix[off00+ch]) +
					uint16(src.Pix[off10+ch]) +
					uint16(src.Pix[off01+ch]) +
					uint16(src.Pix[off11+ch])
				dst.Pix[dstOff+ch] = uint8(sum / 4)
			}
		}
	}

	return dst, nil
}

package resample

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/rrepka10/imgResample/internal/ir"
)

// ErrDegenerateSize is returned when a requested scale factor truncates
// a destination dimension to zero.
var ErrDegenerateSize = errors.New("destination dimension is zero")

// maxDimension bounds destination sizing so a wild scale factor cannot
// demand an absurd allocation.
const maxDimension = 1 << 24

// sampleBicubic computes one output pixel for normalized coordinates
// u,v in [0,1). The coordinates map to source pixel centers via
// x = u*width - 0.5, then each channel is interpolated from the 4x4
// neighborhood around (x,y): a cubic pass across each of the four rows
// at the x fraction, then one cubic pass down the column at the y
// fraction. Out-of-range neighborhood reads are border-clamped.
func sampleBicubic(src *ir.Image, u, v float64) (uint8, uint8, uint8) {
	x := u*float64(src.Width) - 0.5
	xint := int(math.Floor(x))
	xfract := x - math.Floor(x)

	y := v*float64(src.Height) - 0.5
	yint := int(math.Floor(y))
	yfract := y - math.Floor(y)

	// Gather the 4x4 neighborhood at offsets {-1,0,1,2} in both axes.
	var p [4][4][3]uint8
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r, g, b := src.ClampedAt(xint+col-1, yint+row-1)
			p[row][col] = [3]uint8{r, g, b}
		}
	}

	var out [3]uint8
	for ch := 0; ch < 3; ch++ {
		col0 := cubicHermite(float64(p[0][0][ch]), float64(p[0][1][ch]), float64(p[0][2][ch]), float64(p[0][3][ch]), xfract)
		col1 := cubicHermite(float64(p[1][0][ch]), float64(p[1][1][ch]), float64(p[1][2][ch]), float64(p[1][3][ch]), xfract)
		col2 := cubicHermite(float64(p[2][0][ch]), float64(p[2][1][ch]), float64(p[2][2][ch]), float64(p[2][3][ch]), xfract)
		col3 := cubicHermite(float64(p[3][0][ch]), float64(p[3][1][ch]), float64(p[3][2][ch]), float64(p[3][3][ch]), xfract)

		value := cubicHermite(col0, col1, col2, col3, yfract)

		if value < 0 {
			value = 0
		} else if value > 255 {
			value = 255
		}
		out[ch] = uint8(value)
	}
	return out[0], out[1], out[2]
}

// ResizeFactor resamples src by a positive scale factor using bicubic
// interpolation. Destination dimensions are floor(srcW*factor) x
// floor(srcH*factor); a factor that truncates either dimension to zero
// is rejected with ErrDegenerateSize.
//
// workers > 1 fills destination rows concurrently with at most that
// many goroutines; the output is identical to the sequential fill since
// every destination pixel is computed independently.
func ResizeFactor(src *ir.Image, factor float64, workers int) (*ir.Image, error) {
	dstW := int(float64(src.Width) * factor)
	dstH := int(float64(src.Height) * factor)
	if dstW < 1 || dstH < 1 {
		return nil, fmt.Errorf("scale %g of %dx%d source: %w", factor, src.Width, src.Height, ErrDegenerateSize)
	}
	if dstW > maxDimension || dstH > maxDimension {
		return nil, fmt.Errorf("scale %g of %dx%d source: destination %dx%d too large", factor, src.Width, src.Height, dstW, dstH)
	}

	dst, err := ir.New(dstW, dstH)
	if err != nil {
		return nil, err
	}

	fillRow := func(y int) {
		v := 0.0
		if dstH > 1 {
			v = float64(y) / float64(dstH-1)
		}
		for x := 0; x < dstW; x++ {
			u := 0.0
			if dstW > 1 {
				u = float64(x) / float64(dstW-1)
			}
			r, g, b := sampleBicubic(src, u, v)
			dst.Set(x, y, r, g, b)
		}
	}

	if workers > 1 {
		var grp errgroup.Group
		grp.SetLimit(workers)
		for y := 0; y < dstH; y++ {
			y := y
			grp.Go(func() error {
				fillRow(y)
				return nil
			})
		}
		// Row fills cannot fail; Wait only joins the goroutines.
		_ = grp.Wait()
	} else {
		for y := 0; y < dstH; y++ {
			fillRow(y)
		}
	}

	return dst, nil
}

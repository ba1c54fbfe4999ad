package ir

import "fmt"

// Image is the intermediate representation passed between the PPM codec
// and the resampling stage. Pixels are stored as interleaved R,G,B bytes
// (3 bytes per pixel, row-major order).
type Image struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 3
}

// New allocates an image with exactly Width*Height*3 pixel bytes.
// Both dimensions must be at least 1.
func New(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}, nil
}

// At returns the channels of pixel (x,y). The coordinates must be in
// bounds; use ClampedAt for arbitrary coordinates.
func (img *Image) At(x, y int) (r, g, b uint8) {
	off := (y*img.Width + x) * 3
	return img.Pix[off], img.Pix[off+1], img.Pix[off+2]
}

// Set stores the channels of pixel (x,y).
func (img *Image) Set(x, y int, r, g, b uint8) {
	off := (y*img.Width + x) * 3
	img.Pix[off] = r
	img.Pix[off+1] = g
	img.Pix[off+2] = b
}

// ClampedAt returns the pixel at (x,y) with both coordinates clamped
// into the image independently (replicate-border policy). It accepts
// any integer coordinates and never indexes outside Pix, which lets the
// bicubic gather read past the edges without special cases.
func (img *Image) ClampedAt(x, y int) (r, g, b uint8) {
	if x < 0 {
		x = 0
	} else if x > img.Width-1 {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y > img.Height-1 {
		y = img.Height - 1
	}
	return img.At(x, y)
}

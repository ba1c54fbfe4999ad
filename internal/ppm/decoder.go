package ppm

import (
	"fmt"
	"strconv"

	"github.com/rrepka10/imgResample/internal/ir"
)

const (
	// magic identifies the binary (raw) RGB PPM variant.
	magic = "P6"
	// maxComponentValue is the only supported per-channel maximum;
	// the pixel block is always 8 bits per channel.
	maxComponentValue = 255

	maxDimension = 1 << 24 // sanity bound on parsed width/height
)

// FormatError describes a malformed or unsupported PPM stream.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "ppm: " + e.Reason }

func formatErrf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// header holds the parsed ASCII preamble of a P6 stream.
type header struct {
	width    int
	height   int
	maxValue int
	// pixelOffset is the index of the first raw pixel byte.
	pixelOffset int
}

type headerParser struct {
	data []byte
	pos  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// skipSpaceAndComments advances past whitespace and '#' comment lines,
// which the format allows between any two header tokens.
func (p *headerParser) skipSpaceAndComments() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isSpace(c):
			p.pos++
		case c == '#':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// nextInt parses the next decimal header field.
func (p *headerParser) nextInt(field string) (int, error) {
	p.skipSpaceAndComments()
	start := p.pos
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, formatErrf("missing or malformed %s field", field)
	}
	n, err := strconv.Atoi(string(p.data[start:p.pos]))
	if err != nil || n > maxDimension {
		return 0, formatErrf("%s field out of range", field)
	}
	return n, nil
}

// parseHeader validates the magic and reads width, height and the
// per-channel maximum. On return pixelOffset points just past the
// single whitespace byte that terminates the header.
func parseHeader(data []byte) (header, error) {
	var hdr header

	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return hdr, formatErrf("invalid image format (must be %q)", magic)
	}
	p := headerParser{data: data, pos: len(magic)}

	var err error
	if hdr.width, err = p.nextInt("width"); err != nil {
		return hdr, err
	}
	if hdr.height, err = p.nextInt("height"); err != nil {
		return hdr, err
	}
	if hdr.width < 1 || hdr.height < 1 {
		return hdr, formatErrf("invalid image size %dx%d", hdr.width, hdr.height)
	}
	if hdr.maxValue, err = p.nextInt("max value"); err != nil {
		return hdr, err
	}
	if hdr.maxValue != maxComponentValue {
		return hdr, formatErrf("unsupported max value %d (only %d-max RGB supported)", hdr.maxValue, maxComponentValue)
	}

	// Exactly one whitespace byte separates the max value from the
	// raw pixel block; anything else would eat pixel data.
	if p.pos >= len(data) || !isSpace(data[p.pos]) {
		return hdr, formatErrf("missing whitespace after max value")
	}
	hdr.pixelOffset = p.pos + 1

	return hdr, nil
}

// Decode parses a binary PPM (P6) stream into a pixel buffer.
func Decode(data []byte) (*ir.Image, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	need := hdr.width * hdr.height * 3
	if len(data)-hdr.pixelOffset < need {
		return nil, formatErrf("truncated pixel block: need %d bytes, have %d",
			need, len(data)-hdr.pixelOffset)
	}

	img, err := ir.New(hdr.width, hdr.height)
	if err != nil {
		return nil, err
	}
	copy(img.Pix, data[hdr.pixelOffset:hdr.pixelOffset+need])
	return img, nil
}

package ppm

import (
	"bytes"
	"fmt"

	"github.com/rrepka10/imgResample/internal/ir"
)

// creator is the name embedded in the generated-by comment, kept for
// byte compatibility with output produced by earlier versions.
const creator = "FELIXKLEMM"

// Encode serializes a pixel buffer as a binary PPM (P6) stream: magic,
// generated-by comment, width/height line, max value line, then the raw
// pixel block.
func Encode(img *ir.Image) []byte {
	var buf bytes.Buffer
	buf.Grow(len(img.Pix) + 64)

	fmt.Fprintf(&buf, "%s\n", magic)
	fmt.Fprintf(&buf, "# Created by %s\n", creator)
	fmt.Fprintf(&buf, "%d %d\n", img.Width, img.Height)
	fmt.Fprintf(&buf, "%d\n", maxComponentValue)
	buf.Write(img.Pix)

	return buf.Bytes()
}

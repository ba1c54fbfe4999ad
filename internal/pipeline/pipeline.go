package pipeline

import (
	"fmt"

	"github.com/rrepka10/imgResample/internal/ir"
	"github.com/rrepka10/imgResample/internal/ppm"
	"github.com/rrepka10/imgResample/internal/resample"
)

// Options controls one resample run.
type Options struct {
	Scale   Scale
	Workers int // bicubic fill goroutines; <= 1 runs sequentially
}

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded PPM
	SrcWidth  int
	SrcHeight int
	DstWidth  int
	DstHeight int
}

// Run executes the full pipeline: decode → resample → encode. The
// scale request selects the fixed 2x box downsample or the bicubic
// resampler. Source and destination buffers are owned here for the
// duration of the run and released together.
func Run(input []byte, opts Options) (*Result, error) {
	src, err := ppm.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var dst *ir.Image
	if opts.Scale.Half {
		dst, err = resample.DownsampleHalf(src)
	} else {
		dst, err = resample.ResizeFactor(src, opts.Scale.Factor, opts.Workers)
	}
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	return &Result{
		Data:      ppm.Encode(dst),
		SrcWidth:  src.Width,
		SrcHeight: src.Height,
		DstWidth:  dst.Width,
		DstHeight: dst.Height,
	}, nil
}

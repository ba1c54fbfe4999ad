package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rrepka10/imgResample/internal/pipeline"
	"github.com/rrepka10/imgResample/internal/resample"
)

// Exit codes. Usage errors keep the original tool's distinguished 99;
// everything fatal past argument validation exits 1.
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 99
)

var rootCmd = &cobra.Command{
	Use:   "imgresample <factor|2x> <input.ppm> <output.ppm>",
	Short: "Resample PPM images up or down with bicubic interpolation or a quick 2x downsample",
	Example: `  imgresample 0.5 in.ppm out.ppm
  imgresample 2x  in.ppm out.ppm`,
	Args:          checkResampleArgs,
	RunE:          runResample,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// usageError marks argument-count failures so main can map them to the
// usage exit code.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func checkResampleArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(3)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

// exitCode classifies an error from the command tree: bad arguments,
// unparseable scale specs and degenerate geometry are usage errors;
// everything else (I/O, format, allocation) is fatal.
func exitCode(err error) int {
	var ue *usageError
	var se *pipeline.BadScaleError
	switch {
	case errors.As(err, &ue), errors.As(err, &se),
		errors.Is(err, resample.ErrDegenerateSize),
		errors.Is(err, resample.ErrSourceTooSmall):
		return exitUsage
	default:
		return exitFatal
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

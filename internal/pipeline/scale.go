package pipeline

import (
	"fmt"
	"math"
	"strconv"
)

// fixedHalfToken is the literal (case-sensitive) scale spec selecting
// the fast 2x box-filter downsample.
const fixedHalfToken = "2x"

// BadScaleError reports a scale spec the user supplied that is not the
// fixed-half token or a positive finite number.
type BadScaleError struct {
	Spec string
}

func (e *BadScaleError) Error() string {
	return fmt.Sprintf("scale must be %q or a positive number, got %q", fixedHalfToken, e.Spec)
}

// Scale is a parsed scale request: either the fixed 2x downsample or an
// arbitrary positive factor.
type Scale struct {
	Half   bool
	Factor float64
}

// ParseScale validates a scale spec string. The literal "2x" selects
// the fixed downsample; anything else must parse as a finite factor
// greater than zero. A factor of exactly 1 is legal.
func ParseScale(spec string) (Scale, error) {
	if spec == fixedHalfToken {
		return Scale{Half: true}, nil
	}
	f, err := strconv.ParseFloat(spec, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return Scale{}, &BadScaleError{Spec: spec}
	}
	return Scale{Factor: f}, nil
}

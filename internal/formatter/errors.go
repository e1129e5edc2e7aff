package formatter

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidNumber is returned when a conversion or a running total stops being
// a finite number. It is never recovered locally.
var ErrInvalidNumber = errors.New("invalid numeric result")

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalid(what string, v float64) error {
	return fmt.Errorf("%s must be a finite number, got %v: %w", what, v, ErrInvalidNumber)
}

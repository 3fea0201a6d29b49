package spaced_repetition

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is returned for malformed qualities, timestamps, limits,
// catalogs or records that break their invariants.
// Check with errors.Is(err, spaced_repetition.ErrInvalidInput).
var ErrInvalidInput = errors.New("spaced_repetition: invalid input")

// CheckTime rejects unset and pre-epoch timestamps
func CheckTime(now time.Time, what string) error {
	if now.IsZero() {
		return fmt.Errorf("%w: %s time is not set", ErrInvalidInput, what)
	}
	if now.Before(time.Unix(0, 0)) {
		return fmt.Errorf("%w: %s time %s is before the epoch", ErrInvalidInput, what, now.Format(time.RFC3339))
	}
	return nil
}

// Package retry retries failing operations with exponential backoff.
package retry

import (
	"errors"
	"fmt"
	"time"
)

// Exported variables.
var (
	ErrNoAttempts = errors.New("at least one attempt is required")
)

// Do calls op until it succeeds or attempts run out. Between attempts it pauses with sleep,
// starting at backoff and doubling every time. The last error is returned.
func Do(op func() error, attempts int, backoff time.Duration, sleep func(time.Duration)) error {
	if attempts < 1 {
		return ErrNoAttempts
	}

	var err error

	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil || attempt == attempts {
			break
		}

		sleep(backoff)
		backoff *= 2
	}

	if err != nil {
		return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
	}

	return nil
}

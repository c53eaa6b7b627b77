package limits

import "errors"

var (
	// ErrLimitExceeded is the sentinel every Denial unwraps to.
	ErrLimitExceeded = errors.New("limit exceeded")

	// ErrNoCounterRegistered is returned by Check when no counter exists for
	// an enforced key. CheckCount never needs counters.
	ErrNoCounterRegistered = errors.New("no counter registered for limit key")

	// ErrFailedToCountUsage wraps counter failures.
	ErrFailedToCountUsage = errors.New("failed to count current usage")
)

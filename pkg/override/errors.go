package override

import "errors"

// ErrNoOverrideRow is returned when an organization has no override row.
// Equivalent to both deny-lists being empty.
var ErrNoOverrideRow = errors.New("no override row for organization")

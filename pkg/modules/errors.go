package modules

import "errors"

var (
	// ErrNoModuleRow is returned when an organization has no activation row
	// for a module. Callers treat it as "inactive", not as a failure.
	ErrNoModuleRow = errors.New("no module row for organization")

	// ErrUnknownModule is returned for slugs absent from the catalog.
	ErrUnknownModule = errors.New("unknown module slug")
)

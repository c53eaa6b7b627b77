package org

import "errors"

var (
	// ErrOrganizationNotFound is returned when no organization matches an identifier.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrInvalidIdentifier is returned when the identifier format is invalid.
	ErrInvalidIdentifier = errors.New("invalid organization identifier")

	// ErrNoOrganizationInContext is returned when a route requires an organization
	// and the context carries none.
	ErrNoOrganizationInContext = errors.New("no organization in context")

	// ErrInactiveOrganization is returned when the resolved organization is deactivated.
	ErrInactiveOrganization = errors.New("organization is inactive")
)

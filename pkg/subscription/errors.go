package subscription

import "errors"

var (
	// ErrSubscriptionNotFound is returned when an organization has no subscription row.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrPlanNotFound is returned for plan IDs absent from the catalog.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrFailedToLoadCatalog wraps catalog parse/read failures.
	ErrFailedToLoadCatalog = errors.New("failed to load plan catalog")
)

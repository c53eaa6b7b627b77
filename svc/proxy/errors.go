package proxy

import "errors"

var (
	ErrMissingSecret   = errors.New("required secret is not configured")
	ErrInvalidRequest  = errors.New("invalid request payload")
	ErrUpstreamFailure = errors.New("upstream request failed")
)

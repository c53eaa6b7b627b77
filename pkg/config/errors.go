package config

import "errors"

var (
	// ErrParsingConfig wraps env.Parse failures.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFiles wraps godotenv failures for explicit file paths.
	ErrLoadingEnvFiles = errors.New("failed to load env files")

	// ErrConfigNotLoaded means the cache lost a config it should hold.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer means Load was called with a nil destination.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

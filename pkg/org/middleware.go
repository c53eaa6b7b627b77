package org

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrorHandler handles errors raised during organization resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	cache         Cache
	cacheTTL      time.Duration
	errorHandler  ErrorHandler
	skipPaths     []string
	requireActive bool
	logger        *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithCache sets a custom cache implementation.
func WithCache(cache Cache) Option {
	return func(c *config) { c.cache = cache }
}

// WithCacheTTL sets how long resolved organizations stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) { c.cacheTTL = ttl }
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) { c.errorHandler = handler }
}

// WithSkipPaths sets path prefixes that bypass organization resolution.
func WithSkipPaths(paths []string) Option {
	return func(c *config) { c.skipPaths = paths }
}

// WithRequireActive controls whether deactivated organizations are rejected.
func WithRequireActive(require bool) Option {
	return func(c *config) { c.requireActive = require }
}

// WithLogger sets a logger for resolution failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Middleware resolves the organization identifier from each request, loads
// the organization through the provider (with caching) and attaches it to
// the request context. Requests without an identifier pass through with no
// organization attached; gates downstream treat that as "no org selected".
func Middleware(resolver Resolver, provider Provider, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		cache:         NewMemoryCache(),
		cacheTTL:      5 * time.Minute,
		errorHandler:  defaultErrorHandler,
		requireActive: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			identifier, err := resolver.Resolve(r)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
			if identifier == "" {
				next.ServeHTTP(w, r)
				return
			}

			if cached, ok := cfg.cache.Get(r.Context(), identifier); ok {
				if cfg.requireActive && !cached.Active {
					cfg.errorHandler(w, r, ErrInactiveOrganization)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithOrganization(r.Context(), cached)))
				return
			}

			o, err := provider.GetByIdentifier(r.Context(), identifier)
			if err != nil {
				if cfg.logger != nil && !errors.Is(err, ErrOrganizationNotFound) {
					cfg.logger.ErrorContext(r.Context(), "organization lookup failed",
						slog.String("identifier", identifier), slog.Any("error", err))
				}
				cfg.errorHandler(w, r, err)
				return
			}

			if cfg.requireActive && !o.Active {
				cfg.errorHandler(w, r, ErrInactiveOrganization)
				return
			}

			cfg.cache.Set(r.Context(), identifier, o, cfg.cacheTTL)
			next.ServeHTTP(w, r.WithContext(WithOrganization(r.Context(), o)))
		})
	}
}

// RequireOrganization rejects requests whose context carries no organization.
func RequireOrganization(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if o, ok := FromContext(r.Context()); !ok || o == nil {
				errorHandler(w, r, ErrNoOrganizationInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrOrganizationNotFound):
		http.Error(w, "Organization not found", http.StatusNotFound)
	case errors.Is(err, ErrInactiveOrganization):
		http.Error(w, "Organization is inactive", http.StatusForbidden)
	case errors.Is(err, ErrNoOrganizationInContext):
		http.Error(w, "Organization required", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidIdentifier):
		http.Error(w, "Invalid organization identifier", http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

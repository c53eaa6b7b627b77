package org

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type orgCtxKey struct{}

type superAdminCtxKey struct{}

// WithOrganization attaches an organization to the context.
func WithOrganization(ctx context.Context, o *Organization) context.Context {
	return context.WithValue(ctx, orgCtxKey{}, o)
}

// FromContext retrieves the organization from the context.
// Returns nil, false when no organization is attached.
func FromContext(ctx context.Context) (*Organization, bool) {
	o, ok := ctx.Value(orgCtxKey{}).(*Organization)
	return o, ok
}

// IDFromContext retrieves just the organization ID from the context.
// Returns the zero UUID and false when no organization is attached.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	o, ok := FromContext(ctx)
	if !ok || o == nil {
		return uuid.UUID{}, false
	}
	return o.ID, true
}

// WithSuperAdmin marks the context as belonging to a super-admin session.
// Gates that honor the flag bypass per-organization checks.
func WithSuperAdmin(ctx context.Context, isSuperAdmin bool) context.Context {
	return context.WithValue(ctx, superAdminCtxKey{}, isSuperAdmin)
}

// IsSuperAdmin reports whether the context carries the super-admin flag.
func IsSuperAdmin(ctx context.Context) bool {
	flag, _ := ctx.Value(superAdminCtxKey{}).(bool)
	return flag
}

// LoggerExtractor returns a logger context extractor that injects the
// current organization ID into every log record when present.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("org_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}

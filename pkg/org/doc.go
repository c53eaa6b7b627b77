// Package org carries the current organization through request handling.
//
// A multi-tenant request is always scoped to one organization. The package
// provides the Organization record, context helpers to attach and read it,
// HTTP resolvers that extract the org identifier from a request (header,
// subdomain or path segment), and middleware that loads the organization
// from a Provider with short-lived caching.
//
// There is deliberately no package-level current organization: every
// consumer receives the org via context.Context, so tests can construct any
// tenancy they need without shared state.
//
// The super-admin flag travels in the context as well. Gates that honor it
// (see pkg/modules) bypass per-organization checks when it is set.
//
// # Usage
//
//	resolver := org.NewHeaderResolver("X-Org-ID")
//	mux := org.Middleware(resolver, provider)(handler)
//
//	// inside a handler
//	o, ok := org.FromContext(r.Context())
package org

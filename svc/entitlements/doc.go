// Package entitlements exposes the plan-limit, module and usage gates as a
// read-only JSON API for the dashboard. Every route requires an
// organization in the request context, put there by the org middleware; the
// handlers only translate gate answers to JSON and never enforce anything
// themselves.
package entitlements

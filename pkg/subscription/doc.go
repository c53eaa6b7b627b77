// Package subscription holds the billing-side records the rest of the
// application reads: each organization's subscription (plan reference,
// status, per-org custom limit overrides) and the immutable plan-limit
// catalog seeded by an operator.
//
// Subscriptions are never physically deleted; lifecycle is expressed through
// status transitions (active, trialing, past_due, cancelled, expired).
//
// The package exposes a Store for subscriptions and a LimitSource for the
// plan-limit catalog, with Postgres implementations for production and
// in-memory ones for tests. The actual enforcement logic lives in
// pkg/limits, which consumes both interfaces.
package subscription

// Package realtime pushes row-change events (campaign status, call logs) to
// in-process consumers.
//
// A Hub fans out Events per table. Delivery order is guaranteed only within
// a single table's stream; events from two tables may interleave in any
// order relative to each other, and consumers must reduce them into state
// accordingly.
//
// Subscriptions are scoped to a context: cancellation tears the
// subscription down and no channel outlives it. Close is idempotent. Slow
// consumers have events dropped rather than blocking publishers.
//
// SubscribeCampaign is the domain helper: one feed per campaign identifier,
// watching the campaign row and its call-log rows.
package realtime

package realtime

// EventType mirrors the database change kinds.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Watched tables.
const (
	TableCampaigns     = "campaigns"
	TableCampaignCalls = "campaign_calls"
)

// Event is one row change. Row carries the new row's columns (for deletes,
// the old row's identifying columns).
type Event struct {
	Table string         `json:"table"`
	Type  EventType      `json:"type"`
	Row   map[string]any `json:"row"`
}

// Filter decides whether a subscriber receives an event. A nil Filter
// receives everything on the table.
type Filter func(Event) bool

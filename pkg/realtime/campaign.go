package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CampaignFeed is one campaign's change feed: the campaign row itself plus
// its call-log rows. Order is guaranteed within each stream, not across
// the two.
type CampaignFeed struct {
	campaign Subscriber
	calls    Subscriber
}

// SubscribeCampaign opens one feed per campaign identifier. The feed ends
// with ctx; Close is idempotent.
func SubscribeCampaign(ctx context.Context, hub *Hub, campaignID uuid.UUID) *CampaignFeed {
	id := campaignID.String()
	return &CampaignFeed{
		campaign: hub.Subscribe(ctx, TableCampaigns, matchColumn("id", id)),
		calls:    hub.Subscribe(ctx, TableCampaignCalls, matchColumn("campaign_id", id)),
	}
}

// CampaignEvents streams changes to the campaign row.
func (f *CampaignFeed) CampaignEvents() <-chan Event {
	return f.campaign.Events()
}

// CallEvents streams changes to the campaign's call logs.
func (f *CampaignFeed) CallEvents() <-chan Event {
	return f.calls.Events()
}

// Close tears both subscriptions down.
func (f *CampaignFeed) Close() error {
	_ = f.campaign.Close()
	return f.calls.Close()
}

// matchColumn filters events whose row column equals value, compared as
// strings so UUID and string payloads both match.
func matchColumn(column, value string) Filter {
	return func(e Event) bool {
		v, ok := e.Row[column]
		if !ok {
			return false
		}
		return fmt.Sprint(v) == value
	}
}

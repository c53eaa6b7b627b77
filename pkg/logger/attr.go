package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". Nil yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// OrgID records the organization identifier under "org_id".
func OrgID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("org_id", id)
}

// PlanID records the billing plan identifier under "plan_id".
func PlanID(id string) slog.Attr {
	return slog.String("plan_id", id)
}

// CampaignID records the campaign identifier under "campaign_id".
func CampaignID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("campaign_id", id)
}

// Metric records a usage metric name under "metric".
func Metric(name string) slog.Attr {
	return slog.String("metric", name)
}

// Module records a feature module slug under "module".
func Module(slug string) slog.Attr {
	return slog.String("module", slug)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

package entitlements

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nikitanikist/saleshub/pkg/limits"
	"github.com/nikitanikist/saleshub/pkg/logger"
	"github.com/nikitanikist/saleshub/pkg/modules"
	"github.com/nikitanikist/saleshub/pkg/org"
	"github.com/nikitanikist/saleshub/pkg/override"
	"github.com/nikitanikist/saleshub/pkg/subscription"
	"github.com/nikitanikist/saleshub/pkg/usage"
)

// Service answers entitlement queries for the organization in context.
type Service struct {
	limitGate    *limits.Gate
	moduleGate   *modules.Gate
	overrideGate *override.Gate
	aggregator   *usage.Aggregator
	log          *slog.Logger
}

// New creates the entitlements service. All gates are required.
func New(limitGate *limits.Gate, moduleGate *modules.Gate, overrideGate *override.Gate, aggregator *usage.Aggregator, log *slog.Logger) *Service {
	if limitGate == nil || moduleGate == nil || overrideGate == nil || aggregator == nil {
		panic("entitlements: all gates and the aggregator are required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		limitGate:    limitGate,
		moduleGate:   moduleGate,
		overrideGate: overrideGate,
		aggregator:   aggregator,
		log:          log,
	}
}

type usageResponse struct {
	TeamMembers        int64 `json:"team_members"`
	Groups             int64 `json:"groups"`
	CampaignsThisMonth int64 `json:"campaigns_this_month"`
	Integrations       int64 `json:"integrations"`
	Links              int64 `json:"links"`
}

// handleUsage reports the organization's current usage snapshot.
func (s *Service) handleUsage(w http.ResponseWriter, r *http.Request) {
	o, _ := org.FromContext(r.Context())
	snap, err := s.aggregator.Snapshot(r.Context(), o)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{
		TeamMembers:        snap.TeamMembers,
		Groups:             snap.Groups,
		CampaignsThisMonth: snap.CampaignsThisMonth,
		Integrations:       snap.Integrations,
		Links:              snap.Links,
	})
}

type limitResponse struct {
	Key      string `json:"key"`
	Current  int64  `json:"current"`
	Limit    int64  `json:"limit,omitempty"`
	Enforced bool   `json:"enforced"`
	Allowed  bool   `json:"allowed"`
	Message  string `json:"message,omitempty"`
}

// handleLimit reports current usage against the effective ceiling for one
// metric, plus whether creating one more resource would be allowed.
func (s *Service) handleLimit(w http.ResponseWriter, r *http.Request) {
	orgID, ok := org.IDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "organization required"})
		return
	}

	key := subscription.LimitKey(chi.URLParam(r, "key"))
	current, limit, enforced, err := s.limitGate.Usage(r.Context(), orgID, key)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := limitResponse{
		Key:      string(key),
		Current:  current,
		Limit:    limit,
		Enforced: enforced,
		Allowed:  true,
	}
	if err := s.limitGate.Check(r.Context(), orgID, key); err != nil {
		var denial *limits.Denial
		if errors.As(err, &denial) {
			resp.Allowed = false
			resp.Message = denial.Message()
		} else if !errors.Is(err, limits.ErrNoCounterRegistered) {
			s.fail(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type moduleResponse struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
	Enabled   bool   `json:"enabled"`
	Available bool   `json:"available"`
}

// handleModules lists the catalog with per-org activation, folding the
// feature-override deny-list into availability.
func (s *Service) handleModules(w http.ResponseWriter, r *http.Request) {
	states, err := s.moduleGate.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]moduleResponse, 0, len(states))
	for _, st := range states {
		available, err := override.ModuleAvailable(r.Context(), s.moduleGate, s.overrideGate, st.Module.Slug)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		out = append(out, moduleResponse{
			Slug:      string(st.Module.Slug),
			Name:      st.Module.Name,
			IsPremium: st.Module.IsPremium,
			Enabled:   st.Enabled,
			Available: available,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleModuleConfig returns a module's per-org configuration. Readable
// even when the module is disabled, so settings screens survive a toggle.
func (s *Service) handleModuleConfig(w http.ResponseWriter, r *http.Request) {
	slug := modules.Slug(chi.URLParam(r, "slug"))
	cfg, ok, err := s.moduleGate.Config(r.Context(), slug)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "module not configured"})
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "entitlements query failed", logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Router mounts the entitlement routes. Callers wrap it with the org
// middleware; the handlers assume it already ran.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Get("/usage", svc.handleUsage)
	r.Get("/limits/{key}", svc.handleLimit)
	r.Get("/modules", svc.handleModules)
	r.Get("/modules/{slug}/config", svc.handleModuleConfig)
	return r
}

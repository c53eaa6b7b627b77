// Package stream pushes campaign change feeds to the browser over
// server-sent events. One connection per campaign; the feed closes when
// the client goes away.
package stream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nikitanikist/saleshub/pkg/logger"
	"github.com/nikitanikist/saleshub/pkg/realtime"
)

// Service streams hub events to SSE clients.
type Service struct {
	hub *realtime.Hub
	log *slog.Logger
}

// New creates the stream service. The hub is required.
func New(hub *realtime.Hub, log *slog.Logger) *Service {
	if hub == nil {
		panic("stream: hub is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{hub: hub, log: log}
}

// HandleCampaignEvents streams one campaign's changes (the campaign row
// and its call logs) as SSE. Events within each table arrive in order; the
// two streams may interleave.
func (s *Service) HandleCampaignEvents(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	feed := realtime.SubscribeCampaign(r.Context(), s.hub, campaignID)
	defer feed.Close()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, open := <-feed.CampaignEvents():
			if !open {
				return
			}
			s.write(w, flusher, "campaign", e)
		case e, open := <-feed.CallEvents():
			if !open {
				return
			}
			s.write(w, flusher, "call", e)
		}
	}
}

func (s *Service) write(w http.ResponseWriter, flusher http.Flusher, name string, e realtime.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		s.log.Error("failed to encode stream event", logger.Error(err))
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
	flusher.Flush()
}

// Router mounts the stream routes.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Get("/campaigns/{campaignID}/events", svc.HandleCampaignEvents)
	return r
}

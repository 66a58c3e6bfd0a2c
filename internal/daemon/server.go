package daemon

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/internal/cache"
	"github.com/yairfalse/onevision/internal/inventory"
	"github.com/yairfalse/onevision/pkg/metric"
	"github.com/yairfalse/onevision/pkg/resource"
)

// Querier answers the read API.
type Querier interface {
	Find(ctx context.Context, f resource.Filter) (cache.Entry, error)
	DashboardMetrics(ctx context.Context) ([]metric.Metric, error)
	Summary(ctx context.Context) (inventory.Summary, error)
}

type resourcesResponse struct {
	Resources []resource.Resource `json:"resources"`
	Partial   bool                `json:"partial"`
	FetchedAt time.Time           `json:"fetchedAt,omitzero"`
}

// NewHandler routes health, metrics and the read API. metrics may be nil.
func NewHandler(d *Daemon, q Querier, metrics http.Handler, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, d.Health(), log)
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, _ *http.Request) {
		if !d.Ready() {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("inventory not loaded"))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	mux.HandleFunc("GET /api/resources", func(w http.ResponseWriter, r *http.Request) {
		f := resource.Filter{
			Kind:      resource.Kind(r.URL.Query().Get("type")),
			Region:    r.URL.Query().Get("region"),
			AccountID: r.URL.Query().Get("account"),
		}
		e, err := q.Find(r.Context(), f)
		if err != nil {
			writeError(w, err, log)
			return
		}
		resp := resourcesResponse{Resources: e.Resources, Partial: e.Partial, FetchedAt: e.FetchedAt}
		if resp.Resources == nil {
			resp.Resources = []resource.Resource{}
		}
		writeJSON(w, http.StatusOK, resp, log)
	})
	mux.HandleFunc("GET /api/metrics", func(w http.ResponseWriter, r *http.Request) {
		ms, err := q.DashboardMetrics(r.Context())
		if err != nil {
			writeError(w, err, log)
			return
		}
		if ms == nil {
			ms = []metric.Metric{}
		}
		writeJSON(w, http.StatusOK, ms, log)
	})
	mux.HandleFunc("GET /api/summary", func(w http.ResponseWriter, r *http.Request) {
		sum, err := q.Summary(r.Context())
		if err != nil {
			writeError(w, err, log)
			return
		}
		writeJSON(w, http.StatusOK, sum, log)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any, log zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, err error, log zerolog.Logger) {
	log.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()}, log)
}

// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"net/http"
	"strconv"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

const (
	defaultOutcomeLimit = 100
	// ServiceName is the health service name reported by the claimer.
	ServiceName = "unlockclaimer.Claimer"
)

// OutcomeView is the REST representation of a resource outcome.
type OutcomeView struct {
	CycleID         string        `json:"cycle_id"`
	Network         string        `json:"network"`
	ResourceID      string        `json:"resource_id"`
	Status          string        `json:"status"`
	Attempts        int           `json:"attempts"`
	FinalFee        int64         `json:"final_fee"`
	TransactionHash string        `json:"tx_hash,omitempty"`
	Category        string        `json:"category,omitempty"`
	Error           string        `json:"error,omitempty"`
	UnlockAt        time.Time     `json:"unlock_at"`
	StartedAt       time.Time     `json:"started_at"`
	FinishedAt      time.Time     `json:"finished_at"`
	History         []AttemptView `json:"history,omitempty"`
}

// AttemptView is the REST representation of one submitted copy.
type AttemptView struct {
	TransactionHash string    `json:"tx_hash"`
	Endpoint        string    `json:"endpoint"`
	Attempt         int       `json:"attempt"`
	Copy            int       `json:"copy"`
	Fee             int64     `json:"fee"`
	Outcome         string    `json:"outcome"`
	Category        string    `json:"category,omitempty"`
	Code            string    `json:"code,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

func newOutcomeView(o model.Outcome) OutcomeView {
	v := OutcomeView{
		CycleID:         o.CycleID,
		Network:         string(o.Network),
		ResourceID:      o.ResourceID,
		Status:          string(o.Status),
		Attempts:        o.Attempts,
		FinalFee:        o.FinalFee,
		TransactionHash: o.TransactionHash,
		Category:        string(o.Category),
		Error:           o.Error,
		UnlockAt:        o.UnlockAt,
		StartedAt:       o.StartedAt,
		FinishedAt:      o.FinishedAt,
	}
	for _, a := range o.History {
		v.History = append(v.History, AttemptView{
			TransactionHash: a.TransactionHash,
			Endpoint:        a.Endpoint,
			Attempt:         a.Attempt,
			Copy:            a.Copy,
			Fee:             a.Fee,
			Outcome:         string(a.Outcome),
			Category:        string(a.Category),
			Code:            a.Code,
			Timestamp:       a.Timestamp,
		})
	}
	return v
}

// StatusHandler serves the REST status routes.
type StatusHandler struct {
	journal   OutcomeJournal
	health    healthpb.HealthServer
	mux       *gwruntime.ServeMux
	marshaler gwruntime.Marshaler
}

// NewStatusHandler registers the status routes on a new gateway mux.
func NewStatusHandler(journal OutcomeJournal, healthServer *health.Server) (*StatusHandler, error) {
	h := &StatusHandler{
		journal:   journal,
		health:    healthServer,
		mux:       gwruntime.NewServeMux(),
		marshaler: &gwruntime.JSONPb{},
	}
	routes := []struct {
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{pattern: "/v1/health", handler: h.handleHealth},
		{pattern: "/v1/outcomes", handler: h.handleListOutcomes},
		{pattern: "/v1/outcomes/{resource_id}", handler: h.handleGetOutcome},
	}
	for _, route := range routes {
		if err := h.mux.HandlePath(http.MethodGet, route.pattern, route.handler); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *StatusHandler) handleHealth(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	resp, err := h.health.Check(r.Context(), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		h.fail(r.Context(), w, r, err)
		return
	}
	code := http.StatusOK
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		code = http.StatusServiceUnavailable
	}
	h.write(w, code, resp)
}

func (h *StatusHandler) handleListOutcomes(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	limit := defaultOutcomeLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.fail(r.Context(), w, r, status.Errorf(codes.InvalidArgument, "limit must be a positive integer, got %q", raw))
			return
		}
		limit = parsed
	}

	outcomes := h.journal.List(limit)
	views := make([]OutcomeView, 0, len(outcomes))
	for _, o := range outcomes {
		views = append(views, newOutcomeView(o))
	}
	h.write(w, http.StatusOK, views)
}

func (h *StatusHandler) handleGetOutcome(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id := params["resource_id"]
	o, ok := h.journal.Get(id)
	if !ok {
		h.fail(r.Context(), w, r, status.Errorf(codes.NotFound, "no outcome recorded for %s", id))
		return
	}
	h.write(w, http.StatusOK, newOutcomeView(o))
}

func (h *StatusHandler) write(w http.ResponseWriter, code int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (h *StatusHandler) fail(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	gwruntime.HTTPError(ctx, h.mux, h.marshaler, w, r, err)
}

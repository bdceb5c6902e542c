// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/framegraph/internal/telemetry"
	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/tfgraph"
)

type transformResponse struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Time   *float64      `json:"t,omitempty"`
	Path   []string      `json:"path"`
	Matrix [4][4]float64 `json:"matrix"` // row-major
}

type errorResponse struct {
	Error string `json:"error"`
}

// queryHandler serializes access to a graph, which is not safe for
// concurrent use.
type queryHandler struct {
	mu     sync.Mutex
	g      *tfgraph.Graph
	logger *slog.Logger
}

func newMux(g *tfgraph.Graph, reg prometheus.Gatherer, logger *slog.Logger) *http.ServeMux {
	h := &queryHandler{g: g, logger: logger}
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", telemetry.Handler(reg))
	mux.HandleFunc("GET /v1/transform", h.transform)
	return mux
}

func (h *queryHandler) transform(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "from and to are required"})
		return
	}
	resp := transformResponse{From: from, To: to}
	if raw := q.Get("t"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "t: " + err.Error()})
			return
		}
		resp.Time = &t
	}

	h.mu.Lock()
	var (
		m   mgl64.Mat4
		err error
	)
	if resp.Time != nil {
		m, err = h.g.GetTransformAt(from, to, *resp.Time)
	} else {
		m, err = h.g.GetTransform(from, to)
	}
	if err == nil {
		resp.Path, err = h.g.Path(from, to)
	}
	h.mu.Unlock()

	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, tfgraph.ErrNoPath) {
			status = http.StatusNotFound
		}
		h.logger.Debug("transform query failed", "from", from, "to", to, "err", err)
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	vals := rigid.RowMajor(m)
	for r := 0; r < 4; r++ {
		copy(resp.Matrix[r][:], vals[r*4:r*4+4])
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

package api

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// DictionaryStatsParams are the query parameters of GET /dictionary.
type DictionaryStatsParams struct {
	// Length restricts the counts to words of this length.
	Length *int `form:"length,omitempty" json:"length,omitempty"`
}

// DictionaryStats is the body of GET /dictionary.
type DictionaryStats struct {
	TotalWords int         `json:"total_words"`
	Lengths    map[int]int `json:"lengths"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// GetDictionaryStats handles GET /dictionary.
func (s *Server) GetDictionaryStats(w http.ResponseWriter, r *http.Request) {
	var params DictionaryStatsParams
	if err := runtime.BindQueryParameter("form", true, false, "length", r.URL.Query(), &params.Length); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter length: %s", err))
		return
	}

	if !s.available(w) {
		return
	}

	stats := DictionaryStats{TotalWords: s.store.Len()}
	if params.Length != nil {
		stats.Lengths = map[int]int{*params.Length: s.store.WithLength(*params.Length).Len()}
	} else {
		stats.Lengths = s.store.LengthCounts()
	}

	writeJSON(w, http.StatusOK, stats)
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.store.IsEmpty() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Words: s.store.Len()})
}

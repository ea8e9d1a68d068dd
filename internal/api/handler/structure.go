package handler

import (
	"net/http"
	"strconv"

	"github.com/hyperoxo/hyperoxo/internal/api/apierr"
	"github.com/hyperoxo/hyperoxo/internal/hypercube"
)

// StructureHandler serves board-structure inspection queries
type StructureHandler struct{}

// NewStructureHandler creates a structure handler
func NewStructureHandler() *StructureHandler {
	return &StructureHandler{}
}

// StructureResponse describes the combinatorics of a board h(d, n)
type StructureResponse struct {
	Dimensions int `json:"dimensions"`
	Size       int `json:"size"`
	Cells      int `json:"cells"`
	Lines      int `json:"lines"`
	// SpanCounts[m-1] is the number of lines spanning m dimensions
	SpanCounts []int       `json:"span_counts"`
	ScopeSizes map[int]int `json:"scope_sizes"`
}

// Get handles GET /api/v1/structure?d=...&n=...
func (h *StructureHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := strconv.Atoi(r.URL.Query().Get("d"))
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("query parameter d must be an integer"))
		return
	}
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("query parameter n must be an integer"))
		return
	}

	structure, err := hypercube.NewStructure(d, n)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	spans, _ := hypercube.SpanCounts(d, n)

	writeJSON(w, http.StatusOK, StructureResponse{
		Dimensions: d,
		Size:       n,
		Cells:      structure.Cells(),
		Lines:      structure.NumLines(),
		SpanCounts: spans,
		ScopeSizes: structure.ScopeSizes(),
	})
}

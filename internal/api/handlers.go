package api

import (
	"encoding/json"
	"net/http"

	"plotlab/internal/ash"
	"plotlab/internal/errors"
	"plotlab/internal/peirce"
)

// outlierRequest is the body of POST /api/outliers.
type outlierRequest struct {
	Data []float64 `json:"data"`
	// M is the number of unknown quantities; defaults to 1 (mean only).
	M *int `json:"m,omitempty"`
}

// outlierResponse mirrors peirce.Result with a diagnostic termination.
type outlierResponse struct {
	Accepted      []bool    `json:"accepted"`
	Rejected      []bool    `json:"rejected"`
	Filtered      []float64 `json:"filtered"`
	RejectedCount int       `json:"rejected_count"`
	Termination   string    `json:"termination"`
}

type ashRequest struct {
	Data []float64 `json:"data"`
}

type ashResponse struct {
	Mesh     []float64   `json:"mesh"`
	Density  []float64   `json:"density"`
	BinWidth float64     `json:"bin_width"`
	Summary  ash.Summary `json:"summary"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOutliers(w http.ResponseWriter, r *http.Request) {
	var req outlierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("request body must be JSON with a data array"))
		return
	}
	if len(req.Data) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("data must contain at least one value"))
		return
	}

	m := 1
	if req.M != nil {
		m = *req.M
	}
	if m < 0 {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("m must be non-negative"))
		return
	}

	result := peirce.Reject(req.Data, m)
	writeJSON(w, http.StatusOK, outlierResponse{
		Accepted:      result.Accepted,
		Rejected:      result.Rejected,
		Filtered:      result.Filtered,
		RejectedCount: result.RejectedCount(),
		Termination:   result.Termination.String(),
	})
}

func (s *Server) handleASH(w http.ResponseWriter, r *http.Request) {
	var req ashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("request body must be JSON with a data array"))
		return
	}

	den, err := ash.Compute(req.Data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	sum, err := ash.Summarize(req.Data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, ashResponse{
		Mesh:     den.Mesh,
		Density:  den.Values,
		BinWidth: den.BinWidth,
		Summary:  sum,
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Debug("api error: %v", err)
	writeJSON(w, status, errorResponse{
		Code:  errors.GetCode(err),
		Error: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package server

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/aquawatt/hydrocalc/internal/export"
	"github.com/aquawatt/hydrocalc/internal/hydro"
	"github.com/aquawatt/hydrocalc/internal/report"
)

// errorResponse is the JSON error body. Field is set for input
// validation failures so clients can highlight the offending input.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

const maxRequestBody = 1 << 20 // requests are a handful of numbers

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) int {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	return status
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) int {
	resp := errorResponse{Error: err.Error()}
	if ie, ok := hydro.AsInputError(err); ok {
		resp.Field = ie.Field
	}
	return s.writeJSON(w, status, resp)
}

// decodeParams reads and validates the request body into SiteParams.
func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request) (hydro.SiteParams, int, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		status := s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return hydro.SiteParams{}, status, false
	}

	var params hydro.SiteParams
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		status := s.writeError(w, http.StatusBadRequest, err)
		return hydro.SiteParams{}, status, false
	}
	return params, 0, true
}

// handleEstimate computes an estimate and returns the full result.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) int {
	params, status, ok := s.decodeParams(w, r)
	if !ok {
		return status
	}

	res, err := hydro.Estimate(params)
	if err != nil {
		return s.writeError(w, http.StatusBadRequest, err)
	}

	// MarshalResult keeps the infinity sentinels encodable.
	data, err := export.MarshalResult(res)
	if err != nil {
		s.logger.Error().Err(err).Msg("encoding result")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	return http.StatusOK
}

// handleReport computes an estimate and returns the text summary report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) int {
	params, status, ok := s.decodeParams(w, r)
	if !ok {
		return status
	}

	res, err := hydro.Estimate(params)
	if err != nil {
		return s.writeError(w, http.StatusBadRequest, err)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.Render(res, time.Now().UTC())))
	return http.StatusOK
}

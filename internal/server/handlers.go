package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/types"
)

var validate = validator.New()

// ExtractRequest is the body of POST /extract
type ExtractRequest struct {
	Text        string `json:"text" validate:"required"`
	UseFallback bool   `json:"use_fallback,omitempty"`
}

// ExtractResponse is returned for every processed document, valid or not
type ExtractResponse struct {
	RequestID string                  `json:"request_id"`
	Result    *types.ExtractionResult `json:"result"`
}

// ErrorResponse is returned for malformed requests
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// RateLimitResponse is returned with 429
type RateLimitResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Limit      int    `json:"limit"`
	Remaining  int    `json:"remaining"`
	ResetAt    string `json:"reset_at"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

// handleExtract runs the engine on the posted text. Fatal input conditions
// are reported through the result's validation report with status 200.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.errorResponse(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, "text is required")
		return
	}

	engine := s.engine
	if req.UseFallback {
		if s.fallback == nil {
			s.errorResponse(w, r, http.StatusBadRequest, "role fallback is not configured on this server")
			return
		}
		engine = s.fallback
	}

	result, err := engine.Process(r.Context(), req.Text)
	if err != nil {
		var inputErr *pipeline.InputError
		if !errors.As(err, &inputErr) {
			s.logger.Error("extraction failed", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
			s.errorResponse(w, r, http.StatusInternalServerError, "extraction failed")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, ExtractResponse{RequestID: RequestID(r.Context()), Result: result})
}

// handleHealth returns server health status with per-engine cache stats
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{
		"status": "ok",
		"caches": s.engine.CacheStats(),
	}
	if s.fallback != nil {
		body["fallback_caches"] = s.fallback.CacheStats()
	}
	s.jsonResponse(w, http.StatusOK, body)
}

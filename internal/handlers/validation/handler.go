package validation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/services/sqlvalidate"
	"gitlab.com/codecapsules.net/internal/core/services/validate"
	"gitlab.com/codecapsules.net/internal/domain"
	"gitlab.com/codecapsules.net/internal/handlers/response"
)

// ValidationHandler handles validation API requests
type ValidationHandler struct {
	validationService validate.IValidationService
	sqlService        sqlvalidate.ISQLValidationService
	logger            primary.Logger
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(
	validationService validate.IValidationService,
	sqlService sqlvalidate.ISQLValidationService,
	logger primary.Logger,
) *ValidationHandler {
	return &ValidationHandler{
		validationService: validationService,
		sqlService:        sqlService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for ValidationHandler
func (h *ValidationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/validate", h.ValidateSolution).Methods("POST")
	router.HandleFunc("/api/validate/sql", h.ValidateSQL).Methods("POST")
	router.HandleFunc("/api/run", h.RunCode).Methods("POST")
	router.HandleFunc("/health", h.Health).Methods("GET")
}

// ValidateSolution handles function/class validation requests
func (h *ValidationHandler) ValidateSolution(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode validate request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	solution := &domain.CandidateSolution{
		Language:     req.Language,
		SourceCode:   req.SourceCode,
		EntryPoint:   req.EntryPoint,
		IsClassBased: req.IsClassBased,
	}

	report, err := h.validationService.Validate(r.Context(), solution, req.TestCases)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	response.WriteSuccess(w, report)
}

// ValidateSQL handles SQL validation requests
func (h *ValidationHandler) ValidateSQL(w http.ResponseWriter, r *http.Request) {
	var req domain.SQLValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode sql validate request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	result, err := h.sqlService.Validate(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	response.WriteSuccess(w, result)
}

// RunCode handles ad-hoc execution requests
func (h *ValidationHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode run request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	if req.Language == "" || req.SourceCode == "" {
		response.WriteError(w, response.ErrorMessage{Message: "language and source_code are required", StatusCode: http.StatusBadRequest})
		return
	}

	result, err := h.validationService.Run(r.Context(), req.Language, req.SourceCode, req.Stdin, req.TimeoutSeconds, req.MemoryLimitMB)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	response.WriteSuccess(w, result)
}

// Health reports service liveness
func (h *ValidationHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]string{"status": "ok"})
}

func (h *ValidationHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrNoTestCases),
		errors.Is(err, validate.ErrMissingSolution),
		errors.Is(err, validate.ErrCodeTooLarge),
		errors.Is(err, validate.ErrUnknownLanguage),
		errors.Is(err, sqlvalidate.ErrMissingReference):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
	default:
		h.logger.Error("Validation request failed", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Validation failed", StatusCode: http.StatusInternalServerError})
	}
}

package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"gitlab.com/codecapsules.net/internal/core/services/validate"
	"gitlab.com/codecapsules.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type stubValidationService struct {
	report *domain.ValidationReport
	err    error
	result *domain.ExecutionResult
	runErr error
}

func (s *stubValidationService) Validate(ctx context.Context, solution *domain.CandidateSolution, records []interface{}) (*domain.ValidationReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func (s *stubValidationService) Run(ctx context.Context, language, code, stdin string, timeoutSeconds, memoryLimitMB int) (*domain.ExecutionResult, error) {
	if s.runErr != nil {
		return nil, s.runErr
	}
	return s.result, nil
}

type stubSQLService struct {
	result *domain.SQLValidationResult
	err    error
}

func (s *stubSQLService) Validate(ctx context.Context, req *domain.SQLValidationRequest) (*domain.SQLValidationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newRouter(validationSvc validate.IValidationService, sqlSvc *stubSQLService) *mux.Router {
	router := mux.NewRouter()
	NewValidationHandler(validationSvc, sqlSvc, nopLogger{}).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestValidateSolutionHappyPath(t *testing.T) {
	report := domain.NewValidationReport([]domain.TestVerdict{{Passed: true}})
	router := newRouter(&stubValidationService{report: report}, &stubSQLService{})

	rec := postJSON(t, router, "/api/validate", ValidateRequest{
		Language:   "python",
		SourceCode: "def add(a, b): return a + b",
		TestCases:  []interface{}{map[string]interface{}{"input_args": []interface{}{1, 2}}},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got domain.ValidationReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.AllPassed || got.TotalCount != 1 {
		t.Errorf("report = %+v", got)
	}
}

func TestValidateSolutionRequestErrorsMapTo400(t *testing.T) {
	for _, sentinel := range []error{
		validate.ErrMissingSolution,
		validate.ErrNoTestCases,
		validate.ErrCodeTooLarge,
	} {
		router := newRouter(&stubValidationService{err: sentinel}, &stubSQLService{})
		rec := postJSON(t, router, "/api/validate", ValidateRequest{Language: "python"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%v: status = %d, want 400", sentinel, rec.Code)
		}
	}
}

func TestValidateSolutionMalformedBody(t *testing.T) {
	router := newRouter(&stubValidationService{}, &stubSQLService{})

	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestValidateSQLHappyPath(t *testing.T) {
	router := newRouter(&stubValidationService{}, &stubSQLService{result: &domain.SQLValidationResult{
		State:   domain.SQLStateValidated,
		Success: true,
	}})

	rec := postJSON(t, router, "/api/validate/sql", domain.SQLValidationRequest{
		CandidateQuery: "SELECT 1",
		ReferenceQuery: "SELECT 1",
		SchemaSetup:    []string{"CREATE TABLE t (x INT)"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got domain.SQLValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.State != domain.SQLStateValidated || !got.Success {
		t.Errorf("result = %+v", got)
	}
}

func TestRunCodeRequiresLanguageAndSource(t *testing.T) {
	router := newRouter(&stubValidationService{result: &domain.ExecutionResult{Success: true}}, &stubSQLService{})

	rec := postJSON(t, router, "/api/run", RunRequest{Language: "python"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing source: status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, router, "/api/run", RunRequest{Language: "python", SourceCode: "print('hi')"})
	if rec.Code != http.StatusOK {
		t.Errorf("valid run: status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRunCodeUnknownLanguageIs400(t *testing.T) {
	router := newRouter(&stubValidationService{runErr: validate.ErrUnknownLanguage}, &stubSQLService{})

	rec := postJSON(t, router, "/api/run", RunRequest{Language: "fortran", SourceCode: "PRINT *, 'hi'"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newRouter(&stubValidationService{}, &stubSQLService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

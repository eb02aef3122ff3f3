package httpbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

// Hard ceilings enforced by the sandbox backend; requests are clamped before
// dispatch so the backend never rejects them for limit overruns.
const (
	maxTimeoutSeconds = 30
	maxMemoryMB       = 512

	tokenTTL = time.Minute
)

var _ secondary.ExecutionBackend = (*HTTPBackend)(nil)

// HTTPBackend talks to the sandboxed execution service over HTTP, one
// endpoint per language. Used by direct dispatch mode.
type HTTPBackend struct {
	client    *http.Client
	endpoints map[string]string
	signer    primary.TokenSigner
	logger    primary.Logger
}

// NewHTTPBackend creates a backend client. signer may be nil when the
// backend is unauthenticated.
func NewHTTPBackend(endpoints map[string]string, signer primary.TokenSigner, logger primary.Logger) *HTTPBackend {
	return &HTTPBackend{
		client:    &http.Client{},
		endpoints: endpoints,
		signer:    signer,
		logger:    logger,
	}
}

// executeRequest is the wire shape the sandbox backend consumes.
type executeRequest struct {
	SourceCode  string `json:"source_code"`
	Input       string `json:"input"`
	TimeLimit   int    `json:"time_limit"`
	MemoryLimit int    `json:"memory_limit"`
}

// executeResponse is the wire shape the sandbox backend produces.
// execution_time is reported in seconds.
type executeResponse struct {
	Success       bool    `json:"success"`
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	ExitCode      *int    `json:"exit_code,omitempty"`
	ExecutionTime float64 `json:"execution_time"`
	MemoryUsed    int64   `json:"memory_used,omitempty"`
	CompileOutput string  `json:"compile_output,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// Execute submits the job synchronously and decodes the backend's verdict.
func (b *HTTPBackend) Execute(ctx context.Context, job *domain.ExecutionJob) (*domain.ExecutionResult, error) {
	endpoint, ok := b.endpoints[job.Language]
	if !ok {
		return nil, fmt.Errorf("no execution endpoint configured for language %q", job.Language)
	}

	payload := executeRequest{
		SourceCode:  job.ProgramText,
		Input:       job.Stdin,
		TimeLimit:   clamp(job.TimeoutSeconds, maxTimeoutSeconds),
		MemoryLimit: clamp(job.MemoryLimitMB, maxMemoryMB),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build execution request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if b.signer != nil {
		token, err := b.signer.Mint(ctx, "execution-backend", tokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to mint service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execution backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		b.logger.Error("Execution backend returned non-success status",
			"jobId", job.ID,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("execution backend returned status %d: %s", resp.StatusCode, string(raw))
	}

	var decoded executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode execution response: %w", err)
	}

	return &domain.ExecutionResult{
		Success:         decoded.Success,
		Stdout:          decoded.Stdout,
		Stderr:          decoded.Stderr,
		ExitCode:        decoded.ExitCode,
		ExecutionTimeMs: int64(decoded.ExecutionTime * 1000),
		CompileOutput:   decoded.CompileOutput,
		Error:           decoded.Error,
	}, nil
}

func clamp(value, ceiling int) int {
	if value <= 0 || value > ceiling {
		return ceiling
	}
	return value
}

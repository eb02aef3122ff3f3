package sqljudgeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

var _ secondary.SQLJudge = (*RemoteSQLJudge)(nil)

// RemoteSQLJudge calls the external query-execution/diff endpoint. The
// endpoint runs both queries against a freshly seeded schema and reports
// row-set equality itself, so responses come back pre-judged.
type RemoteSQLJudge struct {
	client   *http.Client
	endpoint string
	logger   primary.Logger
}

// NewRemoteSQLJudge creates a client for the diff endpoint.
func NewRemoteSQLJudge(endpoint string, logger primary.Logger) *RemoteSQLJudge {
	return &RemoteSQLJudge{
		client:   &http.Client{},
		endpoint: endpoint,
		logger:   logger,
	}
}

type diffResponse struct {
	Success      bool         `json:"success"`
	ObservedRows []domain.Row `json:"observed_rows,omitempty"`
	ExpectedRows []domain.Row `json:"expected_rows,omitempty"`
	Columns      []string     `json:"columns,omitempty"`
	DiffMessage  string       `json:"diff_message,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// Judge forwards the validation request to the diff endpoint.
func (j *RemoteSQLJudge) Judge(ctx context.Context, req *domain.SQLValidationRequest) (*secondary.SQLJudgeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diff request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, j.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build diff request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := j.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sql diff endpoint request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		j.logger.Error("SQL diff endpoint returned non-success status", "status", resp.StatusCode)
		return nil, fmt.Errorf("sql diff endpoint returned status %d: %s", resp.StatusCode, string(raw))
	}

	var decoded diffResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode diff response: %w", err)
	}

	return &secondary.SQLJudgeResponse{
		Judged:       true,
		Success:      decoded.Success,
		ObservedRows: decoded.ObservedRows,
		ExpectedRows: decoded.ExpectedRows,
		Columns:      decoded.Columns,
		DiffMessage:  decoded.DiffMessage,
		Error:        decoded.Error,
	}, nil
}

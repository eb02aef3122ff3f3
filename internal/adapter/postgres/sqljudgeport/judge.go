package sqljudgeport

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

var _ secondary.SQLJudge = (*PostgresSQLJudge)(nil)

// PostgresSQLJudge runs schema setup plus both queries inside a single
// transaction that is always rolled back, so nothing the candidate does can
// leave data behind. It returns raw rows; the SQL validation service owns
// the comparison.
type PostgresSQLJudge struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewPostgresSQLJudge creates a new Postgres-backed judge.
func NewPostgresSQLJudge(db *sqlx.DB, logger primary.Logger) *PostgresSQLJudge {
	return &PostgresSQLJudge{db: db, logger: logger}
}

// Judge seeds the schema, runs the reference query, then the candidate
// query. Candidate SQL errors are reported in the response, not as errors.
func (j *PostgresSQLJudge) Judge(ctx context.Context, req *domain.SQLValidationRequest) (*secondary.SQLJudgeResponse, error) {
	tx, err := j.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Always roll back; the seeded schema is ephemeral.
	defer tx.Rollback()

	for _, statement := range req.SchemaSetup {
		if strings.TrimSpace(statement) == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return &secondary.SQLJudgeResponse{
				Error: fmt.Sprintf("schema setup failed: %v", err),
			}, nil
		}
	}

	expectedRows, columns, err := queryRows(ctx, tx, req.ReferenceQuery)
	if err != nil {
		return &secondary.SQLJudgeResponse{
			Error: fmt.Sprintf("reference query failed: %v", err),
		}, nil
	}

	resp := &secondary.SQLJudgeResponse{
		ExpectedRows: expectedRows,
		Columns:      columns,
	}

	if strings.TrimSpace(req.CandidateQuery) == "" {
		return resp, nil
	}

	observedRows, observedColumns, err := queryRows(ctx, tx, req.CandidateQuery)
	if err != nil {
		resp.Error = fmt.Sprintf("SQL error: %v", err)
		return resp, nil
	}
	resp.ObservedRows = observedRows
	resp.Columns = observedColumns
	return resp, nil
}

func queryRows(ctx context.Context, tx *sqlx.Tx, query string) ([]domain.Row, []string, error) {
	rows, err := tx.QueryxContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results []domain.Row
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, nil, err
		}
		// pq hands text columns back as []byte.
		for name, value := range row {
			if raw, ok := value.([]byte); ok {
				row[name] = string(raw)
			}
		}
		results = append(results, domain.Row(row))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return results, columns, nil
}

package postgres

import (
	"context"
	"fmt"

	"auditor/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	requestsTable        = "requests"
	analysisResultsTable = "analysis_results"
)

func (p *PgSQL) StoreRequest(ctx context.Context, request domain.Request) (*domain.Request, error) {
	var pgRequest PgRequest
	if err := pgRequest.FromDomain(request); err != nil {
		return nil, err
	}

	var row PgRequest
	found, err := p.Builder.Insert(requestsTable).
		Rows(pgRequest).
		Returning(&PgRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store request into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserRequests returns the newest request rows of a user.
func (p *PgSQL) UserRequests(ctx context.Context, userID domain.UserID, limit uint) ([]domain.Request, error) {
	var rows []PgRequest
	if err := p.Builder.From(requestsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user requests from pg: %w", err)
	}

	out := make([]domain.Request, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) StoreAnalysisResult(ctx context.Context,
	result domain.AnalysisResult) (*domain.AnalysisResult, error) {
	var pgResult PgAnalysisResult
	if err := pgResult.FromDomain(result); err != nil {
		return nil, err
	}

	var row PgAnalysisResult
	found, err := p.Builder.Insert(analysisResultsTable).
		Rows(pgResult).
		Returning(&PgAnalysisResult{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store analysis result into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AnalysisResultByID returns an analysis result by its ID.
func (p *PgSQL) AnalysisResultByID(ctx context.Context,
	id domain.AnalysisResultID) (*domain.AnalysisResult, error) {
	var row PgAnalysisResult
	found, err := p.Builder.From(analysisResultsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch analysis result by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AnalysisResultsByContractID returns the newest analysis results of a contract.
func (p *PgSQL) AnalysisResultsByContractID(ctx context.Context,
	contractID domain.ContractID,
	limit uint) ([]domain.AnalysisResult, error) {
	var rows []PgAnalysisResult
	if err := p.Builder.From(analysisResultsTable).
		Where(goqu.I("contract_id").Eq(uuid.UUID(contractID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch analysis results by contract id: %w", err)
	}

	out := make([]domain.AnalysisResult, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

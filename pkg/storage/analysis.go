package storage

import (
	"context"

	"auditor/pkg/domain"
)

// RequestStorage records AI request accounting rows. Every provider-backed
// operation stores exactly one request row alongside its result.
type RequestStorage interface {
	// StoreRequest inserts a request accounting row and returns the stored row.
	StoreRequest(ctx context.Context, request domain.Request) (*domain.Request, error)
	// UserRequests returns up to limit request rows of a user, newest first.
	UserRequests(ctx context.Context, userID domain.UserID, limit uint) ([]domain.Request, error)
}

// AnalysisStorage persists AI analysis results (security, optimization and
// deployment validation verdicts).
type AnalysisStorage interface {
	// StoreAnalysisResult inserts an analysis result and returns the stored row.
	StoreAnalysisResult(ctx context.Context, result domain.AnalysisResult) (*domain.AnalysisResult, error)
	// AnalysisResultByID fetches an analysis result by its ID. Returns nil when
	// not found.
	AnalysisResultByID(ctx context.Context, ID domain.AnalysisResultID) (*domain.AnalysisResult, error)
	// AnalysisResultsByContractID returns up to limit analysis results of a
	// contract, newest first.
	AnalysisResultsByContractID(ctx context.Context,
		contractID domain.ContractID,
		limit uint) ([]domain.AnalysisResult, error)
}

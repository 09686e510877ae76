// Package contracts implements registration and monitoring of user contracts.
package contracts

import (
	"context"
	"time"

	"auditor/pkg/domain"
)

// RegisterParams carries the fields of a contract registration.
type RegisterParams struct {
	// Name is the human readable label for the contract.
	Name string
	// SourceCode is the contract source; required.
	SourceCode string
	// Address is the deployed on-chain address, if any.
	Address string
	// Network names the chain the contract targets. Defaults to ethereum.
	Network string
	// Language is the contract language. Defaults to solidity.
	Language string
}

//go:generate mockgen -package mockcontracts -source=interface.go -destination=mock/mockcontracts.go *
type Contracts interface {
	Register(ctx context.Context, userID domain.UserID, params RegisterParams) (*domain.Contract, error)
	Contract(ctx context.Context, userID domain.UserID, contractID domain.ContractID) (*domain.Contract, error)
	UserContracts(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.Contract, string, error)
	Delete(ctx context.Context, userID domain.UserID, contractID domain.ContractID) error

	// Monitor returns the monitoring state of a deployed contract owned by the
	// user, creating the record on first request.
	Monitor(ctx context.Context, userID domain.UserID, address string) (*domain.Monitoring, error)
	// RefreshMonitorings refreshes active monitors whose last check is older
	// than staleBefore.
	RefreshMonitorings(ctx context.Context, staleBefore time.Time, limit uint) (int, error)
}

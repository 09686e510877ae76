package storage

import (
	"context"
	"time"

	"auditor/pkg/domain"
)

// ContractUpdates describes a set of optional fields that can be applied to an
// existing contract during an update. Only non-nil fields will be updated.
type ContractUpdates struct {
	// Name, when provided, replaces the contract's display name.
	Name *string
	// SourceCode, when provided, replaces the stored source code.
	SourceCode *string
	// Address, when provided, sets the deployed address. An empty string value
	// clears the address (sets it to NULL).
	Address *string
}

// UserContracts groups a page of contracts returned for a user together with
// an optional NextCursor used for pagination.
type UserContracts struct {
	// Contracts contains the current page of contract records.
	Contracts []domain.Contract
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// MonitoringUpdates describes optional fields applied to a monitoring record.
type MonitoringUpdates struct {
	// Status, when non-empty, is the new monitoring status.
	Status domain.MonitoringStatus
	// LastChecked, when provided, sets the last check timestamp.
	LastChecked *time.Time
	// EventsCount, when provided, replaces the observed event count.
	EventsCount *int
	// Metadata, when provided, replaces the metadata payload.
	Metadata map[string]any
}

// ContractStorage defines CRUD and query operations related to registered
// contracts and their monitoring records. Implementations should ensure proper
// handling of soft-deletes where applicable.
type ContractStorage interface {
	// StoreContracts inserts one or more contracts and returns the stored rows
	// as they exist in the database (including generated fields).
	StoreContracts(ctx context.Context, contracts ...domain.Contract) ([]domain.Contract, error)
	// ContractByID fetches a contract by its ID for the given user, excluding
	// soft-deleted records. Returns nil when not found.
	ContractByID(ctx context.Context, userID domain.UserID, ID domain.ContractID) (*domain.Contract, error)
	// ContractByAddress returns the newest contract registered for the given
	// address across all users, excluding soft-deleted records. Returns nil
	// when not found.
	ContractByAddress(ctx context.Context, address string) (*domain.Contract, error)
	// UpdateContractByID updates a single contract identified by its ID and user
	// ID and returns the updated row. The update ignores soft-deleted rows and
	// sets updated_at automatically. Only provided fields are changed.
	UpdateContractByID(ctx context.Context,
		userID domain.UserID,
		ID domain.ContractID,
		updates ContractUpdates) (*domain.Contract, error)
	// DeleteContract performs a soft delete for the given contract ID and user
	// ID and returns the deleted contract, or nil if it was not found.
	DeleteContract(ctx context.Context, userID domain.UserID, ID domain.ContractID) (*domain.Contract, error)
	// UserContracts returns a page of contracts for a user created before the
	// optional cursor time, limited by the given limit.
	UserContracts(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (UserContracts, error)

	// StoreMonitoring inserts a monitoring record and returns the stored row.
	StoreMonitoring(ctx context.Context, monitoring domain.Monitoring) (*domain.Monitoring, error)
	// MonitoringByContractID returns the monitoring record of a contract, or
	// nil when the contract is not monitored.
	MonitoringByContractID(ctx context.Context, contractID domain.ContractID) (*domain.Monitoring, error)
	// UpdateMonitoringByID updates a monitoring record and returns the updated
	// row, or nil when it was not found.
	UpdateMonitoringByID(ctx context.Context,
		ID domain.MonitoringID,
		updates MonitoringUpdates) (*domain.Monitoring, error)
	// ActiveMonitorings returns up to limit monitoring records in active status
	// whose last check is older than staleBefore, oldest first.
	ActiveMonitorings(ctx context.Context, staleBefore time.Time, limit uint) ([]domain.Monitoring, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractID uniquely identifies a registered contract.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ContractID uuid.UUID

// Contract represents a smart contract registered by a user, either as raw
// source code or as a deployed on-chain address.
type Contract struct {
	// ID is the unique identifier of the contract.
	ID ContractID `json:"id"`
	// UserID is the identifier of the user who registered the contract.
	UserID UserID `json:"userId"`

	// Name is a human readable label chosen by the user.
	Name string `json:"name"`
	// Address is the on-chain address, if the contract is deployed.
	Address string `json:"address,omitempty"`
	// SourceCode is the contract source.
	SourceCode string `json:"sourceCode"`
	// Network names the chain the contract targets (ethereum, polygon, ...).
	Network string `json:"network"`
	// Language is the contract language; defaults to solidity.
	Language string `json:"language"`

	// CreatedAt is the time when the contract was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the contract was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the contract was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// MonitoringID uniquely identifies a monitoring record.
type MonitoringID uuid.UUID

// MonitoringStatus represents the lifecycle state of contract monitoring.
type MonitoringStatus string

const (
	// MonitoringStatusActive indicates the contract is being watched.
	MonitoringStatusActive MonitoringStatus = "active"
	// MonitoringStatusInactive indicates monitoring has been paused.
	MonitoringStatusInactive MonitoringStatus = "inactive"
	// MonitoringStatusError indicates the last refresh failed.
	MonitoringStatusError MonitoringStatus = "error"
)

// Monitoring tracks on-chain observation state for a registered contract.
// A record is created lazily on the first monitor request and refreshed by
// the background worker afterwards.
type Monitoring struct {
	ID         MonitoringID `json:"id"`
	ContractID ContractID   `json:"contractId"`

	// LastChecked is when the contract state was last observed.
	LastChecked time.Time `json:"lastChecked"`
	// Status is the current monitoring state.
	Status MonitoringStatus `json:"status"`
	// EventsCount is the number of events observed so far.
	EventsCount int `json:"eventsCount"`
	// Metadata holds free-form observation details.
	Metadata map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

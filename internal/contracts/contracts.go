package contracts

import (
	"context"
	"fmt"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"

	"github.com/google/uuid"
)

// ValidNetwork reports whether the given chain name is one the service knows
// how to analyze and validate deployments for.
func ValidNetwork(network string) bool {
	switch network {
	case "ethereum", "polygon", "arbitrum", "optimism", "base", "sepolia":
		return true
	}

	return false
}

// contracts is the concrete implementation of the Contracts interface.
type contracts struct {
	// storage is the persistence layer used to store contracts and monitoring rows.
	storage storage.Storage
}

// Register stores a new contract for the given user. Source code is required;
// network and language fall back to ethereum/solidity when omitted.
func (c contracts) Register(ctx context.Context,
	userID domain.UserID,
	params RegisterParams) (*domain.Contract, error) {
	if params.SourceCode == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "source code is required")
	}
	if params.Network == "" {
		params.Network = "ethereum"
	}
	if !ValidNetwork(params.Network) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown network %q", params.Network)
	}
	if params.Language == "" {
		params.Language = "solidity"
	}

	res, err := c.storage.StoreContracts(ctx, domain.Contract{
		UserID:     userID,
		Name:       params.Name,
		Address:    params.Address,
		SourceCode: params.SourceCode,
		Network:    params.Network,
		Language:   params.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store contract: %w", err)
	}

	return &res[0], nil
}

// Contract fetches a single contract by ID for the given user. It returns a
// not-found error when no matching contract exists.
func (c contracts) Contract(ctx context.Context,
	userID domain.UserID,
	contractID domain.ContractID) (*domain.Contract, error) {
	res, err := c.storage.ContractByID(ctx, userID, contractID)
	if err != nil {
		return nil, fmt.Errorf("could not get contract: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "contract not found")
	}

	return res, nil
}

// UserContracts returns a page of contracts for the given user. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (c contracts) UserContracts(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Contract, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := c.storage.UserContracts(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user contracts: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Contracts, next, nil
}

// Delete soft-deletes a contract belonging to the given user and deactivates
// its monitoring. If the contract does not exist, a not-found error is
// returned.
func (c contracts) Delete(ctx context.Context, userID domain.UserID, contractID domain.ContractID) error {
	return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.DeleteContract(ctx, userID, contractID)
		if err != nil {
			return fmt.Errorf("could not delete contract: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "contract not found")
		}

		monitoring, err := tx.MonitoringByContractID(ctx, contractID)
		if err != nil {
			return fmt.Errorf("could not get monitoring: %w", err)
		}
		if monitoring == nil {
			return nil
		}

		if _, err := tx.UpdateMonitoringByID(ctx, monitoring.ID, storage.MonitoringUpdates{
			Status: domain.MonitoringStatusInactive,
		}); err != nil {
			return fmt.Errorf("could not deactivate monitoring: %w", err)
		}

		return nil
	})
}

// Monitor returns the monitoring record of the user's contract at the given
// address. The record is created on the first request with an active status
// and refreshed by the background worker afterwards.
func (c contracts) Monitor(ctx context.Context, userID domain.UserID, address string) (*domain.Monitoring, error) {
	contract, err := c.storage.ContractByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("could not get contract: %w", err)
	}
	if contract == nil || contract.UserID != userID {
		return nil, serrors.With(serrors.ErrNotFound, "contract not found")
	}

	monitoring, err := c.storage.MonitoringByContractID(ctx, contract.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get monitoring: %w", err)
	}
	if monitoring != nil {
		return monitoring, nil
	}

	err = c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreMonitoring(ctx, domain.Monitoring{
			ContractID:  contract.ID,
			LastChecked: time.Now().UTC(),
			Status:      domain.MonitoringStatusActive,
		})
		if err != nil {
			return fmt.Errorf("could not store monitoring: %w", err)
		}
		monitoring = stored

		// schedule the first refresh together with the row; the job's unique
		// opts skip the insert when a refresh is already queued
		if _, err := tx.AddJob(ctx, MonitorRefreshJobArgs{}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return monitoring, nil
}

// RefreshMonitorings bumps the last check timestamp of active monitors whose
// last check is older than staleBefore. It returns the number of monitors
// refreshed.
func (c contracts) RefreshMonitorings(ctx context.Context, staleBefore time.Time, limit uint) (int, error) {
	monitorings, err := c.storage.ActiveMonitorings(ctx, staleBefore, limit)
	if err != nil {
		return 0, fmt.Errorf("could not get active monitorings: %w", err)
	}

	now := time.Now().UTC()
	for _, monitoring := range monitorings {
		if _, err := c.storage.UpdateMonitoringByID(ctx, monitoring.ID, storage.MonitoringUpdates{
			LastChecked: &now,
		}); err != nil {
			return 0, fmt.Errorf("could not refresh monitoring %s: %w", uuid.UUID(monitoring.ID), err)
		}
	}

	return len(monitorings), nil
}

// New creates a new Contracts instance backed by the provided storage.
func New(storage storage.Storage) Contracts {
	return &contracts{
		storage: storage,
	}
}

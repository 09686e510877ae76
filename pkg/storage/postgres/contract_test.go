package postgres_test

import (
	"context"
	"testing"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSource = "pragma solidity ^0.8.0; contract Vault {}"

func TestPgSQL_StoreContracts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("store single contract", func(t *testing.T) {
		t.Parallel()

		c := domain.Contract{
			UserID:     userID,
			Name:       "Vault",
			SourceCode: testSource,
			Network:    "ethereum",
			Language:   "solidity",
		}

		res, err := pgSQL.StoreContracts(ctx, c)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "Vault", res[0].Name)
		require.NotEqual(t, domain.ContractID(uuid.Nil), res[0].ID)
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple contracts", func(t *testing.T) {
		t.Parallel()

		c1 := domain.Contract{UserID: userID, Name: "A", SourceCode: testSource, Network: "ethereum", Language: "solidity"}
		c2 := domain.Contract{UserID: userID, Name: "B", SourceCode: testSource, Network: "polygon", Language: "solidity"}

		res, err := pgSQL.StoreContracts(ctx, c1, c2)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty contracts", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreContracts(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_ContractByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	otherUser := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreContracts(ctx, domain.Contract{
		UserID: userID, Name: "Vault", SourceCode: testSource, Network: "ethereum", Language: "solidity",
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	got, err := pgSQL.ContractByID(ctx, userID, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored[0].ID, got.ID)

	// other users must not see the contract
	got, err = pgSQL.ContractByID(ctx, otherUser, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// soft-deleted contracts are invisible
	deleted, err := pgSQL.DeleteContract(ctx, userID, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err = pgSQL.ContractByID(ctx, userID, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_UpdateContractByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreContracts(ctx, domain.Contract{
		UserID: userID, Name: "Vault", SourceCode: testSource, Network: "ethereum", Language: "solidity",
	})
	require.NoError(t, err)

	newName := "VaultV2"
	address := "0x1234567890abcdef1234567890abcdef12345678"
	updated, err := pgSQL.UpdateContractByID(ctx, userID, stored[0].ID, storage.ContractUpdates{
		Name:    &newName,
		Address: &address,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, address, updated.Address)
	require.False(t, updated.UpdatedAt.IsZero())

	// unknown id yields nil
	missing, err := pgSQL.UpdateContractByID(ctx, userID, domain.ContractID(uuid.New()), storage.ContractUpdates{
		Name: &newName,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UserContracts_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	for i := 0; i < 3; i++ {
		_, err := pgSQL.StoreContracts(ctx, domain.Contract{
			UserID: userID, Name: "C", SourceCode: testSource, Network: "ethereum", Language: "solidity",
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond) // distinct created_at for cursoring
	}

	page1, err := pgSQL.UserContracts(ctx, userID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page1.Contracts, 2)
	require.NotNil(t, page1.NextCursor)

	page2, err := pgSQL.UserContracts(ctx, userID, *page1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Contracts, 1)
	require.Nil(t, page2.NextCursor)
}

func TestPgSQL_Monitoring(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreContracts(ctx, domain.Contract{
		UserID: userID, Name: "Vault", SourceCode: testSource, Network: "ethereum", Language: "solidity",
	})
	require.NoError(t, err)

	contractID := stored[0].ID

	created, err := pgSQL.StoreMonitoring(ctx, domain.Monitoring{
		ContractID: contractID,
		Status:     domain.MonitoringStatusActive,
		Metadata:   map[string]any{"source": "manual"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, domain.MonitoringStatusActive, created.Status)

	got, err := pgSQL.MonitoringByContractID(ctx, contractID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "manual", got.Metadata["source"])

	now := time.Now().UTC().Truncate(time.Millisecond)
	events := 7
	updated, err := pgSQL.UpdateMonitoringByID(ctx, created.ID, storage.MonitoringUpdates{
		LastChecked: &now,
		EventsCount: &events,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 7, updated.EventsCount)
	require.WithinDuration(t, now, updated.LastChecked, time.Second)

	// freshly checked records are not stale
	stale, err := pgSQL.ActiveMonitorings(ctx, now.Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Empty(t, stale)

	stale, err = pgSQL.ActiveMonitorings(ctx, now.Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
}

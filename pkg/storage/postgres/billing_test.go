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

func TestPgSQL_Payments(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	created, err := pgSQL.StorePayment(ctx, domain.Payment{
		UserID:           userID,
		TransactionHash:  "0xabc123",
		Network:          "base",
		AmountLamports:   100_000_000,
		AmountUSD:        10,
		ReceiverAddress:  "0xfeed",
		Status:           domain.PaymentStatusPending,
		Tier:             domain.TierBasic,
		AccessLevel:      1,
		FeaturesUnlocked: []domain.Feature{domain.FeatureContractAnalysis},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, domain.PaymentStatusPending, created.Status)

	byHash, err := pgSQL.PaymentByTransactionHash(ctx, "0xabc123")
	require.NoError(t, err)
	require.NotNil(t, byHash)
	require.Equal(t, created.ID, byHash.ID)

	missing, err := pgSQL.PaymentByTransactionHash(ctx, "0xdoesnotexist")
	require.NoError(t, err)
	require.Nil(t, missing)

	now := time.Now().UTC().Truncate(time.Millisecond)
	payer := "0xbeef"
	confirmed, err := pgSQL.UpdatePaymentByID(ctx, created.ID, storage.PaymentUpdates{
		Status:       domain.PaymentStatusConfirmed,
		PayerAddress: &payer,
		ConfirmedAt:  &now,
	})
	require.NoError(t, err)
	require.NotNil(t, confirmed)
	require.Equal(t, domain.PaymentStatusConfirmed, confirmed.Status)
	require.Equal(t, payer, confirmed.PayerAddress)
	require.WithinDuration(t, now, confirmed.ConfirmedAt, time.Second)

	byID, err := pgSQL.PaymentByID(ctx, userID, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, domain.PaymentStatusConfirmed, byID.Status)
}

func TestPgSQL_Subscriptions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	spec, ok := domain.TierByName(domain.TierBasic)
	require.True(t, ok)

	created, err := pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:               userID,
		Tier:                 spec.Tier,
		Network:              "base",
		MonthlyPriceLamports: spec.MonthlyPriceLamports,
		MonthlyPriceUSD:      spec.MonthlyPriceUSD,
		Status:               domain.SubscriptionStatusActive,
		NextBillingDate:      time.Now().Add(30 * 24 * time.Hour),
		AutoRenew:            true,
		Features:             spec.Features,
		APICallsLimit:        spec.APICallsLimit,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, 0, created.MonthlyCallsUsed)

	active, err := pgSQL.ActiveSubscriptionByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, created.ID, active.ID)

	// cancelled subscriptions are not returned
	_, err = pgSQL.UpdateSubscriptionByID(ctx, created.ID, storage.SubscriptionUpdates{
		Status: domain.SubscriptionStatusCancelled,
	})
	require.NoError(t, err)

	active, err = pgSQL.ActiveSubscriptionByUserID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, active)
}

func TestPgSQL_IncrementSubscriptionUsage(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	created, err := pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:        userID,
		Tier:          domain.TierFree,
		Network:       "base",
		Status:        domain.SubscriptionStatusActive,
		Features:      []domain.Feature{domain.FeatureBasicAnalysis},
		APICallsLimit: 2,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := pgSQL.IncrementSubscriptionUsage(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok, "increment %d should succeed", i)
	}

	// limit reached
	ok, err := pgSQL.IncrementSubscriptionUsage(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, ok)

	active, err := pgSQL.ActiveSubscriptionByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, active.MonthlyCallsUsed)
}

func TestPgSQL_IncrementSubscriptionUsage_Unlimited(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	created, err := pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:        domain.UserID(uuid.New()),
		Tier:          domain.TierEnterprise,
		Network:       "base",
		Status:        domain.SubscriptionStatusActive,
		Features:      []domain.Feature{domain.FeatureAllFeatures},
		APICallsLimit: -1,
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		ok, err := pgSQL.IncrementSubscriptionUsage(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestPgSQL_DueSubscriptions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	due, err := pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:          domain.UserID(uuid.New()),
		Tier:            domain.TierBasic,
		Network:         "base",
		Status:          domain.SubscriptionStatusActive,
		NextBillingDate: time.Now().Add(-time.Hour),
		AutoRenew:       true,
		Features:        []domain.Feature{domain.FeatureContractAnalysis},
		APICallsLimit:   100,
	})
	require.NoError(t, err)

	_, err = pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:          domain.UserID(uuid.New()),
		Tier:            domain.TierBasic,
		Network:         "base",
		Status:          domain.SubscriptionStatusActive,
		NextBillingDate: time.Now().Add(24 * time.Hour),
		AutoRenew:       true,
		Features:        []domain.Feature{domain.FeatureContractAnalysis},
		APICallsLimit:   100,
	})
	require.NoError(t, err)

	rows, err := pgSQL.DueSubscriptions(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, due.ID, rows[0].ID)
}

func TestPgSQL_AccessLogs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	for i := 0; i < 3; i++ {
		_, err := pgSQL.StoreAccessLog(ctx, domain.AccessLog{
			UserID:          userID,
			Endpoint:        "/api/analyze-contract",
			FeatureAccessed: domain.FeatureContractAnalysis,
			RequestType:     domain.RequestTypeAnalyze,
			ExecutionTimeMS: 12.5,
			Success:         true,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	page1, err := pgSQL.AccessLogsByUserID(ctx, userID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page1.Logs, 2)
	require.NotNil(t, page1.NextCursor)

	page2, err := pgSQL.AccessLogsByUserID(ctx, userID, *page1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Logs, 1)
	require.Nil(t, page2.NextCursor)
}

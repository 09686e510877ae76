package postgres

import (
	"context"
	"fmt"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	paymentsTable      = "payments"
	subscriptionsTable = "subscriptions"
	accessLogsTable    = "access_logs"
)

func (p *PgSQL) StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	var pgPayment PgPayment
	if err := pgPayment.FromDomain(payment); err != nil {
		return nil, err
	}

	var row PgPayment
	found, err := p.Builder.Insert(paymentsTable).
		Rows(pgPayment).
		Returning(&PgPayment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store payment into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PaymentByID returns a payment by its ID for the given user.
func (p *PgSQL) PaymentByID(ctx context.Context,
	userID domain.UserID,
	id domain.PaymentID) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PaymentByTransactionHash returns a payment by its settlement hash across
// all users.
func (p *PgSQL) PaymentByTransactionHash(ctx context.Context, hash string) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(goqu.I("transaction_hash").Eq(hash)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment by transaction hash: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdatePaymentByID updates a payment with provided fields. Only non-nil
// fields from updates are set.
func (p *PgSQL) UpdatePaymentByID(ctx context.Context,
	id domain.PaymentID,
	updates storage.PaymentUpdates) (*domain.Payment, error) {
	rec := goqu.Record{}
	if updates.Status != "" {
		rec["payment_status"] = string(updates.Status)
	}
	if updates.TransactionHash != nil {
		rec["transaction_hash"] = *updates.TransactionHash
	}
	if updates.PayerAddress != nil {
		rec["payer_address"] = *updates.PayerAddress
	}
	if updates.ConfirmedAt != nil {
		rec["confirmed_at"] = *updates.ConfirmedAt
	}
	if updates.ExpiresAt != nil {
		rec["expires_at"] = *updates.ExpiresAt
	}
	if len(rec) == 0 {
		return nil, nil
	}

	var row PgPayment
	found, err := p.Builder.Update(paymentsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPayment{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update payment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreSubscription(ctx context.Context,
	subscription domain.Subscription) (*domain.Subscription, error) {
	var pgSubscription PgSubscription
	if err := pgSubscription.FromDomain(subscription); err != nil {
		return nil, err
	}

	var row PgSubscription
	found, err := p.Builder.Insert(subscriptionsTable).
		Rows(pgSubscription).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store subscription into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ActiveSubscriptionByUserID returns the newest non-cancelled subscription of
// a user.
func (p *PgSQL) ActiveSubscriptionByUserID(ctx context.Context,
	userID domain.UserID) (*domain.Subscription, error) {
	var row PgSubscription
	found, err := p.Builder.From(subscriptionsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").Neq(string(domain.SubscriptionStatusCancelled)),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscription by user id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateSubscriptionByID updates a subscription with provided fields. Only
// non-nil fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateSubscriptionByID(ctx context.Context,
	id domain.SubscriptionID,
	updates storage.SubscriptionUpdates) (*domain.Subscription, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.NextBillingDate != nil {
		rec["next_billing_date"] = *updates.NextBillingDate
	}
	if updates.MonthlyCallsUsed != nil {
		rec["monthly_calls_used"] = *updates.MonthlyCallsUsed
	}
	if updates.AutoRenew != nil {
		rec["auto_renew"] = *updates.AutoRenew
	}

	var row PgSubscription
	found, err := p.Builder.Update(subscriptionsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgSubscription{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update subscription in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// IncrementSubscriptionUsage increments monthly_calls_used of an active
// subscription. The guard keeps the counter within api_calls_limit; a
// negative limit means unlimited. Reports whether a row was updated.
func (p *PgSQL) IncrementSubscriptionUsage(ctx context.Context, id domain.SubscriptionID) (bool, error) {
	res, err := p.Builder.Update(subscriptionsTable).
		Set(goqu.Record{
			"monthly_calls_used": goqu.L("monthly_calls_used + 1"),
			"updated_at":         goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.SubscriptionStatusActive)),
		goqu.Or(
			goqu.I("api_calls_limit").Lt(0),
			goqu.I("monthly_calls_used").Lt(goqu.I("api_calls_limit")),
		),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not increment subscription usage in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// DueSubscriptions returns active subscriptions whose next billing date is at
// or before dueBefore, oldest first.
func (p *PgSQL) DueSubscriptions(ctx context.Context,
	dueBefore time.Time,
	limit uint) ([]domain.Subscription, error) {
	var rows []PgSubscription
	if err := p.Builder.From(subscriptionsTable).
		Where(
			goqu.I("status").Eq(string(domain.SubscriptionStatusActive)),
			goqu.I("next_billing_date").IsNotNull(),
			goqu.I("next_billing_date").Lte(dueBefore),
		).
		Order(goqu.I("next_billing_date").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch due subscriptions from pg: %w", err)
	}

	out := make([]domain.Subscription, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) StoreAccessLog(ctx context.Context, log domain.AccessLog) (*domain.AccessLog, error) {
	var pgLog PgAccessLog
	if err := pgLog.FromDomain(log); err != nil {
		return nil, err
	}

	var row PgAccessLog
	found, err := p.Builder.Insert(accessLogsTable).
		Rows(pgLog).
		Returning(&PgAccessLog{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store access log into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AccessLogsByUserID returns a page of access log rows for a user filtered by
// optional cursor, limited by limit. Results are ordered by created_at DESC,
// id DESC.
func (p *PgSQL) AccessLogsByUserID(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserAccessLogs, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgAccessLog
	if err := p.Builder.From(accessLogsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserAccessLogs{}, fmt.Errorf("could not fetch access logs from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	out := make([]domain.AccessLog, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return storage.UserAccessLogs{}, err
		}

		out = append(out, *d)
	}

	return storage.UserAccessLogs{
		Logs:       out,
		NextCursor: nextCursor,
	}, nil
}

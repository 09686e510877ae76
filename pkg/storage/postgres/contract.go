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
	contractsTable  = "contracts"
	monitoringTable = "monitoring"
)

func (p *PgSQL) StoreContracts(ctx context.Context, contracts ...domain.Contract) ([]domain.Contract, error) {
	if len(contracts) == 0 {
		return nil, nil
	}

	pgContracts := make([]PgContract, len(contracts))
	for i := range pgContracts {
		if err := pgContracts[i].FromDomain(contracts[i]); err != nil {
			return nil, err
		}
	}

	var rows []PgContract
	if err := p.Builder.Insert(contractsTable).
		Rows(pgContracts).
		Returning(&PgContract{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store contracts into pg: %w", err)
	}

	out := make([]domain.Contract, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// ContractByID returns a contract by its ID, excluding soft-deleted rows.
func (p *PgSQL) ContractByID(ctx context.Context,
	userID domain.UserID,
	id domain.ContractID) (*domain.Contract, error) {
	var row PgContract
	found, err := p.Builder.From(contractsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contract by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ContractByAddress returns the newest contract registered for the given
// address across all users.
func (p *PgSQL) ContractByAddress(ctx context.Context, address string) (*domain.Contract, error) {
	var row PgContract
	found, err := p.Builder.From(contractsTable).
		Where(
			goqu.I("address").Eq(address),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contract by address: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateContractByID updates a single contract with provided fields. Only
// non-nil fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateContractByID(ctx context.Context,
	userID domain.UserID,
	id domain.ContractID,
	updates storage.ContractUpdates) (*domain.Contract, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.SourceCode != nil {
		rec["source_code"] = *updates.SourceCode
	}
	if updates.Address != nil {
		if *updates.Address == "" {
			// set to NULL when empty string provided
			rec["address"] = goqu.L("NULL")
		} else {
			rec["address"] = *updates.Address
		}
	}

	var row PgContract
	found, err := p.Builder.Update(contractsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgContract{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update contract in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteContract performs a soft delete by setting deleted_at timestamp
// for a given contract id and user, returning the deleted record.
func (p *PgSQL) DeleteContract(ctx context.Context,
	userID domain.UserID,
	id domain.ContractID) (*domain.Contract, error) {
	var row PgContract
	found, err := p.Builder.Update(contractsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgContract{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete contract in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserContracts returns a list of contracts for a user filtered by optional
// cursor and limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserContracts(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserContracts, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgContract
	if err := p.Builder.From(contractsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserContracts{}, fmt.Errorf("could not fetch user contracts from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	out := make([]domain.Contract, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return storage.UserContracts{}, err
		}

		out = append(out, *d)
	}

	return storage.UserContracts{
		Contracts:  out,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) StoreMonitoring(ctx context.Context, monitoring domain.Monitoring) (*domain.Monitoring, error) {
	var pgMonitoring PgMonitoring
	if err := pgMonitoring.FromDomain(monitoring); err != nil {
		return nil, err
	}

	var row PgMonitoring
	found, err := p.Builder.Insert(monitoringTable).
		Rows(pgMonitoring).
		Returning(&PgMonitoring{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store monitoring into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// MonitoringByContractID returns the monitoring record of a contract.
func (p *PgSQL) MonitoringByContractID(ctx context.Context,
	contractID domain.ContractID) (*domain.Monitoring, error) {
	var row PgMonitoring
	found, err := p.Builder.From(monitoringTable).
		Where(goqu.I("contract_id").Eq(uuid.UUID(contractID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch monitoring by contract id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateMonitoringByID updates a monitoring record with provided fields.
// Only non-nil fields from updates are set.
func (p *PgSQL) UpdateMonitoringByID(ctx context.Context,
	id domain.MonitoringID,
	updates storage.MonitoringUpdates) (*domain.Monitoring, error) {
	rec := goqu.Record{}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.LastChecked != nil {
		rec["last_checked"] = *updates.LastChecked
	}
	if updates.EventsCount != nil {
		rec["events_count"] = *updates.EventsCount
	}
	if updates.Metadata != nil {
		b, err := marshalJSON(updates.Metadata)
		if err != nil {
			return nil, err
		}

		rec["metadata"] = b
	}
	if len(rec) == 0 {
		return p.monitoringByID(ctx, id)
	}

	var row PgMonitoring
	found, err := p.Builder.Update(monitoringTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgMonitoring{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update monitoring in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) monitoringByID(ctx context.Context, id domain.MonitoringID) (*domain.Monitoring, error) {
	var row PgMonitoring
	found, err := p.Builder.From(monitoringTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch monitoring by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ActiveMonitorings returns active monitoring records whose last check is
// older than staleBefore, oldest first.
func (p *PgSQL) ActiveMonitorings(ctx context.Context,
	staleBefore time.Time,
	limit uint) ([]domain.Monitoring, error) {
	var rows []PgMonitoring
	if err := p.Builder.From(monitoringTable).
		Where(
			goqu.I("status").Eq(string(domain.MonitoringStatusActive)),
			goqu.Or(
				goqu.I("last_checked").IsNull(),
				goqu.I("last_checked").Lt(staleBefore),
			),
		).
		Order(goqu.I("last_checked").Asc().NullsFirst()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active monitorings from pg: %w", err)
	}

	out := make([]domain.Monitoring, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

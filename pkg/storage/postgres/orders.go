package postgres

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const purchasesTable = "purchases"

func (p *PgSQL) StorePurchases(ctx context.Context, purchases ...domain.Purchase) ([]domain.Purchase, error) {
	if len(purchases) == 0 {
		return nil, nil
	}

	pgPurchases, err := domainPurchasesToPg(purchases)
	if err != nil {
		return nil, err
	}

	var result []PgPurchase
	if err := p.Builder.Insert(purchasesTable).
		Rows(pgPurchases).
		Returning(&PgPurchase{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store purchases into pg: %w", err)
	}

	return pgPurchasesToDomain(result)
}

func (p *PgSQL) PurchaseByID(ctx context.Context,
	userID domain.UserID,
	id domain.PurchaseID) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.From(purchasesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch purchase by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdatePurchaseStatus(ctx context.Context,
	id domain.PurchaseID,
	status domain.PurchaseStatus) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.Update(purchasesTable).
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update purchase status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) SetPurchasePayment(ctx context.Context,
	id domain.PurchaseID,
	pg domain.PaymentProvider,
	pgTID string) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.Update(purchasesTable).
		Set(goqu.Record{
			"pg":     string(pg),
			"pg_tid": pgTID,
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not set purchase payment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserPurchases pages through a user's purchases ordered by purchased_at DESC,
// id DESC, fetching one extra row to detect the next page.
func (p *PgSQL) UserPurchases(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserPurchases, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("purchased_at").Lt(cursor))
	}

	fetch := limit + 1
	var rows []PgPurchase
	if err := p.Builder.From(purchasesTable).
		Where(w...).
		Order(goqu.I("purchased_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPurchases{}, fmt.Errorf("could not fetch user purchases from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].PurchasedAt
		rows = trimmed
	}

	purchases, err := pgPurchasesToDomain(rows)
	if err != nil {
		return storage.UserPurchases{}, err
	}

	return storage.UserPurchases{
		Purchases:  purchases,
		NextCursor: nextCursor,
	}, nil
}

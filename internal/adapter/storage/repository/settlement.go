package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var shopSettlementColumns = []string{
	"id", "shop_id", "period_id", "total_orders", "completed_orders",
	"cancelled_orders", "gross_sales", "total_commission", "points_discounts",
	"free_delivery_costs", "ads_cost", "net_payable", "admin_net_commission",
	"status", "created_at", "settled_at",
}

var riderSettlementColumns = []string{
	"id", "rider_id", "period_id", "total_deliveries", "total_delivery_fees",
	"total_cash_handled", "commission_deducted", "net_earnings",
	"status", "created_at", "settled_at",
}

func scanShopSettlement(row pgx.Row) (*domain.ShopSettlement, error) {
	s := domain.ShopSettlement{}
	err := row.Scan(
		&s.ID,
		&s.ShopID,
		&s.PeriodID,
		&s.TotalOrders,
		&s.CompletedOrders,
		&s.CancelledOrders,
		&s.GrossSales,
		&s.TotalCommission,
		&s.PointsDiscounts,
		&s.FreeDeliveryCosts,
		&s.AdsCost,
		&s.NetPayable,
		&s.AdminNetCommission,
		&s.Status,
		&s.CreatedAt,
		&s.SettledAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &s, nil
}

func scanRiderSettlement(row pgx.Row) (*domain.RiderSettlement, error) {
	s := domain.RiderSettlement{}
	err := row.Scan(
		&s.ID,
		&s.RiderID,
		&s.PeriodID,
		&s.TotalDeliveries,
		&s.TotalDeliveryFees,
		&s.TotalCashHandled,
		&s.CommissionDeducted,
		&s.NetEarnings,
		&s.Status,
		&s.CreatedAt,
		&s.SettledAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpsertShopSettlement inserts one shop settlement keyed by (shop, period).
// Re-running a period close hits the conflict arm and leaves the existing
// record (and its settled status) untouched.
func (r *Repository) UpsertShopSettlement(ctx context.Context, s *domain.ShopSettlement) (*domain.ShopSettlement, error) {
	statement := r.db.QueryBuilder.Insert("shop_settlements").
		Columns("id", "shop_id", "period_id", "total_orders", "completed_orders",
			"cancelled_orders", "gross_sales", "total_commission", "points_discounts",
			"free_delivery_costs", "ads_cost", "net_payable", "admin_net_commission",
			"status", "created_at").
		Values(s.ID, s.ShopID, s.PeriodID, s.TotalOrders, s.CompletedOrders,
			s.CancelledOrders, s.GrossSales, s.TotalCommission, s.PointsDiscounts,
			s.FreeDeliveryCosts, s.AdsCost, s.NetPayable, s.AdminNetCommission,
			s.Status, s.CreatedAt).
		Suffix("ON CONFLICT (shop_id, period_id) DO UPDATE SET shop_id = EXCLUDED.shop_id RETURNING " +
			columnList(shopSettlementColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanShopSettlement(r.db.QueryRow(ctx, sql, args...))
}

// UpsertRiderSettlement is the rider counterpart of UpsertShopSettlement.
func (r *Repository) UpsertRiderSettlement(ctx context.Context, s *domain.RiderSettlement) (*domain.RiderSettlement, error) {
	statement := r.db.QueryBuilder.Insert("rider_settlements").
		Columns("id", "rider_id", "period_id", "total_deliveries", "total_delivery_fees",
			"total_cash_handled", "commission_deducted", "net_earnings",
			"status", "created_at").
		Values(s.ID, s.RiderID, s.PeriodID, s.TotalDeliveries, s.TotalDeliveryFees,
			s.TotalCashHandled, s.CommissionDeducted, s.NetEarnings,
			s.Status, s.CreatedAt).
		Suffix("ON CONFLICT (rider_id, period_id) DO UPDATE SET rider_id = EXCLUDED.rider_id RETURNING " +
			columnList(riderSettlementColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanRiderSettlement(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadShopSettlement(ctx context.Context, id string) (*domain.ShopSettlement, error) {
	statement := r.db.QueryBuilder.
		Select(shopSettlementColumns...).
		From("shop_settlements").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanShopSettlement(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadRiderSettlement(ctx context.Context, id string) (*domain.RiderSettlement, error) {
	statement := r.db.QueryBuilder.
		Select(riderSettlementColumns...).
		From("rider_settlements").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanRiderSettlement(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ListShopSettlementsByPeriod(ctx context.Context, periodID uint64) ([]*domain.ShopSettlement, error) {
	statement := r.db.QueryBuilder.
		Select(shopSettlementColumns...).
		From("shop_settlements").
		Where(sq.Eq{"period_id": periodID}).
		OrderBy("shop_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ShopSettlement, 0)
	for rows.Next() {
		s, err := scanShopSettlement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) ListRiderSettlementsByPeriod(ctx context.Context, periodID uint64) ([]*domain.RiderSettlement, error) {
	statement := r.db.QueryBuilder.
		Select(riderSettlementColumns...).
		From("rider_settlements").
		Where(sq.Eq{"period_id": periodID}).
		OrderBy("rider_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.RiderSettlement, 0)
	for rows.Next() {
		s, err := scanRiderSettlement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) MarkShopSettlementSettled(ctx context.Context, id string, at time.Time) (*domain.ShopSettlement, error) {
	statement := r.db.QueryBuilder.Update("shop_settlements").
		Set("status", domain.SettlementStatusSettled).
		Set("settled_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(shopSettlementColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanShopSettlement(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) MarkRiderSettlementSettled(ctx context.Context, id string, at time.Time) (*domain.RiderSettlement, error) {
	statement := r.db.QueryBuilder.Update("rider_settlements").
		Set("status", domain.SettlementStatusSettled).
		Set("settled_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(riderSettlementColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanRiderSettlement(r.db.QueryRow(ctx, sql, args...))
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}

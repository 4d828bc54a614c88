package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/balady/orderledger/internal/adapter/storage"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository implements every store port over one postgres pool. Orders and
// periods carry a version column; saves are optimistic and report a stale
// read as domain.ErrStaleState.
type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func isUniqueViolation(err error) bool {
	pgErr, ok := err.(*pgconn.PgError)
	return ok && pgErr.Code == pgerrcode.UniqueViolation
}

// execer is the slice of pgx shared by *pgxpool.Pool and pgx.Tx that the
// write helpers need, so the same statement runs standalone or inside a
// transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var orderColumns = []string{
	"id", "number", "customer_id", "shop_id", "rider_id", "week_period_id",
	"status", "subtotal", "delivery_fee", "is_free_delivery", "points_used",
	"points_discount", "total_amount", "store_commission", "platform_commission",
	"points_earned", "cash_collected", "cash_to_shop", "shop_confirmed_cash",
	"created_at", "accepted_at", "preparing_at", "picked_up_at", "shop_paid_at",
	"completed_at", "cancelled_at", "cancellation_reason", "version",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.CustomerID,
		&order.ShopID,
		&order.RiderID,
		&order.WeekPeriodID,
		&order.Status,
		&order.Subtotal,
		&order.DeliveryFee,
		&order.IsFreeDelivery,
		&order.PointsUsed,
		&order.PointsDiscount,
		&order.TotalAmount,
		&order.ShopCommission,
		&order.PlatformCommission,
		&order.PointsEarned,
		&order.CashCollected,
		&order.CashToShop,
		&order.ShopConfirmedCash,
		&order.CreatedAt,
		&order.AcceptedAt,
		&order.PreparingAt,
		&order.PickedUpAt,
		&order.ShopPaidAt,
		&order.CompletedAt,
		&order.CancelledAt,
		&order.CancellationReason,
		&order.Version,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("number", "customer_id", "shop_id", "rider_id", "week_period_id",
			"status", "subtotal", "delivery_fee", "is_free_delivery", "points_used",
			"points_discount", "total_amount", "store_commission", "platform_commission",
			"points_earned", "created_at").
		Values(order.Number, order.CustomerID, order.ShopID, order.RiderID, order.WeekPeriodID,
			order.Status, order.Subtotal, order.DeliveryFee, order.IsFreeDelivery, order.PointsUsed,
			order.PointsDiscount, order.TotalAmount, order.ShopCommission, order.PlatformCommission,
			order.PointsEarned, order.CreatedAt).
		Suffix("RETURNING id, version")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created := *order
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ReadOrder(ctx context.Context, number string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"number": number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(r.db.QueryRow(ctx, sql, args...))
}

// SaveOrder writes every mutable field, bumps the version, and fails with
// ErrStaleState when the stored version moved since the caller's read.
func (r *Repository) SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return r.saveOrder(ctx, r.db, order)
}

// CompleteOrder saves the completed order and applies the customer's points
// credit in the same transaction, so a crash can never leave a completed
// order whose earned points were lost.
func (r *Repository) CompleteOrder(ctx context.Context, order *domain.Order, credit port.UpdatePointsFn) (*domain.Order, error) {
	var saved *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		saved, err = r.saveOrder(ctx, tx, order)
		if err != nil {
			return err
		}
		if credit == nil {
			return nil
		}
		_, err = r.updatePoints(ctx, tx, order.CustomerID, credit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *Repository) saveOrder(ctx context.Context, db execer, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("rider_id", order.RiderID).
		Set("status", order.Status).
		Set("cash_collected", order.CashCollected).
		Set("cash_to_shop", order.CashToShop).
		Set("shop_confirmed_cash", order.ShopConfirmedCash).
		Set("accepted_at", order.AcceptedAt).
		Set("preparing_at", order.PreparingAt).
		Set("picked_up_at", order.PickedUpAt).
		Set("shop_paid_at", order.ShopPaidAt).
		Set("completed_at", order.CompletedAt).
		Set("cancelled_at", order.CancelledAt).
		Set("cancellation_reason", order.CancellationReason).
		Set("version", order.Version+1).
		Where(sq.Eq{"id": order.ID, "version": order.Version})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrStaleState
	}

	saved := *order
	saved.Version = order.Version + 1
	return &saved, nil
}

func (r *Repository) listOrders(ctx context.Context, where sq.Sqlizer) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"customer_id": customerID})
}

func (r *Repository) ListOrdersByShop(ctx context.Context, shopID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"shop_id": shopID})
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"status": statuses})
}

func (r *Repository) ListOrdersInPeriod(ctx context.Context, periodID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"week_period_id": periodID})
}

package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/jackc/pgx/v5"
)

// CreateAccount inserts the account and, for customers, its points record and
// referral link in one transaction.
func (r *Repository) CreateAccount(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	created := *a
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		accountSt := r.db.QueryBuilder.
			Insert("accounts").
			Columns("login", "password", "role", "referred_by", "created_at").
			Values(a.Login, a.Password, a.Role, a.ReferredBy, a.CreatedAt).
			Suffix("RETURNING id")

		sql, args, err := accountSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&created.ID)
		if err != nil {
			return err
		}

		if a.Role != domain.RoleCustomer {
			return nil
		}

		pointsSt := r.db.QueryBuilder.
			Insert("customer_points").
			Columns("customer_id", "balance", "total_earned", "total_redeemed").
			Values(created.ID, 0, 0, 0)

		sql, args, err = pointsSt.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if a.ReferredBy != nil {
			referralSt := r.db.QueryBuilder.
				Insert("referrals").
				Columns("referrer_id", "referred_id", "points_awarded", "created_at").
				Values(*a.ReferredBy, created.ID, false, a.CreatedAt)

			sql, args, err = referralSt.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return &created, nil
}

func (r *Repository) GetAccountByLogin(ctx context.Context, login string) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "role", "referred_by", "created_at").
		From("accounts").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.Account{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID,
		&account.Login,
		&account.Password,
		&account.Role,
		&account.ReferredBy,
		&account.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (r *Repository) ReadCustomerPoints(ctx context.Context, customerID uint64) (*domain.CustomerPoints, error) {
	statement := r.db.QueryBuilder.
		Select("customer_id", "balance", "total_earned", "total_redeemed").
		From("customer_points").
		Where(sq.Eq{"customer_id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPoints(r.db.QueryRow(ctx, sql, args...))
}

// UpdateCustomerPoints runs updateFn against a row-locked points record so a
// concurrent redemption and credit cannot interleave.
func (r *Repository) UpdateCustomerPoints(ctx context.Context, customerID uint64,
	updateFn port.UpdatePointsFn) (*domain.CustomerPoints, error) {
	var points *domain.CustomerPoints
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		points, err = r.updatePoints(ctx, tx, customerID, updateFn)
		return err
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

// updatePoints is the row-locked read-modify-write of one points record,
// reused by every caller that already holds a transaction.
func (r *Repository) updatePoints(ctx context.Context, tx pgx.Tx, customerID uint64,
	updateFn port.UpdatePointsFn) (*domain.CustomerPoints, error) {
	selectSt := r.db.QueryBuilder.
		Select("customer_id", "balance", "total_earned", "total_redeemed").
		From("customer_points").
		Where(sq.Eq{"customer_id": customerID}).
		Suffix("FOR UPDATE")

	sql, args, err := selectSt.ToSql()
	if err != nil {
		return nil, err
	}

	points, err := scanPoints(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	if err := updateFn(points); err != nil {
		return nil, err
	}

	updateSt := r.db.QueryBuilder.Update("customer_points").
		Set("balance", points.Balance).
		Set("total_earned", points.TotalEarned).
		Set("total_redeemed", points.TotalRedeemed).
		Where(sq.Eq{"customer_id": customerID})

	sql, args, err = updateSt.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *Repository) GetReferralByReferred(ctx context.Context, referredID uint64) (*domain.Referral, error) {
	statement := r.db.QueryBuilder.
		Select("id", "referrer_id", "referred_id", "points_awarded", "created_at").
		From("referrals").
		Where(sq.Eq{"referred_id": referredID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	referral := domain.Referral{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&referral.ID,
		&referral.ReferrerID,
		&referral.ReferredID,
		&referral.PointsAwarded,
		&referral.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &referral, nil
}

func (r *Repository) SaveReferral(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	statement := r.db.QueryBuilder.Update("referrals").
		Set("points_awarded", referral.PointsAwarded).
		Where(sq.Eq{"id": referral.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return referral, nil
}

func scanPoints(row pgx.Row) (*domain.CustomerPoints, error) {
	points := domain.CustomerPoints{}
	err := row.Scan(
		&points.CustomerID,
		&points.Balance,
		&points.TotalEarned,
		&points.TotalRedeemed,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &points, nil
}

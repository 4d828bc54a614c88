package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var periodColumns = []string{
	"id", "year", "week_number", "start_date", "end_date",
	"status", "closed_at", "settled_at", "version",
}

func scanPeriod(row pgx.Row) (*domain.WeeklyPeriod, error) {
	p := domain.WeeklyPeriod{}
	err := row.Scan(
		&p.ID,
		&p.Year,
		&p.WeekNumber,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.ClosedAt,
		&p.SettledAt,
		&p.Version,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetActivePeriod(ctx context.Context) (*domain.WeeklyPeriod, error) {
	statement := r.db.QueryBuilder.
		Select(periodColumns...).
		From("weekly_periods").
		Where(sq.Eq{"status": domain.PeriodStatusActive})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPeriod(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadPeriod(ctx context.Context, id uint64) (*domain.WeeklyPeriod, error) {
	statement := r.db.QueryBuilder.
		Select(periodColumns...).
		From("weekly_periods").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPeriod(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) CreatePeriod(ctx context.Context, p *domain.WeeklyPeriod) (*domain.WeeklyPeriod, error) {
	statement := r.db.QueryBuilder.Insert("weekly_periods").
		Columns("year", "week_number", "start_date", "end_date", "status").
		Values(p.Year, p.WeekNumber, p.StartDate, p.EndDate, p.Status).
		Suffix("RETURNING id, version")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created := *p
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return &created, nil
}

func (r *Repository) SavePeriod(ctx context.Context, p *domain.WeeklyPeriod) (*domain.WeeklyPeriod, error) {
	statement := r.db.QueryBuilder.Update("weekly_periods").
		Set("status", p.Status).
		Set("closed_at", p.ClosedAt).
		Set("settled_at", p.SettledAt).
		Set("version", p.Version+1).
		Where(sq.Eq{"id": p.ID, "version": p.Version})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrStaleState
	}

	saved := *p
	saved.Version = p.Version + 1
	return &saved, nil
}

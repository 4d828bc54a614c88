package service

import (
	"context"
	"errors"
	"time"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Settlement weeks run Saturday 00:00:00 through Friday 23:59:59 in the
// platform's home timezone (UTC+2), independent of server-local time.
var settlementZone = time.FixedZone("EET", 2*60*60)

// WeekPeriodManager owns the weekly period lifecycle: boundary math, the
// single-active-period rule, and settlement generation at close.
type WeekPeriodManager struct {
	repo   port.Repository
	clock  port.Clock
	calc   *SettlementCalculator
	rate   decimal.Decimal
	logger *zap.Logger
}

func NewWeekPeriodManager(repo port.Repository, clock port.Clock, calc *SettlementCalculator,
	commissionRate decimal.Decimal, logger *zap.Logger) *WeekPeriodManager {
	return &WeekPeriodManager{
		repo:   repo,
		clock:  clock,
		calc:   calc,
		rate:   commissionRate,
		logger: logger,
	}
}

// CurrentPeriod computes the Saturday-to-Friday window containing now.
func (m *WeekPeriodManager) CurrentPeriod(now time.Time) (year int, weekNumber int, start time.Time, end time.Time) {
	local := now.In(settlementZone)
	sinceSaturday := (int(local.Weekday()) - int(time.Saturday) + 7) % 7
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, settlementZone)
	start = day.AddDate(0, 0, -sinceSaturday)
	end = start.AddDate(0, 0, 7).Add(-time.Second)
	year = start.Year()
	weekNumber = (start.YearDay()-1)/7 + 1
	return year, weekNumber, start, end
}

// EnsureActivePeriod returns the active period, creating it lazily from the
// clock when none exists yet.
func (m *WeekPeriodManager) EnsureActivePeriod(ctx context.Context) (*domain.WeeklyPeriod, error) {
	p, err := m.repo.GetActivePeriod(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		return nil, err
	}

	year, week, start, end := m.CurrentPeriod(m.clock.Now())
	created, err := m.repo.CreatePeriod(ctx, &domain.WeeklyPeriod{
		Year:       year,
		WeekNumber: week,
		StartDate:  start,
		EndDate:    end,
		Status:     domain.PeriodStatusActive,
	})
	if err != nil {
		return nil, err
	}
	m.logger.Info("created weekly period",
		zap.Int("year", year), zap.Int("week", week), zap.Time("start", start))
	return created, nil
}

// ClosePeriod closes the active period: aggregates its orders into shop and
// rider settlement records, flips the period to closed, and opens the next
// period. Re-entrant: settlements upsert on (party, period), so retrying a
// partially applied close never duplicates records. Closing with zero orders
// is valid and produces empty settlement lists.
func (m *WeekPeriodManager) ClosePeriod(ctx context.Context, period *domain.WeeklyPeriod) (*domain.WeeklyPeriod, []*domain.ShopSettlement, []*domain.RiderSettlement, error) {
	if period.Status != domain.PeriodStatusActive {
		return nil, nil, nil, domain.ErrPeriodAlreadyClosed
	}

	orders, err := m.repo.ListOrdersInPeriod(ctx, period.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	now := m.clock.Now()
	shopSettlements, err := m.buildShopSettlements(period, orders, now)
	if err != nil {
		return nil, nil, nil, err
	}
	riderSettlements, err := m.buildRiderSettlements(period, orders, now)
	if err != nil {
		return nil, nil, nil, err
	}

	for i, s := range shopSettlements {
		saved, err := m.repo.UpsertShopSettlement(ctx, s)
		if err != nil {
			return nil, nil, nil, err
		}
		shopSettlements[i] = saved
	}
	for i, s := range riderSettlements {
		saved, err := m.repo.UpsertRiderSettlement(ctx, s)
		if err != nil {
			return nil, nil, nil, err
		}
		riderSettlements[i] = saved
	}

	closed := *period
	closed.Status = domain.PeriodStatusClosed
	closed.ClosedAt = &now
	savedPeriod, err := m.repo.SavePeriod(ctx, &closed)
	if err != nil {
		return nil, nil, nil, err
	}

	next := &domain.WeeklyPeriod{
		StartDate: period.EndDate.Add(time.Second),
		Status:    domain.PeriodStatusActive,
	}
	next.EndDate = next.StartDate.AddDate(0, 0, 7).Add(-time.Second)
	next.Year = next.StartDate.Year()
	next.WeekNumber = (next.StartDate.YearDay()-1)/7 + 1
	if _, err := m.repo.CreatePeriod(ctx, next); err != nil {
		// A conflicting insert means a concurrent close already opened the
		// next period; the close itself still succeeded.
		if !errors.Is(err, domain.ErrConflictingData) {
			return nil, nil, nil, err
		}
	}

	m.logger.Info("closed weekly period",
		zap.Uint64("period", period.ID),
		zap.Int("shop_settlements", len(shopSettlements)),
		zap.Int("rider_settlements", len(riderSettlements)))

	return savedPeriod, shopSettlements, riderSettlements, nil
}

// MarkShopSettled marks one shop settlement paid and settles the parent
// period once every record of the period is paid.
func (m *WeekPeriodManager) MarkShopSettled(ctx context.Context, settlementID string) (*domain.ShopSettlement, error) {
	s, err := m.repo.ReadShopSettlement(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	if err := m.requireClosedPeriod(ctx, s.PeriodID); err != nil {
		return nil, err
	}
	settled, err := m.repo.MarkShopSettlementSettled(ctx, s.ID, m.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := m.settlePeriodIfDone(ctx, s.PeriodID); err != nil {
		return nil, err
	}
	return settled, nil
}

// MarkRiderSettled is the rider counterpart of MarkShopSettled.
func (m *WeekPeriodManager) MarkRiderSettled(ctx context.Context, settlementID string) (*domain.RiderSettlement, error) {
	s, err := m.repo.ReadRiderSettlement(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	if err := m.requireClosedPeriod(ctx, s.PeriodID); err != nil {
		return nil, err
	}
	settled, err := m.repo.MarkRiderSettlementSettled(ctx, s.ID, m.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := m.settlePeriodIfDone(ctx, s.PeriodID); err != nil {
		return nil, err
	}
	return settled, nil
}

func (m *WeekPeriodManager) requireClosedPeriod(ctx context.Context, periodID uint64) error {
	p, err := m.repo.ReadPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	if p.Status == domain.PeriodStatusActive {
		return domain.ErrPeriodNotClosed
	}
	return nil
}

func (m *WeekPeriodManager) settlePeriodIfDone(ctx context.Context, periodID uint64) error {
	shops, err := m.repo.ListShopSettlementsByPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	riders, err := m.repo.ListRiderSettlementsByPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	for _, s := range shops {
		if s.Status != domain.SettlementStatusSettled {
			return nil
		}
	}
	for _, s := range riders {
		if s.Status != domain.SettlementStatusSettled {
			return nil
		}
	}

	p, err := m.repo.ReadPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	if p.Status != domain.PeriodStatusClosed {
		return nil
	}
	now := m.clock.Now()
	settled := *p
	settled.Status = domain.PeriodStatusSettled
	settled.SettledAt = &now
	_, err = m.repo.SavePeriod(ctx, &settled)
	return err
}

func (m *WeekPeriodManager) buildShopSettlements(period *domain.WeeklyPeriod, orders []*domain.Order, now time.Time) ([]*domain.ShopSettlement, error) {
	type shopAcc struct {
		agg ShopAggregates
	}
	accs := make(map[uint64]*shopAcc)
	shopIDs := make([]uint64, 0)

	for _, o := range orders {
		acc, ok := accs[o.ShopID]
		if !ok {
			acc = &shopAcc{agg: ShopAggregates{
				GrossSales:        decimal.Zero,
				CommissionRate:    m.rate,
				PointsDiscounts:   decimal.Zero,
				FreeDeliveryCosts: decimal.Zero,
				AdsCost:           decimal.Zero,
			}}
			accs[o.ShopID] = acc
			shopIDs = append(shopIDs, o.ShopID)
		}
		acc.agg.TotalOrders++

		switch o.Status {
		case domain.OrderStatusCancelled:
			acc.agg.CancelledOrders++
		case domain.OrderStatusCompleted:
			acc.agg.CompletedOrders++
			var err error
			if acc.agg.GrossSales, err = acc.agg.GrossSales.Add(o.Subtotal); err != nil {
				return nil, err
			}
			if acc.agg.PointsDiscounts, err = acc.agg.PointsDiscounts.Add(o.PointsDiscount); err != nil {
				return nil, err
			}
			if o.IsFreeDelivery {
				if acc.agg.FreeDeliveryCosts, err = acc.agg.FreeDeliveryCosts.Add(o.DeliveryFee); err != nil {
					return nil, err
				}
			}
		}
	}

	settlements := make([]*domain.ShopSettlement, 0, len(shopIDs))
	for _, shopID := range shopIDs {
		agg := accs[shopID].agg
		summary, err := m.calc.ShopSettlement(agg)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, &domain.ShopSettlement{
			ID:                 uuid.NewString(),
			ShopID:             shopID,
			PeriodID:           period.ID,
			TotalOrders:        agg.TotalOrders,
			CompletedOrders:    agg.CompletedOrders,
			CancelledOrders:    agg.CancelledOrders,
			GrossSales:         agg.GrossSales,
			TotalCommission:    summary.TotalCommission,
			PointsDiscounts:    agg.PointsDiscounts,
			FreeDeliveryCosts:  agg.FreeDeliveryCosts,
			AdsCost:            agg.AdsCost,
			NetPayable:         summary.NetPayable,
			AdminNetCommission: summary.AdminNetCommission,
			Status:             domain.SettlementStatusPending,
			CreatedAt:          now,
		})
	}
	return settlements, nil
}

func (m *WeekPeriodManager) buildRiderSettlements(period *domain.WeeklyPeriod, orders []*domain.Order, now time.Time) ([]*domain.RiderSettlement, error) {
	accs := make(map[uint64]*RiderAggregates)
	riderIDs := make([]uint64, 0)

	for _, o := range orders {
		if o.Status != domain.OrderStatusCompleted || o.RiderID == nil {
			continue
		}
		acc, ok := accs[*o.RiderID]
		if !ok {
			acc = &RiderAggregates{
				TotalDeliveryFees:  decimal.Zero,
				TotalCashHandled:   decimal.Zero,
				CommissionDeducted: decimal.Zero,
			}
			accs[*o.RiderID] = acc
			riderIDs = append(riderIDs, *o.RiderID)
		}
		acc.TotalDeliveries++
		var err error
		// The rider earns the delivery fee on every completed delivery; on
		// free-delivery orders the platform funds it instead of the customer.
		if acc.TotalDeliveryFees, err = acc.TotalDeliveryFees.Add(o.DeliveryFee); err != nil {
			return nil, err
		}
		if acc.TotalCashHandled, err = acc.TotalCashHandled.Add(o.TotalAmount); err != nil {
			return nil, err
		}
	}

	settlements := make([]*domain.RiderSettlement, 0, len(riderIDs))
	for _, riderID := range riderIDs {
		agg := accs[riderID]
		summary, err := m.calc.RiderSettlement(*agg)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, &domain.RiderSettlement{
			ID:                 uuid.NewString(),
			RiderID:            riderID,
			PeriodID:           period.ID,
			TotalDeliveries:    agg.TotalDeliveries,
			TotalDeliveryFees:  agg.TotalDeliveryFees,
			TotalCashHandled:   agg.TotalCashHandled,
			CommissionDeducted: agg.CommissionDeducted,
			NetEarnings:        summary.NetEarnings,
			Status:             domain.SettlementStatusPending,
			CreatedAt:          now,
		})
	}
	return settlements, nil
}

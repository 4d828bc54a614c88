package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/balady/orderledger/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Config carries the business constants the engine runs with. Rates are
// decimals parsed once at startup; no float math downstream.
type Config struct {
	CommissionRate decimal.Decimal
	DeliveryFee    decimal.Decimal
}

// Service wires the calculators, the state machine and the period manager
// over the persistence and auth ports. It is the only entry point the HTTP
// layer and the scheduler talk to.
type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	clock        port.Clock
	conf         Config

	ledger     *PointsLedger
	commission *CommissionEngine
	discounts  *DiscountApplier
	sm         *OrderStateMachine
	calc       *SettlementCalculator
	periods    *WeekPeriodManager

	logger *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	clock port.Clock, conf Config, logger *zap.Logger) (*Service, error) {
	ledger := NewPointsLedger()
	commission := NewCommissionEngine()
	calc := NewSettlementCalculator()
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		clock:        clock,
		conf:         conf,
		ledger:       ledger,
		commission:   commission,
		discounts:    NewDiscountApplier(ledger, commission),
		sm:           NewOrderStateMachine(),
		calc:         calc,
		periods:      NewWeekPeriodManager(repo, clock, calc, conf.CommissionRate, logger.Named("Periods")),
		logger:       logger,
	}, nil
}

func (s *Service) RegisterAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	exAccount, err := s.repo.GetAccountByLogin(ctx, account.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get account", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exAccount != nil {
		return nil, domain.ErrConflictingData
	}

	account.CreatedAt = s.clock.Now()
	newAccount, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		s.logger.Error("Create account", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newAccount, nil
}

func (s *Service) LoginAccount(ctx context.Context, login string, password string) (string, error) {
	account, err := s.repo.GetAccountByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, account.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(account)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

// PlaceOrder computes the full financial breakdown at creation time and
// persists the order in pending status. Redeemed points are deducted before
// the order is written; a failed write refunds the deduction.
func (s *Service) PlaceOrder(ctx context.Context, input port.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrBadRequest
	}

	subtotal := decimal.Zero
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.Price.IsNeg() {
			return nil, domain.ErrBadRequest
		}
		qty, err := decimal.New(item.Quantity, 0)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		line, err := item.Price.Mul(qty)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
	}

	balance := int64(0)
	points, err := s.repo.ReadCustomerPoints(ctx, input.CustomerID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		return nil, err
	}
	if points != nil {
		balance = points.Balance
	}

	result, err := s.discounts.Apply(DiscountInput{
		Subtotal:        subtotal,
		DeliveryFee:     s.conf.DeliveryFee,
		CommissionRate:  s.conf.CommissionRate,
		RequestedPoints: input.RequestedPoints,
		CustomerBalance: balance,
		IsFreeDelivery:  input.IsFreeDelivery,
	})
	if err != nil {
		return nil, err
	}

	period, err := s.periods.EnsureActivePeriod(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	order := &domain.Order{
		Number:             utils.NewOrderNumber(now),
		CustomerID:         input.CustomerID,
		ShopID:             input.ShopID,
		WeekPeriodID:       &period.ID,
		Status:             domain.OrderStatusPending,
		Subtotal:           subtotal,
		DeliveryFee:        s.conf.DeliveryFee,
		IsFreeDelivery:     input.IsFreeDelivery,
		PointsUsed:         result.PointsUsed,
		PointsDiscount:     result.PointsDiscount,
		TotalAmount:        result.CustomerPayable,
		ShopCommission:     result.ShopCommission,
		PlatformCommission: result.PlatformCommission,
		PointsEarned:       s.ledger.PointsEarned(subtotal),
		CreatedAt:          now,
	}

	if result.PointsUsed > 0 {
		_, err = s.repo.UpdateCustomerPoints(ctx, input.CustomerID, func(p *domain.CustomerPoints) error {
			if p.Balance < result.PointsUsed {
				return domain.ErrInsufficientBalance
			}
			p.Balance -= result.PointsUsed
			p.TotalRedeemed += result.PointsUsed
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		if result.PointsUsed > 0 {
			s.refundPoints(ctx, input.CustomerID, result.PointsUsed)
		}
		return nil, err
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, number string) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, number)
}

func (s *Service) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	return s.repo.ListOrdersByCustomer(ctx, customerID)
}

func (s *Service) ListOrdersByShop(ctx context.Context, shopID uint64) ([]*domain.Order, error) {
	return s.repo.ListOrdersByShop(ctx, shopID)
}

// TransitionOrder runs one forward lifecycle step as a version-checked
// read-modify-write. The version carried through the save rejects the loser
// of a concurrent race with ErrStaleState, so exactly one actor wins each
// step. The pickup step records the acting rider on the order; completion
// writes the status flip and the customer's earned points in one
// transaction, then awards the one-shot referral bonus.
func (s *Service) TransitionOrder(ctx context.Context, number string, newStatus domain.OrderStatus, actor domain.ActorRole, actorID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	updated, err := s.sm.Transition(order, newStatus, actor, actorID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if newStatus != domain.OrderStatusCompleted {
		return s.repo.SaveOrder(ctx, updated)
	}

	var credit port.UpdatePointsFn
	if updated.PointsEarned > 0 {
		earned := updated.PointsEarned
		credit = func(p *domain.CustomerPoints) error {
			p.Balance += earned
			p.TotalEarned += earned
			return nil
		}
	}
	saved, err := s.repo.CompleteOrder(ctx, updated, credit)
	if err != nil {
		return nil, err
	}

	if err := s.awardReferralBonus(ctx, saved); err != nil {
		s.logger.Error("Referral bonus on completion",
			zap.String("order", saved.Number), zap.Error(err))
		return nil, err
	}

	return saved, nil
}

func (s *Service) CancelOrder(ctx context.Context, number string, reason string, actor domain.ActorRole) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	updated, err := s.sm.Cancel(order, reason, actor, s.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.SaveOrder(ctx, updated)
	if err != nil {
		return nil, err
	}

	// Redeemed points go back to the customer; the order never happened.
	if saved.PointsUsed > 0 {
		s.refundPoints(ctx, saved.CustomerID, saved.PointsUsed)
	}

	return saved, nil
}

func (s *Service) GetCustomerPoints(ctx context.Context, customerID uint64) (*domain.CustomerPoints, error) {
	return s.repo.ReadCustomerPoints(ctx, customerID)
}

func (s *Service) CloseCurrentWeek(ctx context.Context) (*domain.WeeklyPeriod, []*domain.ShopSettlement, []*domain.RiderSettlement, error) {
	period, err := s.periods.EnsureActivePeriod(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return s.periods.ClosePeriod(ctx, period)
}

// GetSettlementReport rolls a closed period up into the platform-wide
// summary, including the informational referral overlay.
func (s *Service) GetSettlementReport(ctx context.Context, periodID uint64) (*domain.AdminSettlementSummary, error) {
	period, err := s.repo.ReadPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodStatusActive {
		return nil, domain.ErrPeriodNotClosed
	}

	shops, err := s.repo.ListShopSettlementsByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	riders, err := s.repo.ListRiderSettlementsByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrdersInPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	var pointsRedeemed int64
	for _, o := range orders {
		if o.Status == domain.OrderStatusCompleted {
			pointsRedeemed += o.PointsUsed
		}
	}

	summary, err := s.calc.AdminSummary(shops, riders, decimal.Zero, pointsRedeemed)
	if err != nil {
		return nil, err
	}
	summary.PeriodID = periodID

	overlay, err := referralOverlay(orders)
	if err != nil {
		return nil, err
	}
	summary.ReferralOverlay = overlay

	return summary, nil
}

func (s *Service) MarkShopSettlementPaid(ctx context.Context, settlementID string) (*domain.ShopSettlement, error) {
	return s.periods.MarkShopSettled(ctx, settlementID)
}

func (s *Service) MarkRiderSettlementPaid(ctx context.Context, settlementID string) (*domain.RiderSettlement, error) {
	return s.periods.MarkRiderSettled(ctx, settlementID)
}

// awardReferralBonus credits the referrer's one-shot bonus on the customer's
// first completed order. The version check on the completion save already
// guaranteed a single winner for the transition, so this runs at most once
// per order.
func (s *Service) awardReferralBonus(ctx context.Context, order *domain.Order) error {
	referral, err := s.repo.GetReferralByReferred(ctx, order.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		return err
	}
	if referral.PointsAwarded {
		return nil
	}

	referral.PointsAwarded = true
	if _, err := s.repo.SaveReferral(ctx, referral); err != nil {
		return err
	}
	_, err = s.repo.UpdateCustomerPoints(ctx, referral.ReferrerID, func(p *domain.CustomerPoints) error {
		p.Balance += ReferralBonusPoints
		p.TotalEarned += ReferralBonusPoints
		return nil
	})
	return err
}

func (s *Service) refundPoints(ctx context.Context, customerID uint64, points int64) {
	_, err := s.repo.UpdateCustomerPoints(ctx, customerID, func(p *domain.CustomerPoints) error {
		p.Balance += points
		p.TotalRedeemed -= points
		return nil
	})
	if err != nil {
		s.logger.Error("Refund points",
			zap.Uint64("customer", customerID), zap.Int64("points", points), zap.Error(err))
	}
}

// referralOverlay is the independent reporting stream: 5% of subtotal plus
// 15% of delivery fee across completed orders. It never feeds the
// conservation arithmetic.
var (
	overlaySubtotalShare = decimal.MustParse("0.05")
	overlayDeliveryShare = decimal.MustParse("0.15")
)

func referralOverlay(orders []*domain.Order) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status != domain.OrderStatusCompleted {
			continue
		}
		part, err := o.Subtotal.Mul(overlaySubtotalShare)
		if err != nil {
			return decimal.Decimal{}, err
		}
		feePart, err := o.DeliveryFee.Mul(overlayDeliveryShare)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if part, err = part.Add(feePart); err != nil {
			return decimal.Decimal{}, err
		}
		if total, err = total.Add(part); err != nil {
			return decimal.Decimal{}, err
		}
	}
	return total, nil
}

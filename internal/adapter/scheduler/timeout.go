package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/balady/orderledger/internal/adapter/config"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/balady/orderledger/internal/core/service"
	"go.uber.org/zap"
)

const autoRejectReason = "auto-rejected: shop did not accept in time"

// TimeoutPoller scans pending orders and cancels the ones the shop failed to
// accept within the acceptance window. The poller owns the timer; the state
// machine only answers HasTimedOut. Cancellations run through the normal
// transition path, so a racing shop acceptance simply wins by version.
type TimeoutPoller struct {
	logger     *zap.Logger
	repo       port.OrderStore
	svc        port.Service
	clock      port.Clock
	sm         *service.OrderStateMachine
	interval   time.Duration
	orderQueue chan string
}

func NewTimeoutPoller(cfg *config.Scheduler, repo port.OrderStore, svc port.Service,
	clock port.Clock, log *zap.Logger) (*TimeoutPoller, error) {
	return &TimeoutPoller{
		logger:     log,
		repo:       repo,
		svc:        svc,
		clock:      clock,
		sm:         service.NewOrderStateMachine(),
		interval:   cfg.PollInterval,
		orderQueue: make(chan string, 16),
	}, nil
}

// Run starts the scan loop and the cancel workers, and blocks until ctx is
// cancelled.
func (p *TimeoutPoller) Run(ctx context.Context, workers int) error {
	for i := 0; i < workers; i++ {
		go p.cancelWorker(ctx)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.scan(ctx); err != nil {
				p.logger.Error("scan pending orders", zap.Error(err))
			}
		case <-ctx.Done():
			p.logger.Debug("Finished poller")
			return ctx.Err()
		}
	}
}

func (p *TimeoutPoller) scan(ctx context.Context) error {
	orders, err := p.repo.ListOrdersByStatus(ctx, []domain.OrderStatus{domain.OrderStatusPending})
	if err != nil {
		return err
	}

	now := p.clock.Now()
	for _, order := range orders {
		if !p.sm.HasTimedOut(order, now) {
			continue
		}
		p.logger.Debug("> put order in queue (timed out)", zap.String("order", order.Number))
		select {
		case p.orderQueue <- order.Number:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (p *TimeoutPoller) cancelWorker(ctx context.Context) {
	for {
		select {
		case number := <-p.orderQueue:
			_, err := p.svc.CancelOrder(ctx, number, autoRejectReason, domain.RoleAdmin)
			if err != nil {
				// Terminal or stale means someone acted first; nothing to do.
				if errors.Is(err, domain.ErrTerminalState) ||
					errors.Is(err, domain.ErrStaleState) ||
					errors.Is(err, domain.ErrInvalidTransition) {
					continue
				}
				p.logger.Error("auto-reject order",
					zap.String("order", number), zap.Error(err))
			} else {
				p.logger.Info("auto-rejected pending order", zap.String("order", number))
			}
		case <-ctx.Done():
			p.logger.Debug("Finished worker")
			return
		}
	}
}

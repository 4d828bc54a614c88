package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/balady/orderledger/internal/adapter/auth"
	"github.com/balady/orderledger/internal/adapter/config"
	"github.com/balady/orderledger/internal/adapter/handler/http"
	"github.com/balady/orderledger/internal/adapter/logger"
	"github.com/balady/orderledger/internal/adapter/scheduler"
	"github.com/balady/orderledger/internal/adapter/storage"
	"github.com/balady/orderledger/internal/adapter/storage/repository"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/balady/orderledger/internal/core/service"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commissionRate, err := decimal.Parse(conf.Business.CommissionRate)
	if err != nil {
		log.Error("bad commission rate", zap.Error(err))
		return
	}
	deliveryFee, err := decimal.Parse(conf.Business.DeliveryFee)
	if err != nil {
		log.Error("bad delivery fee", zap.Error(err))
		return
	}

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	clock := port.RealClock{}

	svc, err := service.NewService(repo, tokenService, clock,
		service.Config{CommissionRate: commissionRate, DeliveryFee: deliveryFee},
		log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	poller, err := scheduler.NewTimeoutPoller(conf.Scheduler, repo, svc, clock, log.Named("Timeout"))
	if err != nil {
		log.Error("poller creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	settlementHandler, err := http.NewSettlementHandler(svc, log.Named("Settlement handler"))
	if err != nil {
		log.Error("settlement handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, orderHandler, settlementHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx, conf.Scheduler.Workers)
	})
	g.Go(func() error {
		return r.Serve(conf.HTTP.HostString)
	})

	if err := g.Wait(); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

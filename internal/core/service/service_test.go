package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/balady/orderledger/internal/adapter/auth"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/balady/orderledger/internal/core/port/mock"
	"github.com/balady/orderledger/internal/core/service"
	"github.com/balady/orderledger/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, clock *mock.MockClock)

var testConf = service.Config{
	CommissionRate: decimal.MustParse("0.10"),
	DeliveryFee:    decimal.MustParse("15"),
}

func newTestService(t *testing.T, repo *mock.MockRepository, ts port.TokenService, clock *mock.MockClock) *service.Service {
	t.Helper()
	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, ts, clock, testConf, logger)
	assert.NoError(t, err)
	return s
}

func TestService_RegisterAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	type registerTest struct {
		name      string
		account   domain.Account
		mock      prepareMocks
		expError  error
		expResult *domain.Account
	}

	hashedPass, _ := utils.HashPassword("test")
	account := domain.Account{
		ID:       1,
		Login:    "test",
		Password: hashedPass,
		Role:     domain.RoleCustomer,
	}

	tests := []registerTest{
		{
			name:    "Register good",
			account: domain.Account{Login: account.Login, Password: "test", Role: domain.RoleCustomer},
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				clock.EXPECT().Now().Return(now)
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&account, nil)
			},
			expError:  nil,
			expResult: &account,
		},
		{
			name:    "Register already exists",
			account: domain.Account{Login: account.Login, Password: "test", Role: domain.RoleCustomer},
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(&account, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			clock := mock.NewMockClock(mockCtrl)
			test.mock(repo, clock)

			s := newTestService(t, repo, ts, clock)

			result, err := s.RegisterAccount(context.Background(), &test.account)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_LoginAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type loginTest struct {
		name     string
		login    string
		password string
		mock     prepareMocks
		expError error
	}

	hashedPass, _ := utils.HashPassword("test")
	account := domain.Account{
		ID:       1,
		Login:    "test",
		Password: hashedPass,
		Role:     domain.RoleShop,
	}

	tests := []loginTest{
		{
			name:     "Login good",
			login:    account.Login,
			password: "test",
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(&account, nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			login:    account.Login,
			password: "hacker",
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(&account, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			login:    "hacker",
			password: "test",
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), "hacker").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts, err := auth.New()
			assert.NoError(t, err)
			clock := mock.NewMockClock(mockCtrl)
			test.mock(repo, clock)

			s := newTestService(t, repo, ts, clock)

			token, err := s.LoginAccount(context.Background(), test.login, test.password)
			assert.Equal(t, test.expError, err)

			if token != "" {
				payload, err := ts.VerifyToken(token)
				assert.NoError(t, err)
				assert.Equal(t, account.ID, payload.AccountID)
				assert.Equal(t, account.Role, payload.Role)
			}
		})
	}
}

func TestService_PlaceOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	period := &domain.WeeklyPeriod{ID: 7, Status: domain.PeriodStatusActive}

	input := port.PlaceOrderInput{
		CustomerID: 1,
		ShopID:     2,
		Items: []domain.OrderItem{
			{ProductName: "bread", Price: decimal.MustParse("100"), Quantity: 2},
		},
		RequestedPoints: 10,
	}

	type placeOrderTest struct {
		name     string
		input    port.PlaceOrderInput
		mock     prepareMocks
		expError error
		check    func(t *testing.T, order *domain.Order)
	}

	tests := []placeOrderTest{
		{
			name:  "Place order with points redemption",
			input: input,
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				clock.EXPECT().Now().Return(now).AnyTimes()
				repo.EXPECT().ReadCustomerPoints(gomock.Any(), uint64(1)).
					Return(&domain.CustomerPoints{CustomerID: 1, Balance: 50}, nil)
				repo.EXPECT().GetActivePeriod(gomock.Any()).Return(period, nil)
				repo.EXPECT().UpdateCustomerPoints(gomock.Any(), uint64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePointsFn) (*domain.CustomerPoints, error) {
						p := domain.CustomerPoints{CustomerID: 1, Balance: 50}
						if err := fn(&p); err != nil {
							return nil, err
						}
						assert.Equal(t, int64(40), p.Balance)
						assert.Equal(t, int64(10), p.TotalRedeemed)
						return &p, nil
					})
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				assert.Equal(t, uint64(7), *order.WeekPeriodID)
				assert.Equal(t, int64(10), order.PointsUsed)
				assert.Equal(t, int64(2), order.PointsEarned)
				assertDecimal(t, "200", order.Subtotal)
				assertDecimal(t, "20", order.ShopCommission)
				assertDecimal(t, "10", order.PlatformCommission)
				assertDecimal(t, "205", order.TotalAmount)
				assert.NotEmpty(t, order.Number)
			},
		},
		{
			name:  "Create failure refunds the deduction",
			input: input,
			mock: func(repo *mock.MockRepository, clock *mock.MockClock) {
				clock.EXPECT().Now().Return(now).AnyTimes()
				repo.EXPECT().ReadCustomerPoints(gomock.Any(), uint64(1)).
					Return(&domain.CustomerPoints{CustomerID: 1, Balance: 50}, nil)
				repo.EXPECT().GetActivePeriod(gomock.Any()).Return(period, nil)
				deduct := repo.EXPECT().UpdateCustomerPoints(gomock.Any(), uint64(1), gomock.Any()).
					Return(&domain.CustomerPoints{CustomerID: 1, Balance: 40}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInternal)
				repo.EXPECT().UpdateCustomerPoints(gomock.Any(), uint64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePointsFn) (*domain.CustomerPoints, error) {
						p := domain.CustomerPoints{CustomerID: 1, Balance: 40, TotalRedeemed: 10}
						if err := fn(&p); err != nil {
							return nil, err
						}
						assert.Equal(t, int64(50), p.Balance)
						assert.Equal(t, int64(0), p.TotalRedeemed)
						return &p, nil
					}).After(deduct)
			},
			expError: domain.ErrInternal,
		},
		{
			name:     "No items",
			input:    port.PlaceOrderInput{CustomerID: 1, ShopID: 2},
			mock:     func(repo *mock.MockRepository, clock *mock.MockClock) {},
			expError: domain.ErrBadRequest,
		},
		{
			name: "Bad quantity",
			input: port.PlaceOrderInput{
				CustomerID: 1,
				ShopID:     2,
				Items:      []domain.OrderItem{{ProductName: "bread", Price: decimal.MustParse("100"), Quantity: 0}},
			},
			mock:     func(repo *mock.MockRepository, clock *mock.MockClock) {},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			clock := mock.NewMockClock(mockCtrl)
			test.mock(repo, clock)

			s := newTestService(t, repo, ts, clock)

			order, err := s.PlaceOrder(context.Background(), test.input)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, order)
				return
			}
			assert.NoError(t, err)
			test.check(t, order)
		})
	}
}

func TestService_TransitionOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	pendingOrder := func() *domain.Order {
		return &domain.Order{
			Number: "ORD-1", CustomerID: 1, ShopID: 2,
			Status:  domain.OrderStatusPending,
			Version: 3,
		}
	}

	t.Run("Shop accepts pending order", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").Return(pendingOrder(), nil)
		repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				assert.Equal(t, domain.OrderStatusAccepted, o.Status)
				assert.Equal(t, uint64(3), o.Version, "save must carry the read version")
				assert.NotNil(t, o.AcceptedAt)
				saved := *o
				saved.Version++
				return &saved, nil
			})

		s := newTestService(t, repo, ts, clock)
		order, err := s.TransitionOrder(context.Background(), "ORD-1", domain.OrderStatusAccepted, domain.RoleShop, 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusAccepted, order.Status)
	})

	t.Run("Rider pickup records the rider on the order", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		preparing := &domain.Order{
			Number: "ORD-1", CustomerID: 1, ShopID: 2,
			Status:  domain.OrderStatusPreparing,
			Version: 4,
		}

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").Return(preparing, nil)
		repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				assert.Equal(t, domain.OrderStatusPickedUp, o.Status)
				if assert.NotNil(t, o.RiderID, "pickup must persist the rider") {
					assert.Equal(t, uint64(7), *o.RiderID)
				}
				return o, nil
			})

		s := newTestService(t, repo, ts, clock)
		order, err := s.TransitionOrder(context.Background(), "ORD-1", domain.OrderStatusPickedUp, domain.RoleRider, 7)
		assert.NoError(t, err)
		assert.NotNil(t, order.RiderID)
	})

	t.Run("Concurrent writer loses with stale state", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").Return(pendingOrder(), nil)
		repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStaleState)

		s := newTestService(t, repo, ts, clock)
		_, err := s.TransitionOrder(context.Background(), "ORD-1", domain.OrderStatusAccepted, domain.RoleShop, 2)
		assert.ErrorIs(t, err, domain.ErrStaleState)
	})

	t.Run("Customer may not advance the order", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").Return(pendingOrder(), nil)

		s := newTestService(t, repo, ts, clock)
		_, err := s.TransitionOrder(context.Background(), "ORD-1", domain.OrderStatusAccepted, domain.RoleCustomer, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Completion credits points and the referral bonus once", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		order := &domain.Order{
			Number: "ORD-1", CustomerID: 1, ShopID: 2,
			Status:       domain.OrderStatusShopPaid,
			PointsEarned: 2,
			Version:      5,
		}
		referral := &domain.Referral{ID: 4, ReferrerID: 9, ReferredID: 1}

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").Return(order, nil)
		// Status flip and points credit arrive in one store call, never as
		// separate writes.
		repo.EXPECT().CompleteOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order, credit port.UpdatePointsFn) (*domain.Order, error) {
				assert.Equal(t, domain.OrderStatusCompleted, o.Status)
				assert.True(t, o.ShopConfirmedCash)
				if !assert.NotNil(t, credit) {
					return o, nil
				}
				p := domain.CustomerPoints{CustomerID: 1}
				if err := credit(&p); err != nil {
					return nil, err
				}
				assert.Equal(t, int64(2), p.Balance)
				assert.Equal(t, int64(2), p.TotalEarned)
				return o, nil
			})
		repo.EXPECT().GetReferralByReferred(gomock.Any(), uint64(1)).Return(referral, nil)
		repo.EXPECT().SaveReferral(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.Referral) (*domain.Referral, error) {
				assert.True(t, r.PointsAwarded)
				return r, nil
			})
		repo.EXPECT().UpdateCustomerPoints(gomock.Any(), uint64(9), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePointsFn) (*domain.CustomerPoints, error) {
				p := domain.CustomerPoints{CustomerID: 9}
				if err := fn(&p); err != nil {
					return nil, err
				}
				assert.Equal(t, int64(service.ReferralBonusPoints), p.Balance)
				return &p, nil
			})

		s := newTestService(t, repo, ts, clock)
		result, err := s.TransitionOrder(context.Background(), "ORD-1", domain.OrderStatusCompleted, domain.RoleShop, 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, result.Status)
	})

	t.Run("Completion skips an already awarded referral", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		order := &domain.Order{
			Number: "ORD-2", CustomerID: 1, ShopID: 2,
			Status:       domain.OrderStatusShopPaid,
			PointsEarned: 1,
			Version:      2,
		}

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-2").Return(order, nil)
		repo.EXPECT().CompleteOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order, _ port.UpdatePointsFn) (*domain.Order, error) {
				return o, nil
			})
		repo.EXPECT().GetReferralByReferred(gomock.Any(), uint64(1)).
			Return(&domain.Referral{ID: 4, ReferrerID: 9, ReferredID: 1, PointsAwarded: true}, nil)

		s := newTestService(t, repo, ts, clock)
		_, err := s.TransitionOrder(context.Background(), "ORD-2", domain.OrderStatusCompleted, domain.RoleShop, 2)
		assert.NoError(t, err)
	})
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	t.Run("Cancel refunds redeemed points", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		order := &domain.Order{
			Number: "ORD-1", CustomerID: 1, ShopID: 2,
			Status:     domain.OrderStatusPending,
			PointsUsed: 10,
			Version:    1,
		}

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").Return(order, nil)
		repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				assert.Equal(t, domain.OrderStatusCancelled, o.Status)
				assert.Equal(t, "changed my mind", o.CancellationReason)
				return o, nil
			})
		repo.EXPECT().UpdateCustomerPoints(gomock.Any(), uint64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePointsFn) (*domain.CustomerPoints, error) {
				p := domain.CustomerPoints{CustomerID: 1, Balance: 40, TotalRedeemed: 10}
				if err := fn(&p); err != nil {
					return nil, err
				}
				assert.Equal(t, int64(50), p.Balance)
				return &p, nil
			})

		s := newTestService(t, repo, ts, clock)
		result, err := s.CancelOrder(context.Background(), "ORD-1", "changed my mind", domain.RoleCustomer)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, result.Status)
	})

	t.Run("Rider is rejected", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)
		clock.EXPECT().Now().Return(now).AnyTimes()

		repo.EXPECT().ReadOrder(gomock.Any(), "ORD-1").
			Return(&domain.Order{Number: "ORD-1", Status: domain.OrderStatusPending}, nil)

		s := newTestService(t, repo, ts, clock)
		_, err := s.CancelOrder(context.Background(), "ORD-1", "nope", domain.RoleRider)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestService_GetSettlementReport(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Active period is rejected", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)

		repo.EXPECT().ReadPeriod(gomock.Any(), uint64(7)).
			Return(&domain.WeeklyPeriod{ID: 7, Status: domain.PeriodStatusActive}, nil)

		s := newTestService(t, repo, ts, clock)
		_, err := s.GetSettlementReport(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrPeriodNotClosed)
	})

	t.Run("Closed period rolls up with the referral overlay", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		clock := mock.NewMockClock(mockCtrl)

		repo.EXPECT().ReadPeriod(gomock.Any(), uint64(7)).
			Return(&domain.WeeklyPeriod{ID: 7, Status: domain.PeriodStatusClosed}, nil)
		repo.EXPECT().ListShopSettlementsByPeriod(gomock.Any(), uint64(7)).
			Return([]*domain.ShopSettlement{{
				ShopID:             1,
				GrossSales:         decimal.MustParse("200"),
				TotalCommission:    decimal.MustParse("20"),
				PointsDiscounts:    decimal.MustParse("10"),
				FreeDeliveryCosts:  decimal.Zero,
				AdminNetCommission: decimal.MustParse("10"),
			}}, nil)
		repo.EXPECT().ListRiderSettlementsByPeriod(gomock.Any(), uint64(7)).
			Return([]*domain.RiderSettlement{{
				RiderID:           5,
				TotalDeliveryFees: decimal.MustParse("15"),
				NetEarnings:       decimal.MustParse("15"),
			}}, nil)
		repo.EXPECT().ListOrdersInPeriod(gomock.Any(), uint64(7)).
			Return([]*domain.Order{
				{
					Status:      domain.OrderStatusCompleted,
					Subtotal:    decimal.MustParse("200"),
					DeliveryFee: decimal.MustParse("15"),
					PointsUsed:  10,
				},
				{
					Status:      domain.OrderStatusCancelled,
					Subtotal:    decimal.MustParse("100"),
					DeliveryFee: decimal.MustParse("15"),
					PointsUsed:  5,
				},
			}, nil)

		s := newTestService(t, repo, ts, clock)
		summary, err := s.GetSettlementReport(context.Background(), 7)
		assert.NoError(t, err)

		assert.Equal(t, uint64(7), summary.PeriodID)
		assert.Equal(t, int64(10), summary.PointsRedeemed, "cancelled orders never count")
		assertDecimal(t, "200", summary.TotalGrossSales)
		assertDecimal(t, "10", summary.AdminNetRevenue)
		// 5% of 200 + 15% of 15, completed orders only
		assertDecimal(t, "12.25", summary.ReferralOverlay)
	})
}

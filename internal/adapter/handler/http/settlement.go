package http

import (
	"strconv"
	"time"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type SettlementHandler struct {
	Handler
	service port.Service
}

func NewSettlementHandler(service port.Service, logger *zap.Logger) (*SettlementHandler, error) {
	return &SettlementHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type periodResponse struct {
	ID         uint64     `json:"id"`
	Year       int        `json:"year"`
	WeekNumber int        `json:"week_number"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Status     string     `json:"status"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

type shopSettlementResponse struct {
	ID                 string          `json:"id"`
	ShopID             uint64          `json:"shop_id"`
	PeriodID           uint64          `json:"period_id"`
	TotalOrders        int             `json:"total_orders"`
	CompletedOrders    int             `json:"completed_orders"`
	CancelledOrders    int             `json:"cancelled_orders"`
	GrossSales         decimal.Decimal `json:"gross_sales"`
	TotalCommission    decimal.Decimal `json:"store_commission"`
	PointsDiscounts    decimal.Decimal `json:"points_discounts"`
	FreeDeliveryCosts  decimal.Decimal `json:"free_delivery_costs"`
	AdsCost            decimal.Decimal `json:"ads_cost"`
	NetPayable         decimal.Decimal `json:"net_payable"`
	AdminNetCommission decimal.Decimal `json:"admin_net_commission"`
	Status             string          `json:"status"`
}

type riderSettlementResponse struct {
	ID                 string          `json:"id"`
	RiderID            uint64          `json:"rider_id"`
	PeriodID           uint64          `json:"period_id"`
	TotalDeliveries    int             `json:"total_deliveries"`
	TotalDeliveryFees  decimal.Decimal `json:"total_delivery_fees"`
	TotalCashHandled   decimal.Decimal `json:"total_cash_handled"`
	CommissionDeducted decimal.Decimal `json:"commission_deducted"`
	NetEarnings        decimal.Decimal `json:"net_earnings"`
	Status             string          `json:"status"`
}

type closeWeekResponse struct {
	Period           periodResponse            `json:"period"`
	ShopSettlements  []shopSettlementResponse  `json:"shop_settlements"`
	RiderSettlements []riderSettlementResponse `json:"rider_settlements"`
}

func toShopSettlementResponse(s *domain.ShopSettlement) shopSettlementResponse {
	return shopSettlementResponse{
		ID:                 s.ID,
		ShopID:             s.ShopID,
		PeriodID:           s.PeriodID,
		TotalOrders:        s.TotalOrders,
		CompletedOrders:    s.CompletedOrders,
		CancelledOrders:    s.CancelledOrders,
		GrossSales:         s.GrossSales,
		TotalCommission:    s.TotalCommission,
		PointsDiscounts:    s.PointsDiscounts,
		FreeDeliveryCosts:  s.FreeDeliveryCosts,
		AdsCost:            s.AdsCost,
		NetPayable:         s.NetPayable,
		AdminNetCommission: s.AdminNetCommission,
		Status:             string(s.Status),
	}
}

func toRiderSettlementResponse(s *domain.RiderSettlement) riderSettlementResponse {
	return riderSettlementResponse{
		ID:                 s.ID,
		RiderID:            s.RiderID,
		PeriodID:           s.PeriodID,
		TotalDeliveries:    s.TotalDeliveries,
		TotalDeliveryFees:  s.TotalDeliveryFees,
		TotalCashHandled:   s.TotalCashHandled,
		CommissionDeducted: s.CommissionDeducted,
		NetEarnings:        s.NetEarnings,
		Status:             string(s.Status),
	}
}

func (sh *SettlementHandler) CloseWeek(ctx *gin.Context) {
	period, shops, riders, err := sh.service.CloseCurrentWeek(ctx)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	resp := closeWeekResponse{
		Period: periodResponse{
			ID:         period.ID,
			Year:       period.Year,
			WeekNumber: period.WeekNumber,
			StartDate:  period.StartDate,
			EndDate:    period.EndDate,
			Status:     string(period.Status),
			ClosedAt:   period.ClosedAt,
		},
		ShopSettlements:  make([]shopSettlementResponse, 0, len(shops)),
		RiderSettlements: make([]riderSettlementResponse, 0, len(riders)),
	}
	for _, s := range shops {
		resp.ShopSettlements = append(resp.ShopSettlements, toShopSettlementResponse(s))
	}
	for _, s := range riders {
		resp.RiderSettlements = append(resp.RiderSettlements, toRiderSettlementResponse(s))
	}

	sh.handleSuccess(ctx, resp)
}

type reportResponse struct {
	PeriodID               uint64          `json:"period_id"`
	ShopCount              int             `json:"shop_count"`
	RiderCount             int             `json:"rider_count"`
	TotalGrossSales        decimal.Decimal `json:"total_gross_sales"`
	TotalCommission        decimal.Decimal `json:"total_commission"`
	TotalPointsDiscounts   decimal.Decimal `json:"total_points_discounts"`
	TotalFreeDeliveryCosts decimal.Decimal `json:"total_free_delivery_costs"`
	TotalDeliveryFees      decimal.Decimal `json:"total_delivery_fees"`
	TotalRiderEarnings     decimal.Decimal `json:"total_rider_earnings"`
	AdsRevenue             decimal.Decimal `json:"ads_revenue"`
	PointsRedeemed         int64           `json:"points_redeemed"`
	AdminNetRevenue        decimal.Decimal `json:"admin_net_revenue"`
	ReferralOverlay        decimal.Decimal `json:"referral_overlay"`
}

func (sh *SettlementHandler) SettlementReport(ctx *gin.Context) {
	periodID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	summary, err := sh.service.GetSettlementReport(ctx, periodID)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, reportResponse{
		PeriodID:               summary.PeriodID,
		ShopCount:              summary.ShopCount,
		RiderCount:             summary.RiderCount,
		TotalGrossSales:        summary.TotalGrossSales,
		TotalCommission:        summary.TotalCommission,
		TotalPointsDiscounts:   summary.TotalPointsDiscounts,
		TotalFreeDeliveryCosts: summary.TotalFreeDeliveryCosts,
		TotalDeliveryFees:      summary.TotalDeliveryFees,
		TotalRiderEarnings:     summary.TotalRiderEarnings,
		AdsRevenue:             summary.AdsRevenue,
		PointsRedeemed:         summary.PointsRedeemed,
		AdminNetRevenue:        summary.AdminNetRevenue,
		ReferralOverlay:        summary.ReferralOverlay,
	})
}

func (sh *SettlementHandler) SettleShopSettlement(ctx *gin.Context) {
	settled, err := sh.service.MarkShopSettlementPaid(ctx, ctx.Param("id"))
	if err != nil {
		sh.handleError(ctx, err)
		return
	}
	sh.handleSuccess(ctx, toShopSettlementResponse(settled))
}

func (sh *SettlementHandler) SettleRiderSettlement(ctx *gin.Context) {
	settled, err := sh.service.MarkRiderSettlementPaid(ctx, ctx.Param("id"))
	if err != nil {
		sh.handleError(ctx, err)
		return
	}
	sh.handleSuccess(ctx, toRiderSettlementResponse(settled))
}

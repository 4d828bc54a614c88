package http

import (
	"time"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

type placeOrderRequest struct {
	ShopID          uint64             `json:"shop_id"`
	Items           []orderItemRequest `json:"items"`
	RequestedPoints int64              `json:"points_requested"`
	IsFreeDelivery  bool               `json:"is_free_delivery"`
}

// orderResponse keeps the wire names of the original mobile client,
// including the legacy store_commission field.
type orderResponse struct {
	Number             string          `json:"order_number"`
	Status             string          `json:"status"`
	ShopID             uint64          `json:"shop_id"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	IsFreeDelivery     bool            `json:"is_free_delivery"`
	PointsUsed         int64           `json:"points_used"`
	PointsDiscount     decimal.Decimal `json:"points_discount"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	ShopCommission     decimal.Decimal `json:"store_commission"`
	PlatformCommission decimal.Decimal `json:"admin_commission"`
	PointsEarned       int64           `json:"points_earned"`
	CreatedAt          time.Time       `json:"created_at"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		Number:             o.Number,
		Status:             string(o.Status),
		ShopID:             o.ShopID,
		Subtotal:           o.Subtotal,
		DeliveryFee:        o.DeliveryFee,
		IsFreeDelivery:     o.IsFreeDelivery,
		PointsUsed:         o.PointsUsed,
		PointsDiscount:     o.PointsDiscount,
		TotalAmount:        o.TotalAmount,
		ShopCommission:     o.ShopCommission,
		PlatformCommission: o.PlatformCommission,
		PointsEarned:       o.PointsEarned,
		CreatedAt:          o.CreatedAt,
		CancellationReason: o.CancellationReason,
	}
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).AccountID

	req := placeOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := decimal.NewFromFloat64(item.Price)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		items = append(items, domain.OrderItem{
			ProductName: item.ProductName,
			Price:       price,
			Quantity:    item.Quantity,
		})
	}

	order, err := oh.service.PlaceOrder(ctx, port.PlaceOrderInput{
		CustomerID:      customerID,
		ShopID:          req.ShopID,
		Items:           items,
		RequestedPoints: req.RequestedPoints,
		IsFreeDelivery:  req.IsFreeDelivery,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, toOrderResponse(order), 201)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResponse(order))
}

type breakdownResponse struct {
	Subtotal           decimal.Decimal `json:"subtotal"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	IsFreeDelivery     bool            `json:"is_free_delivery"`
	PointsUsed         int64           `json:"points_used"`
	PointsDiscount     decimal.Decimal `json:"points_discount"`
	CustomerPayable    decimal.Decimal `json:"customer_payable"`
	ShopCommission     decimal.Decimal `json:"store_commission"`
	PlatformCommission decimal.Decimal `json:"admin_commission"`
	ShopEarnings       decimal.Decimal `json:"store_earnings"`
	RiderEarnings      decimal.Decimal `json:"rider_earnings"`
	PointsEarned       int64           `json:"points_earned"`
}

func (oh *OrderHandler) GetOrderBreakdown(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	b, err := order.Breakdown()
	if err != nil {
		oh.handleError(ctx, domain.ErrInternal)
		return
	}

	oh.handleSuccess(ctx, breakdownResponse{
		Subtotal:           b.Subtotal,
		DeliveryFee:        b.DeliveryFee,
		IsFreeDelivery:     b.IsFreeDelivery,
		PointsUsed:         b.PointsUsed,
		PointsDiscount:     b.PointsDiscount,
		CustomerPayable:    b.CustomerPayable,
		ShopCommission:     b.ShopCommission,
		PlatformCommission: b.PlatformCommission,
		ShopEarnings:       b.ShopEarnings,
		RiderEarnings:      b.RiderEarnings,
		PointsEarned:       b.PointsEarned,
	})
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	var list []*domain.Order
	var err error
	switch payload.Role {
	case domain.RoleShop:
		list, err = oh.service.ListOrdersByShop(ctx, payload.AccountID)
	default:
		list, err = oh.service.ListOrdersByCustomer(ctx, payload.AccountID)
	}
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, toOrderResponse(o))
	}

	oh.handleSuccess(ctx, result)
}

type transitionRequest struct {
	Status string `json:"status"`
}

func (oh *OrderHandler) TransitionOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := transitionRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.TransitionOrder(ctx, ctx.Param("number"),
		domain.OrderStatus(req.Status), payload.Role, payload.AccountID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResponse(order))
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := cancelRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CancelOrder(ctx, ctx.Param("number"), req.Reason, payload.Role)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResponse(order))
}

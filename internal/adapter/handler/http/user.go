package http

import (
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/balady/orderledger/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	Login      string  `json:"login"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	ReferredBy *uint64 `json:"referred_by,omitempty"`
}

var validRoles = map[domain.ActorRole]bool{
	domain.RoleCustomer: true,
	domain.RoleShop:     true,
	domain.RoleRider:    true,
	domain.RoleAdmin:    true,
}

func (uh *UserHandler) RegisterAccount(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}
	role := domain.ActorRole(req.Role)
	if !validRoles[role] {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	account := &domain.Account{
		Login:      req.Login,
		Password:   hashed,
		Role:       role,
		ReferredBy: req.ReferredBy,
	}

	_, err = uh.service.RegisterAccount(ctx, account)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	// Token return
	uh.LoginAccount(ctx)
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (uh *UserHandler) LoginAccount(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginAccount(ctx, req.Login, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

type pointsResponse struct {
	Balance       int64 `json:"balance"`
	TotalEarned   int64 `json:"total_earned"`
	TotalRedeemed int64 `json:"total_redeemed"`
}

func (uh *UserHandler) CustomerPoints(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).AccountID

	points, err := uh.service.GetCustomerPoints(ctx, customerID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, pointsResponse{
		Balance:       points.Balance,
		TotalEarned:   points.TotalEarned,
		TotalRedeemed: points.TotalRedeemed,
	})
}

package http

import (
	"errors"
	"net/http"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrBadRequest:      http.StatusBadRequest,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrInvalidTransition: http.StatusConflict,
	domain.ErrTerminalState:     http.StatusConflict,
	domain.ErrStaleState:        http.StatusConflict,
	domain.ErrEmptyCancelReason: http.StatusUnprocessableEntity,

	domain.ErrInsufficientBalance:  http.StatusPaymentRequired,
	domain.ErrExceedsCommissionCap: http.StatusUnprocessableEntity,
	domain.ErrNoCommissionHeadroom: http.StatusUnprocessableEntity,

	domain.ErrInvalidAggregateInput: http.StatusUnprocessableEntity,
	domain.ErrPeriodAlreadyClosed:   http.StatusConflict,
	domain.ErrPeriodNotClosed:       http.StatusConflict,
}

// statusForError resolves through wrapped errors so TransitionError and
// RedemptionError map by their sentinel.
func statusForError(err error) (int, bool) {
	for sentinel, code := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := statusForError(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusForError(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

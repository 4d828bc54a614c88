package http

import (
	"strings"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/gin-gonic/gin"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const actorPayloadKey = "actor_payload"

func authCheck(tokenService port.TokenService, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(actorPayloadKey, payload)

		ctx.Next()
	}
}

// requireRole guards routes that only one kind of actor may call.
func requireRole(h *Handler, roles ...domain.ActorRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := getAuthPayload(ctx)
		for _, role := range roles {
			if payload.Role == role {
				ctx.Next()
				return
			}
		}
		h.handleAbort(ctx, domain.ErrForbidden)
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(actorPayloadKey).(*port.TokenPayload)
}

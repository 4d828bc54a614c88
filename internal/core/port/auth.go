package port

import "github.com/balady/orderledger/internal/core/domain"

type TokenPayload struct {
	AccountID uint64
	Role      domain.ActorRole
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(account *domain.Account) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}

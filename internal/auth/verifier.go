// Package auth holds the credential check behind the access gate.
package auth

import (
	"context"
	"errors"

	"blogger/internal/config"
	"blogger/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal is who a verified token speaks for. The static verifier knows no
// user, so its Principal is empty.
type Principal struct {
	UserID int64
	Role   string
}

// Verifier issues tokens at login and checks them at the gate.
type Verifier interface {
	Issue(ctx context.Context, u *models.User) (string, error)
	Verify(ctx context.Context, token string) (*Principal, error)
}

// NewVerifier picks the implementation named by AUTH_MODE.
func NewVerifier(cfg *config.Config) Verifier {
	if cfg.AuthMode == config.AuthModeJWT {
		return NewJWT(cfg.JWTSecret, cfg.AccessTokenTTL)
	}
	return NewStaticToken(cfg.AuthToken)
}

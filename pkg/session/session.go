package session

import (
	"context"
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

type key int

const (
	SessionKey key = 1
)

type Session struct {
	UserID    string `json:"userId"`
	Admin     bool   `json:"admin,omitempty"`
	SessionID string
	jwt.StandardClaims
}

func SessionFromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(SessionKey).(*Session)
	if !ok {
		return nil, fmt.Errorf("Session not found")
	}

	return sess, nil
}

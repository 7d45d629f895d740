package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "minilibrary"

	RoleEditor = "editor"
	RoleReader = "reader"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenMaker struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (t *TokenMaker) New(subject, role string, ttl time.Duration) (string, error) {
	if role != RoleEditor && role != RoleReader {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := t.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenMaker) Parse(tokenStr string) (Claims, error) {
	var c Claims

	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || token == nil || !token.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return c, nil
}

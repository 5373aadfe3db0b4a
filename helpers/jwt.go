package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dicebet/apperr"
)

// Claims carried by an access token. SID ties the token to its session row.
type Claims struct {
	UserID uint   `json:"user_id"`
	SID    string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for the user and session.
func GenerateToken(secret string, userID uint, sid string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := Claims{
		UserID: userID,
		SID:    sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseToken validates a token and returns its claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Wrap(apperr.KindUnauthorized, "INVALID_TOKEN", err)
	}
	return claims, nil
}

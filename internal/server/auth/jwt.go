// Package auth implements session tokens and password hashing for the
// Inkpress server.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkraev/inkpress/internal/common"
)

// Claims carries the standard registered claims plus the authenticated user
// id. The token id (jti) is the session id, so a token can be revoked by
// deleting its session row.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func GenerateToken(userID, sessionID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and returns the user id and session id.
func ParseToken(tokenString string, secretKey []byte) (userID, sessionID string, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.UserID, claims.ID, nil
}

package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"venue_manager/model"
)

var (
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrEmptySecret   = errors.New("token secret is empty")
)

// GenerateAccessToken signs the claims the identity service issues; the API
// itself only verifies them.
func GenerateAccessToken(claim model.TokenClaim, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": claim.UserId,
		"role":   claim.Role,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (model.TokenClaim, error) {
	if len(secret) == 0 {
		return model.TokenClaim{}, ErrEmptySecret
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return model.TokenClaim{}, err
	}
	if !token.Valid {
		return model.TokenClaim{}, ErrInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, ErrInvalidClaims
	}
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return model.TokenClaim{}, ErrInvalidClaims
	}
	role, _ := claims["role"].(string)

	return model.TokenClaim{UserId: uint(userID), Role: role}, nil
}

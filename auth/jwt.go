package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushire/platform/config"
	"github.com/campushire/platform/models"
)

// JWTService verifies the identity tokens issued by the auth service
type JWTService struct {
	secretKey []byte
}

// Claims represents JWT claims
type Claims struct {
	UserID models.FlexibleID `json:"userId"`
	Email  string            `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey: []byte(cfg.JWTSecret),
	}
}

// ValidateToken validates a JWT token and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID.IsZero() {
		return nil, errors.New("token has no userId")
	}

	return claims, nil
}

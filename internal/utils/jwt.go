package utils

import (
	"errors"
	"fmt"
	"time"

	"minimal_api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSigningKeyNotSet is returned when tokens are validated without a configured secret
var ErrSigningKeyNotSet = errors.New("jwt signing key not configured")

// JWTClaims custom claims for JWT.
// Profile and Role hold the same value; Role is the one checked by the role middleware.
type JWTClaims struct {
	Email   string `json:"Email"`
	Profile string `json:"Perfil"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey       string
	expirationHours int64
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// GenerateToken signs a token for the administrator.
// It returns an empty string when no secret is configured.
func (ju *JWTUtil) GenerateToken(admin *model.Administrator) (string, error) {
	if ju.secretKey == "" {
		return "", nil
	}

	now := time.Now()
	claims := &JWTClaims{
		Email:   admin.Email,
		Profile: admin.Role.String(),
		Role:    admin.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour * time.Duration(ju.expirationHours))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the JWT token
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	if ju.secretKey == "" {
		return nil, ErrSigningKeyNotSet
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenExpiry is how long an admin session token stays valid.
// There is no refresh or revocation: a token lives out its full lifetime.
const AdminTokenExpiry = 24 * time.Hour

const RoleAdmin = "admin"

// TokenSecretKey overrides the signing secret when set. When empty,
// JWT_SECRET is read per call, so a .env loaded at startup is honored.
var TokenSecretKey string

func secretKey() []byte {
	if TokenSecretKey != "" {
		return []byte(TokenSecretKey)
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidSigningMethod = errors.New("invalid signing method")
)

type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAdminToken signs a token carrying the admin identity
func GenerateAdminToken(username string) (string, error) {
	claims := TokenClaims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AdminTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// VerifyToken returns the claims of a well-formed, unexpired,
// signature-valid token. Verification is stateless.
func VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSigningMethod, token.Header["alg"])
		}
		return secretKey(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

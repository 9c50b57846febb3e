package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an access token. Deliberately minimal: just the user.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

var (
	signingSecret []byte
	tokenTTL      = time.Hour
)

// Configure sets the signing secret and token lifetime. Called once at
// startup before any token is issued or parsed.
func Configure(secret string, ttl time.Duration) {
	signingSecret = []byte(secret)
	if ttl != 0 {
		tokenTTL = ttl
	}
}

// GenerateToken issues a signed HS256 access token for the user.
func GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "niddle",
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return signingSecret, nil
	}, jwt.WithIssuer("niddle"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

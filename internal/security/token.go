package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Radithya02/Catering-Food/configs"
)

var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 session token for a logged-in account. The
// subject claim carries the username; iss/aud pin the token to this service.
func IssueToken(cfg configs.Config, username string) (string, time.Time, error) {
	now := time.Now()
	ttl := cfg.Security.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	expires := now.Add(ttl)

	claims := jwt.MapClaims{
		"iss": cfg.Security.Issuer,
		"aud": cfg.Security.Audience,
		"sub": username,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Security.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ParseToken verifies signature, issuer and audience and returns the subject
// username. A small leeway absorbs clock skew between clients and server.
func ParseToken(cfg configs.Config, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Security.JWTSecret), nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if claims["iss"] != cfg.Security.Issuer || claims["aud"] != cfg.Security.Audience {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

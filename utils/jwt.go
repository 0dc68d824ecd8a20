package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// RoleVet is the role claim carried by veterinarian session tokens.
const RoleVet = "vet"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongRole    = errors.New("token role not permitted")
)

// GenerateToken creates an HS256 token for subject with the given role.
// The token expires after the specified duration.
func GenerateToken(secret, subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(secret, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
}

// ExtractIDFromToken returns the subject of a valid token whose role claim equals role.
func ExtractIDFromToken(secret, tokenString, role string) (string, error) {
	token, err := ValidateToken(secret, tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if r, _ := claims["role"].(string); r != role {
		return "", ErrWrongRole
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}

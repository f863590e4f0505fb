package auth

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	PermPayrollReport = "payroll.report"
	PermPayrollExport = "payroll.export"
)

var DefaultPermissions = []string{PermPayrollReport, PermPayrollExport}

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Permissions []string `json:"perms"`
	jwt.RegisteredClaims
}

// UserContext is the caller identity attached to a request.
type UserContext struct {
	Subject     string
	Permissions []string
}

func (u UserContext) Has(permission string) bool {
	return slices.Contains(u.Permissions, permission)
}

func GenerateToken(secret, subject string, permissions []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

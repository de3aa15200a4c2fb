package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrportal/internal"
)

// Identity is what the credential subsystem knows about an employee. It never
// carries the password hash; that stays behind the repository.
type Identity struct {
	EmployeeID int64  `json:"employee_id"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims are the JWT claims carried by both access and refresh tokens.
type Claims struct {
	EmployeeID int64 `json:"employee_id"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates session tokens.
type TokenGenerator interface {
	GenerateAccessToken(employeeID int64) (string, error)
	GenerateRefreshToken(employeeID int64) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = internal.ErrInvalidCredentials
	ErrInvalidToken       = internal.ErrInvalidToken
	ErrTokenExpired       = internal.ErrTokenExpired
)

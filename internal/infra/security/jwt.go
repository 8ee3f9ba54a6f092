package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Claims are the fields this service reads out of a dashboard token. Tokens
// are issued by the external identity service; we only verify them here.
type Claims struct {
	Subject string
	Role    Role
	Email   string
	Name    string
}

var ErrInvalidToken = errors.New("invalid token")

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

type jwtClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (s *JWTService) ParseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Subject: claims.Subject,
		Role:    Role(claims.Role),
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// SignToken mints a token with the same shape the identity service issues.
// Production traffic never calls this; it exists for local setups and tests.
func (s *JWTService) SignToken(subject string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

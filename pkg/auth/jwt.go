package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

type JWTServiceInterface interface {
	GenerateJWT(principal domain.Principal, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

// Claims mirror the identity provider's token payload: user id plus the two
// non-exclusive role flags.
type Claims struct {
	UserID       int  `json:"user_id"`
	IsEmployer   bool `json:"is_employer"`
	IsFreelancer bool `json:"is_freelancer"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(principal domain.Principal, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:       principal.ID,
		IsEmployer:   principal.IsEmployer,
		IsFreelancer: principal.IsFreelancer,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "marketplace-idp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 || claims.Issuer != "marketplace-idp" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"personalysis/internal/model"
	"personalysis/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles company authentication for the dashboard API
type AuthService struct {
	companyRepo repository.CompanyRepo
	jwtSecret   []byte
}

// NewAuthService creates a new auth service
func NewAuthService(companyRepo repository.CompanyRepo, jwtSecret string) *AuthService {
	return &AuthService{
		companyRepo: companyRepo,
		jwtSecret:   []byte(jwtSecret),
	}
}

// HashPassword returns the stored form of a password
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", sum)
}

// Login validates credentials and returns a company-scoped token
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	company, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrInvalidCredentials
	}
	hashed := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hashed), []byte(company.PasswordHash)) != 1 {
		return nil, ErrInvalidCredentials
	}

	claims := &model.CompanyClaims{
		CompanyID: company.ID,
		Email:     company.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:     tokenString,
		CompanyID: company.ID,
	}, nil
}

// ValidateToken validates a company JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.CompanyClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CompanyClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CompanyClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

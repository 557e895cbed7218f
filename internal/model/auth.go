package model

import "github.com/golang-jwt/jwt/v5"

// CompanyClaims are JWT claims for company dashboard tokens
type CompanyClaims struct {
	CompanyID string `json:"companyId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for company login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token     string `json:"token"`
	CompanyID string `json:"companyId"`
}

package models

import "github.com/golang-jwt/jwt/v4"

// User is the identity the feed attributes actions to. It comes from the
// external auth provider; the engine never creates or stores users.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

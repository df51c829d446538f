package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	m "somangchurch_backend/internals/features/users/auth/model"
)

const accessTokenTTL = 12 * time.Hour

func JWTSecret() (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

// IssueAccessToken signs an HS256 access token carrying the identity claims
// the auth middleware hydrates locals from.
func IssueAccessToken(user m.UserModel) (string, error) {
	secret, err := JWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	if user.UserMinistryID != nil {
		claims["ministry_id"] = user.UserMinistryID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

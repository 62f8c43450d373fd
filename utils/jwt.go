package utils

import (
	"errors"
	"time"

	"occlusa/config"
	"occlusa/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "occlusa-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for a staff user. The role and optional
// provider link travel in the claims so the service can rebuild the caller's
// UserContext without a user store round trip.
func GenerateToken(userID string, role models.UserRole, providerID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	if providerID != "" {
		claims["providerId"] = providerID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseUserContext validates a token string and extracts the caller identity.
func ParseUserContext(tokenString string) (models.UserContext, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return models.UserContext{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.UserContext{}, errors.New("invalid token claims")
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return models.UserContext{}, errors.New("token missing identity claims")
	}

	userCtx := models.UserContext{
		UserID: userID,
		Role:   models.UserRole(role),
	}
	if providerID, ok := claims["providerId"].(string); ok {
		userCtx.ProviderID = providerID
	}
	return userCtx, nil
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey []byte

// Claims 自定义JWT声明
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SetJWTSecret 在启动时注入签名密钥
func SetJWTSecret(secret string) {
	jwtKey = []byte(secret)
}

// GenerateToken 生成JWT令牌
func GenerateToken(userID string) (string, error) {
	if len(jwtKey) == 0 {
		return "", errors.New("jwt secret not configured")
	}
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour * 30)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken 解析JWT令牌，兼容 "Bearer " 前缀
func ParseToken(tokenString string) (*Claims, error) {
	if len(jwtKey) == 0 {
		return nil, errors.New("jwt secret not configured")
	}
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("无效的令牌")
}

package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 签名密钥
	TokenTTL  time.Duration // Token 有效期
	Issuer    string        // 签发者
}

// TokenCookie 浏览器访问首页时从该 cookie 读取 token
const TokenCookie = "fs_token"

// ==================== Claims 定义 ====================

// MemberClaims 家庭成员声明
type MemberClaims struct {
	Member string `json:"member"`
	jwt.RegisteredClaims
}

// ==================== Token 生成 ====================

// GenerateToken 为家庭成员签发 Token
func GenerateToken(cfg *JWTConfig, member string) (string, error) {
	if cfg == nil || cfg.SecretKey == "" {
		return "", errors.New("jwt secret is not configured")
	}
	now := time.Now()
	claims := &MemberClaims{
		Member: member,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   member,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SecretKey))
}

// ==================== Token 解析 ====================

// ParseToken 解析 Token
func ParseToken(cfg *JWTConfig, tokenString string) (*MemberClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MemberClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.SecretKey), nil
	}, jwt.WithIssuer(cfg.Issuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*MemberClaims); ok && token.Valid && claims.Member != "" {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyMember = "member"
)

// JWTAuth JWT 认证中间件。cfg 为 nil 时不做认证。
func JWTAuth(cfg *JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg == nil {
			c.Next()
			return
		}

		raw, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := ParseToken(cfg, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 注入成员信息到 Context
		c.Set(ContextKeyMember, claims.Member)

		c.Next()
	}
}

// extractToken 优先读 Authorization: Bearer，其次读 cookie
func extractToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// ==================== 辅助函数 ====================

// GetMember 从 Context 获取当前家庭成员，未认证时为空
func GetMember(c *gin.Context) string {
	return c.GetString(ContextKeyMember)
}

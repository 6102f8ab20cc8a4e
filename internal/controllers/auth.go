package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const TokenSize = 16

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

// AuthLogin checks the credentials against the configured users and issues an
// access and a refresh token, both registered in Redis.
func (c *AuthController) AuthLogin(ctx context.Context, req *entity.LoginRequest) (string, string, error) {
	user, ok := c.deps.Config.FindUser(req.Username)
	if !ok {
		c.deps.Logger.Warn("User not found", slog.String("username", req.Username))
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.deps.Logger.Warn("Invalid password", slog.String("username", req.Username))
		return "", "", ErrInvalidCredentials
	}

	claims := entity.Claims{Username: user.Username, Role: user.Role}

	accessToken, err := c.createToken(claims, c.deps.Config.Auth.AccessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := c.createToken(claims, c.deps.Config.Auth.RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}

	if err = c.deps.Redis.Set(ctx, "access_token:"+accessToken, "valid", c.deps.Config.Auth.AccessTokenTTL).Err(); err != nil {
		c.deps.Logger.Error("Error setting access token", slog.String("error", err.Error()))
		return "", "", err
	}

	if err = c.deps.Redis.Set(ctx, "refresh_token:"+refreshToken, "valid", c.deps.Config.Auth.RefreshTokenTTL).Err(); err != nil {
		c.deps.Logger.Error("Error setting refresh token", slog.String("error", err.Error()))
		return "", "", err
	}

	c.deps.Logger.Info("User logged in", slog.String("username", user.Username))
	return accessToken, refreshToken, nil
}

// AuthLogout revokes the access token in the header and, when given, the refresh token.
func (c *AuthController) AuthLogout(ctx context.Context, authHeader, refreshToken string) error {
	keys := []string{"access_token:" + strings.TrimPrefix(authHeader, "Bearer ")}
	if refreshToken != "" {
		keys = append(keys, "refresh_token:"+refreshToken)
	}

	if err := c.deps.Redis.Del(ctx, keys...).Err(); err != nil {
		c.deps.Logger.Error("Error deleting tokens from Redis", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (c *AuthController) createToken(claims entity.Claims, ttl time.Duration) (string, error) {
	tokenID, err := generateTokenID(c.deps.Logger)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims.TokenID = tokenID
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.Username,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Auth.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()))
		return "", err
	}

	return tokenStr, nil
}

func generateTokenID(logger *slog.Logger) (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// CheckUserToken validates a "Bearer <token>" header against the signing key
// and the Redis registry.
func (c *AuthController) CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader || tokenStr == "" {
		c.deps.Logger.Warn("Invalid bearer token")
		return nil, ErrInvalidToken
	}

	if err := c.deps.Redis.Get(ctx, "access_token:"+tokenStr).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			c.deps.Logger.Warn("Token revoked")
			return nil, ErrTokenRevoked
		}

		c.deps.Logger.Error("Error checking token", slog.String("error", err.Error()))
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		c.deps.Logger.Warn("Error parsing token", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*entity.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

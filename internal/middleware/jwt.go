package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"SHAREMYTRIP_WEB/internal/config"
	"SHAREMYTRIP_WEB/internal/models"
)

type contextKey string

const contextUser contextKey = "currentUser"

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given user
func GenerateToken(user models.CurrentUser, cfg *config.JWTConfig) (string, error) {
	claims := JWTClaims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// AuthMiddleware resolves the signed-in user from the token cookie or a
// Bearer header. Requests without a valid token continue anonymously.
func AuthMiddleware(cfg *config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := tokenFromRequest(r, cfg.CookieName)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := ValidateToken(tokenString, cfg)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user := models.CurrentUser{ID: claims.UserID, FirstName: claims.FirstName, LastName: claims.LastName}
			next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), user)))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	// Extract token from "Bearer <token>"
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// WithCurrentUser stores user in ctx
func WithCurrentUser(ctx context.Context, user models.CurrentUser) context.Context {
	return context.WithValue(ctx, contextUser, user)
}

// CurrentUser returns the signed-in user, or the zero user when anonymous
func CurrentUser(ctx context.Context) models.CurrentUser {
	u, _ := ctx.Value(contextUser).(models.CurrentUser)
	return u
}

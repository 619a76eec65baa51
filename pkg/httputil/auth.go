package httputil

import (
	"net/http"
	"strings"

	"github.com/fixpoint/fixpoint-backend/pkg/actor"
	"github.com/fixpoint/fixpoint-backend/pkg/config"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims issued by the host application
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Auth validates the Bearer token and attaches the acting user to the
// request context. Routes behind this middleware can rely on
// actor.FromContext returning a non-nil actor.
func Auth(cfg *config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				Error(w, errors.Unauthorized("missing bearer token"))
				return
			}

			claims, err := parseToken(strings.TrimPrefix(header, "Bearer "), cfg.Secret)
			if err != nil {
				Error(w, err)
				return
			}

			a := &actor.Actor{
				ID:   claims.UserID,
				Name: claims.Name,
				Role: claims.Role,
			}

			next.ServeHTTP(w, r.WithContext(actor.WithActor(r.Context(), a)))
		})
	}
}

func parseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.TokenInvalid()
		}
		return []byte(secret), nil
	})

	if err != nil {
		if strings.Contains(err.Error(), "token is expired") {
			return nil, errors.TokenExpired()
		}
		return nil, errors.TokenInvalid()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.TokenInvalid()
	}

	return claims, nil
}

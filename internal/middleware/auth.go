package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vancomm/filling-server/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
)

func Auth(log *slog.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParsePlayerClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			log.Debug("authenticated request", slog.String("username", claims.Username))
			ctx := context.WithValue(r.Context(), CtxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package infra

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/s21platform/livestream-service/internal/client/account"
	"github.com/s21platform/livestream-service/internal/config"
	"github.com/s21platform/livestream-service/internal/model"
)

const apiPrefix = "/api/v1"

type KeyResolver interface {
	ResolveKey(ctx context.Context, key string) (*model.KeyInfo, error)
}

// AuthInterceptorHTTP guards the dashboard surface. The LNURL and download
// endpoints stay open: third-party wallets carry no credentials.
func AuthInterceptorHTTP(next http.Handler, resolver KeyResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, apiPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get("X-Api-Key")
		if key == "" {
			writeAuthError(w, "missing X-Api-Key header", http.StatusUnauthorized)
			return
		}

		info, err := resolver.ResolveKey(r.Context(), key)
		if err != nil {
			if errors.Is(err, account.ErrUnknownKey) {
				writeAuthError(w, "invalid api key", http.StatusUnauthorized)
				return
			}
			writeAuthError(w, "failed to resolve api key", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyWallet, info.Wallet)
		ctx = context.WithValue(ctx, config.KeyAccess, info.Access)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

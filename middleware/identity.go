// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

const (
	HeaderIdentity  = "X-Identity"
	HeaderSignature = "X-Identity-Signature"
)

type identityKey struct{}

// WithIdentity returns ctx carrying the verified caller identity.
func WithIdentity(ctx context.Context, id voting.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity placed by RequireIdentity.
func IdentityFrom(ctx context.Context) (voting.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(voting.Identity)
	return id, ok
}

// RequireIdentity rejects requests without a valid identity signature with
// 401 and passes the identity to next through the request context.
func RequireIdentity(salt string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := r.Header.Get(HeaderIdentity)
		signature := r.Header.Get(HeaderSignature)

		if err := auth.VerifyIdentity(identity, signature, salt); err != nil {
			slog.Warn("identity rejected",
				"path", r.URL.Path,
				"caller", auth.Fingerprint(identity, salt),
				"error", err,
			)
			message := "invalid identity signature"
			if errors.Is(err, auth.ErrMissingIdentity) {
				message = "missing " + HeaderIdentity + " header"
			}
			ErrorResponse(w, http.StatusUnauthorized, models.CodeUnauthenticated, message)
			return
		}

		next(w, r.WithContext(WithIdentity(r.Context(), voting.Identity(identity))))
	}
}

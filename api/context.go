package api

import (
	"context"

	"github.com/OmarHamdi11/blog-rest-api/auth"
)

type keyType string

const (
	identityKey  keyType = "identity"
	requestIDKey keyType = "requestID"
)

// ctxWithIdentity adds the authenticated identity to the context
func ctxWithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFromCtx retrieves the authenticated identity, if any
func identityFromCtx(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

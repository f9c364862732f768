package types

import (
	"context"

	"github.com/google/uuid"
)

type ContextKey string

const (
	CtxRequestID    ContextKey = "ctx_request_id"
	CtxUserID       ContextKey = "ctx_user_id"
	CtxCapabilities ContextKey = "ctx_capabilities"

	// DefaultUserID is used for system-initiated operations (cron, migrations)
	// where no authenticated actor is present.
	DefaultUserID = "system"
)

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxUserID).(string); ok {
		return id
	}
	return ""
}

// GetCapabilities returns the capability set attached to the request context.
// A missing set means no gated action is permitted.
func GetCapabilities(ctx context.Context) CapabilitySet {
	if caps, ok := ctx.Value(CtxCapabilities).(CapabilitySet); ok {
		return caps
	}
	return CapabilitySet{}
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

func WithCapabilities(ctx context.Context, caps CapabilitySet) context.Context {
	return context.WithValue(ctx, CtxCapabilities, caps)
}

func GenerateRequestID() string {
	return uuid.New().String()
}

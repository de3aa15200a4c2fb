package internal

import (
	"context"
	"time"
)

// AuthContext identifies the authenticated caller for the current request.
// It is passed explicitly through handlers and services; there is no ambient
// session state anywhere in the codebase.
type AuthContext struct {
	EmployeeID int64
	IsAdmin    bool
}

type ctxKey string

const contextAuthKey ctxKey = "authContext"

func ContextWithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextAuthKey, ac)
}

func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	if ctx == nil {
		return AuthContext{}, false
	}
	ac, ok := ctx.Value(contextAuthKey).(AuthContext)
	return ac, ok
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}

package utils

import "context"

type ContextKey string

// UserIDFromContext reads the acting user id placed in the request context
// by the JWT middleware. JWT numeric claims decode as float64.
func UserIDFromContext(ctx context.Context) (int, bool) {
	idFloat, ok := ctx.Value(ContextKey("userId")).(float64)
	if !ok {
		return 0, false
	}
	return int(idFloat), true
}

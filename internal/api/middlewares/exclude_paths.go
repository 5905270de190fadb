package middlewares

import "net/http"

type Middleware func(http.Handler) http.Handler

// MiddlewaresExcludePaths wraps a middleware so the listed paths bypass
// it. Used to keep signup/login outside the JWT gate.
func MiddlewaresExcludePaths(middleware Middleware, excluded ...string) Middleware {
	skip := make(map[string]bool, len(excluded))
	for _, path := range excluded {
		skip[path] = true
	}

	return func(next http.Handler) http.Handler {
		wrapped := middleware(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request
// body sizes to limit bytes. Requests advertising an oversized
// Content-Length are rejected with 413 before the handler runs; streaming
// bodies without a Content-Length are wrapped in http.MaxBytesReader, which
// fails the handler's read once the limit is exceeded.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

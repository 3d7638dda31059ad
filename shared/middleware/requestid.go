package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIdKey struct{}

const RequestIdHeader = "X-Request-Id"

// RequestId tags every request with an id, reusing the caller's header when
// present. The API client forwards it to the backend.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIdKey{}, id)))
	})
}

// RequestIdFromContext returns "" if the context carries no id.
func RequestIdFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

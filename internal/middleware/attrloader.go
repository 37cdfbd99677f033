package middleware

import (
	"context"
	"net/http"

	"github.com/rpattn/crmql/internal/attrloader"
	"github.com/rpattn/crmql/internal/metadata"
)

type ctxKey string

const attributeLoaderKey ctxKey = "attributeLoader"

// AttributeLoaderMiddleware attaches a per-request attribute metadata
// loader to the request context, so clause resolutions within one
// translation batch into a single list call per object.
func AttributeLoaderMiddleware(lister metadata.AttributeLister) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loader := attrloader.NewAttributeLoader(lister)

			ctx := context.WithValue(r.Context(), attributeLoaderKey, loader)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AttributeLoaderFromContext retrieves the attribute loader from context
func AttributeLoaderFromContext(ctx context.Context) *attrloader.AttributeLoader {
	if l, ok := ctx.Value(attributeLoaderKey).(*attrloader.AttributeLoader); ok {
		return l
	}
	return nil
}

package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiRoutePatternOrPath keeps metric label cardinality bounded: titles in
// DELETE /products/{kind}/{title} collapse onto the route pattern.
func ChiRoutePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if rp := rc.RoutePattern(); rp != "" {
			return rp
		}
	}
	return r.URL.Path
}

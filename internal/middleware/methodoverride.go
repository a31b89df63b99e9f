package middleware

import (
	"net/http"
	"strings"
)

// overrideParam is the query/form parameter browsers use to tunnel
// PUT and DELETE through form POSTs.
const overrideParam = "_method"

// MethodOverride rewrites a POST into the verb named by the _method
// query or form parameter, before routing happens. Only PUT and DELETE
// are honored.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.URL.Query().Get(overrideParam)
			if override == "" {
				// ParseForm caches the body in r.PostForm, so
				// handlers can still read their fields afterwards.
				if err := r.ParseForm(); err == nil {
					override = r.PostForm.Get(overrideParam)
				}
			}
			switch strings.ToUpper(override) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}

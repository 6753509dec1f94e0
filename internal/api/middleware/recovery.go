package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/refarch/movies-api/internal/api/shared"
)

// Recovery is the outermost line of defense against panics in request
// processing. A recovered panic is routed through the same error
// translation as any other unhandled failure: the client receives the
// generic 500 envelope and the panic value plus stack trace are logged
// once at error level.
//
// Failures inside the translation itself are not re-recovered; they fall
// through to net/http's own handling.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					// The handler aborted the connection on purpose.
					panic(rec)
				}
				err := fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
				shared.RespondWithError(w, r, err)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

package methodfilter

import (
	"net/http"

	"github.com/dadrus/gjallar/internal/accesscontext"
	"github.com/dadrus/gjallar/internal/gjallar"
)

func New(method string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if req.Method != method {
				accesscontext.SetError(req.Context(), gjallar.ErrMethodNotAllowed)
				rw.WriteHeader(http.StatusMethodNotAllowed)

				return
			}

			next.ServeHTTP(rw, req)
		})
	}
}

package handler

import "net/http"

// Factory creates a request context for each incoming request.
type Factory[C Context] func(w http.ResponseWriter, r *http.Request) C

// Wrap converts a type-safe handler into a standard http.HandlerFunc so it can
// be registered with any routing library. The factory produces the request
// context and the error handler receives both response rendering errors and
// nil responses.
func Wrap[C Context](h HandlerFunc[C], factory Factory[C], errHandler ErrorHandler[C]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := factory(w, r)

		response := h(ctx)
		if response == nil {
			errHandler(ctx, ErrNilResponse)
			return
		}

		if err := response(w, r); err != nil {
			errHandler(ctx, err)
		}
	}
}

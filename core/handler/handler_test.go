package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/handler"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	factory := func(w http.ResponseWriter, r *http.Request) handler.Context {
		return handler.NewContext(w, r, nil)
	}

	t.Run("renders_handler_response", func(t *testing.T) {
		t.Parallel()

		h := func(ctx handler.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusTeapot)
				_, err := w.Write([]byte("short and stout"))
				return err
			}
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.Wrap(h, factory, func(ctx handler.Context, err error) {
			t.Fatalf("unexpected error: %v", err)
		})(w, r)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "short and stout", w.Body.String())
	})

	t.Run("nil_response_goes_to_error_handler", func(t *testing.T) {
		t.Parallel()

		h := func(ctx handler.Context) handler.Response { return nil }

		var got error
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.Wrap(h, factory, func(ctx handler.Context, err error) {
			got = err
		})(w, r)

		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("render_error_goes_to_error_handler", func(t *testing.T) {
		t.Parallel()

		h := func(ctx handler.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				return assert.AnError
			}
		}

		var got error
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.Wrap(h, factory, func(ctx handler.Context, err error) {
			got = err
		})(w, r)

		assert.ErrorIs(t, got, assert.AnError)
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	var order []string

	record := func(name string) handler.Middleware[handler.Context] {
		return func(next handler.HandlerFunc[handler.Context]) handler.HandlerFunc[handler.Context] {
			return func(ctx handler.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := func(ctx handler.Context) handler.Response {
		order = append(order, "handler")
		return func(w http.ResponseWriter, r *http.Request) error { return nil }
	}

	chained := handler.Chain(h, record("outer"), record("inner"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := chained(handler.NewContext(w, r, nil))
	require.NotNil(t, resp)

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("param_delegates_to_extractor", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/products/42", nil)

		ctx := handler.NewContext(w, r, func(_ *http.Request, key string) string {
			if key == "id" {
				return "42"
			}
			return ""
		})

		assert.Equal(t, "42", ctx.Param("id"))
		assert.Empty(t, ctx.Param("missing"))
	})

	t.Run("nil_extractor_returns_empty", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(w, r, nil)

		assert.Empty(t, ctx.Param("id"))
	})

	t.Run("set_value_shadows_request_context", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(w, r, nil)

		type key struct{}
		assert.Nil(t, ctx.Value(key{}))

		ctx.SetValue(key{}, "stored")
		assert.Equal(t, "stored", ctx.Value(key{}))
	})
}

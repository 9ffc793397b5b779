package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/binder"
)

// stubBinder matches a single type and records its identity in the bound value.
type stubBinder struct {
	name    string
	matches reflect.Type
}

func (s stubBinder) Name() string { return s.name }

func (s stubBinder) CanBind(d binder.Descriptor) bool {
	return d.Type == s.matches
}

func (s stubBinder) Bind(_ context.Context, raw binder.RawValue, _ binder.Descriptor) (binder.BoundValue, error) {
	return binder.Bound(s.name + ":" + raw.Value), nil
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	stringType := reflect.TypeFor[string]()

	t.Run("first_match_wins", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		require.NoError(t, reg.Register(
			stubBinder{name: "first", matches: stringType},
			stubBinder{name: "second", matches: stringType},
		))
		reg.Freeze()

		b, ok := reg.Resolve(binder.Param[string]("q", binder.SourceQuery))
		require.True(t, ok)
		assert.Equal(t, "first", b.Name())
	})

	t.Run("registration_order_changes_winner", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		require.NoError(t, reg.Register(
			stubBinder{name: "second", matches: stringType},
			stubBinder{name: "first", matches: stringType},
		))
		reg.Freeze()

		b, ok := reg.Resolve(binder.Param[string]("q", binder.SourceQuery))
		require.True(t, ok)
		assert.Equal(t, "second", b.Name())
	})

	t.Run("preferred_binder_overrides_order", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		require.NoError(t, reg.Register(
			stubBinder{name: "first", matches: stringType},
			stubBinder{name: "second", matches: stringType},
		))
		reg.Freeze()

		desc := binder.Param[string]("q", binder.SourceQuery).WithBinder("second")
		b, ok := reg.Resolve(desc)
		require.True(t, ok)
		assert.Equal(t, "second", b.Name())
	})

	t.Run("no_match_reports_miss", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		require.NoError(t, reg.Register(stubBinder{name: "ints", matches: reflect.TypeFor[int]()}))
		reg.Freeze()

		_, ok := reg.Resolve(binder.Param[string]("q", binder.SourceQuery))
		assert.False(t, ok)
	})

	t.Run("register_after_freeze_fails", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		reg.Freeze()

		err := reg.Register(stubBinder{name: "late", matches: stringType})
		assert.ErrorIs(t, err, binder.ErrRegistryFrozen)
	})
}

func TestRegistryBindValue(t *testing.T) {
	t.Parallel()

	t.Run("falls_back_to_primitive_conversion", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		reg.Freeze()

		r := httptest.NewRequest(http.MethodGet, "/?page=42", nil)
		desc := binder.Param[int]("page", binder.SourceQuery)

		raw, err := binder.Raw(r, desc, nil)
		require.NoError(t, err)

		bv, err := reg.BindValue(context.Background(), raw, desc)
		require.NoError(t, err)
		require.True(t, bv.OK())
		assert.Equal(t, 42, bv.Value)
	})

	t.Run("malformed_primitive_is_field_failure", func(t *testing.T) {
		t.Parallel()

		reg := binder.NewRegistry()
		reg.Freeze()

		r := httptest.NewRequest(http.MethodGet, "/?page=abc", nil)
		desc := binder.Param[int]("page", binder.SourceQuery)

		raw, err := binder.Raw(r, desc, nil)
		require.NoError(t, err)

		bv, err := reg.BindValue(context.Background(), raw, desc)
		require.NoError(t, err)
		require.False(t, bv.OK())
		assert.Equal(t, "page", bv.Invalid.Field)
	})
}

func TestRaw(t *testing.T) {
	t.Parallel()

	t.Run("query_source", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/?q=hello", nil)
		raw, err := binder.Raw(r, binder.Param[string]("q", binder.SourceQuery), nil)
		require.NoError(t, err)
		assert.True(t, raw.Present)
		assert.Equal(t, "hello", raw.Value)
	})

	t.Run("header_source", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Token", "abc")
		raw, err := binder.Raw(r, binder.Param[string]("X-Token", binder.SourceHeader), nil)
		require.NoError(t, err)
		assert.True(t, raw.Present)
		assert.Equal(t, "abc", raw.Value)
	})

	t.Run("missing_value_not_present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		raw, err := binder.Raw(r, binder.Param[string]("q", binder.SourceQuery), nil)
		require.NoError(t, err)
		assert.False(t, raw.Present)
	})

	t.Run("path_without_extractor_fails", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := binder.Raw(r, binder.Param[string]("id", binder.SourcePath), nil)
		assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
	})

	t.Run("body_source_unsupported", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := binder.Raw(r, binder.Param[string]("payload", binder.SourceBody), nil)
		assert.ErrorIs(t, err, binder.ErrUnsupportedSource)
	})
}

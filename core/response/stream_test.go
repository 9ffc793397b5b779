package response_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/response"
)

func TestStreamJSON(t *testing.T) {
	t.Parallel()

	t.Run("streams_each_item_as_ndjson_line", func(t *testing.T) {
		t.Parallel()

		items := make(chan any, 4)
		for i := 1; i <= 4; i++ {
			items <- map[string]int{"id": i}
		}
		close(items)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stream", nil)
		require.NoError(t, response.StreamJSON(items)(w, r))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))

		scanner := bufio.NewScanner(w.Body)
		var ids []int
		for scanner.Scan() {
			var item struct {
				ID int `json:"id"`
			}
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &item))
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []int{1, 2, 3, 4}, ids)
	})

	t.Run("empty_channel_ends_cleanly", func(t *testing.T) {
		t.Parallel()

		items := make(chan any)
		close(items)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stream", nil)
		require.NoError(t, response.StreamJSON(items)(w, r))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("cancelled_context_stops_stream", func(t *testing.T) {
		t.Parallel()

		// Unbuffered and never closed: without cancellation the stream would block.
		items := make(chan any)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stream", nil).WithContext(ctx)

		done := make(chan error, 1)
		go func() {
			done <- response.StreamJSON(items)(w, r)
		}()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("stream did not stop after context cancellation")
		}
	})

	t.Run("client_disconnect_halts_production", func(t *testing.T) {
		t.Parallel()

		var produced atomic.Int64
		producerDone := make(chan struct{})

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			items := make(chan any)
			go func() {
				defer close(items)
				defer close(producerDone)
				for i := 0; ; i++ {
					select {
					case items <- map[string]int{"id": i}:
						produced.Add(1)
					case <-r.Context().Done():
						return
					}
				}
			}()
			_ = response.StreamJSON(items)(w, r)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		// Read a couple of lines, then drop the connection.
		reader := bufio.NewReader(resp.Body)
		_, err = reader.ReadString('\n')
		require.NoError(t, err)
		_, err = reader.ReadString('\n')
		require.NoError(t, err)

		cancel()
		resp.Body.Close()

		select {
		case <-producerDone:
		case <-time.After(2 * time.Second):
			t.Fatal("producer kept running after client disconnect")
		}
		assert.Greater(t, produced.Load(), int64(0))
	})

	t.Run("encoding_error_skips_element", func(t *testing.T) {
		t.Parallel()

		items := make(chan any, 3)
		items <- map[string]int{"id": 1}
		items <- func() {} // not JSON-serializable
		items <- map[string]int{"id": 2}
		close(items)

		var reported error
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stream", nil)
		require.NoError(t, response.StreamJSON(items, response.WithStreamErrorHandler(func(_ context.Context, err error) {
			reported = err
		}))(w, r))

		assert.Error(t, reported)
		assert.Contains(t, w.Body.String(), `{"id":1}`)
		assert.Contains(t, w.Body.String(), `{"id":2}`)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_with_200", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.JSON(map[string]string{"ok": "yes"})(w, r))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":"yes"}`, w.Body.String())
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.JSONWithStatus(map[string]string{"ok": "yes"}, http.StatusAccepted)(w, r))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("no_content_has_empty_body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.JSONWithStatus(nil, http.StatusNoContent)(w, r))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestWithHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	resp := response.WithHeader(response.JSONWithStatus(map[string]int{"id": 1}, http.StatusCreated), "Location", "/products/1")
	require.NoError(t, resp(w, r))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/products/1", w.Header().Get("Location"))
}

func TestErrorHandlers(t *testing.T) {
	t.Parallel()

	t.Run("json_error_handler_hides_internal_details", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(w, r, nil)
		response.JSONErrorHandler(ctx, io.ErrUnexpectedEOF)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), io.ErrUnexpectedEOF.Error())
	})

	t.Run("http_error_passes_through", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(w, r, nil)
		response.JSONErrorHandler(ctx, response.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

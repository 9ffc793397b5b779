package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/bindkit/core/handler"
)

// streamJSONConfig holds configuration for streaming JSON responses.
type streamJSONConfig struct {
	onError func(context.Context, error)
}

// StreamOption configures streaming behavior.
type StreamOption func(*streamJSONConfig)

// WithStreamErrorHandler sets an error handler for per-element encoding errors.
// Encoding errors do not abort the stream; the element is skipped.
func WithStreamErrorHandler(handler func(context.Context, error)) StreamOption {
	return func(s *streamJSONConfig) {
		s.onError = handler
	}
}

// StreamJSON creates a newline-delimited JSON streaming response.
// Each item from the channel is marshaled to JSON, written as a separate line
// and flushed immediately, so the client starts consuming before production
// finishes and memory use stays bounded regardless of sequence length.
//
// The stream ends when the channel is closed or the request context is
// cancelled. On cancellation the remaining items are left unread; the producer
// is expected to watch the same context and stop.
//
// The response uses Content-Type: application/x-ndjson.
//
// Example:
//
//	items := make(chan any)
//	go func() {
//	    defer close(items)
//	    for _, p := range products {
//	        select {
//	        case items <- p:
//	        case <-ctx.Done():
//	            return
//	        }
//	    }
//	}()
//	return response.StreamJSON(items)
func StreamJSON(items <-chan any, opts ...StreamOption) handler.Response {
	cfg := &streamJSONConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, req *http.Request) error {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("X-Content-Type-Options", "nosniff")

		w.WriteHeader(http.StatusOK)

		encoder := json.NewEncoder(w)

		for {
			select {
			case <-req.Context().Done():
				return nil

			case item, ok := <-items:
				if !ok {
					return nil
				}

				if err := encoder.Encode(item); err != nil {
					if cfg.onError != nil {
						cfg.onError(req.Context(), fmt.Errorf("failed to encode item: %w", err))
					}
					continue
				}

				flusher.Flush()
			}
		}
	}
}

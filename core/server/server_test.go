package server_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/server"
)

// freeAddr reserves a loopback port and releases it for the server to bind.
func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()

	var (
		resp *http.Response
		err  error
	)
	for range 50 {
		resp, err = http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server never came up: %v", err)
	return nil
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	t.Run("serves_and_stops_on_cancel", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := server.New(addr, server.WithShutdownTimeout(time.Second))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "ok")
			}))
		}()

		resp := waitForServer(t, "http://"+addr+"/")
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not shut down after context cancellation")
		}
	})

	t.Run("start_twice_fails", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := server.New(addr)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			_ = srv.Start(ctx, http.NotFoundHandler())
		}()

		resp := waitForServer(t, "http://"+addr+"/")
		resp.Body.Close()

		err := srv.Start(ctx, http.NotFoundHandler())
		assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

		require.NoError(t, srv.Stop())
	})

	t.Run("stop_without_start_is_noop", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0")
		assert.NoError(t, srv.Stop())
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing_address_fails", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("valid_config", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.Config{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 5 * time.Second,
			MaxHeaderBytes:  1 << 20,
		})
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}

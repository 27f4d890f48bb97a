package server_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForestKatsch/phosphor/core/config"
	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/router"
	"github.com/ForestKatsch/phosphor/core/schema"
	"github.com/ForestKatsch/phosphor/core/server"
)

func echoRouter() *router.Router {
	r := router.New()
	r.Route("/echo").Post(func(_ context.Context, req *handler.Request) (any, error) {
		return req.Body, nil
	}, router.Schemas{Body: schema.Any()})
	return r
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SERVER_MAX_BODY_BYTES", "16")

	var cfg server.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(16), cfg.MaxBodyBytes)
	assert.Equal(t, server.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, server.DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
	assert.Empty(t, cfg.TLSCertFile)

	h := server.NewHandler(echoRouter(), cfg.HandlerOptions()...)
	assert.Equal(t, http.StatusRequestEntityTooLarge, serve(t, h, http.MethodPost, "/echo", `"0123456789abcdef"`).Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodPost, "/echo", `"short"`).Code)
}

func TestConfigHandlerOptions(t *testing.T) {
	t.Parallel()

	t.Run("default limit matches the constant", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, server.DefaultMaxBodyBytes, server.DefaultConfig().MaxBodyBytes)

		h := server.NewHandler(echoRouter(), server.DefaultConfig().HandlerOptions()...)
		body := `"` + strings.Repeat("a", int(server.DefaultMaxBodyBytes)) + `"`
		assert.Equal(t, http.StatusRequestEntityTooLarge, serve(t, h, http.MethodPost, "/echo", body).Code)
	})

	t.Run("zero limit keeps the default", func(t *testing.T) {
		t.Parallel()

		h := server.NewHandler(echoRouter(), server.Config{Addr: ":8080"}.HandlerOptions()...)
		w := serve(t, h, http.MethodPost, "/echo", `"`+strings.Repeat("a", 1024)+`"`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("body at the limit is accepted", func(t *testing.T) {
		t.Parallel()

		cfg := server.Config{MaxBodyBytes: 7}
		h := server.NewHandler(echoRouter(), cfg.HandlerOptions()...)
		assert.Equal(t, http.StatusOK, serve(t, h, http.MethodPost, "/echo", `"12345"`).Code)
		assert.Equal(t, http.StatusRequestEntityTooLarge, serve(t, h, http.MethodPost, "/echo", `"123456"`).Code)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("requires an address", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.Config{MaxBodyBytes: 10})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
		assert.Nil(t, srv)
	})

	t.Run("reports unreadable TLS files", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.Config{
			Addr:        ":8443",
			TLSCertFile: "/nonexistent/cert.pem",
			TLSKeyFile:  "/nonexistent/key.pem",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load tls key pair")
		assert.Nil(t, srv)
	})

	t.Run("ignores a certificate without a key", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.Config{Addr: ":8443", TLSCertFile: "cert.pem"})
		require.NoError(t, err)
		assert.Equal(t, ":8443", srv.Addr())
	})

	t.Run("applies the header limit to the listener", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.Addr = "127.0.0.1:0"
		cfg.MaxHeaderBytes = 1
		srv, err := server.NewFromConfig(cfg)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = srv.Start(ctx, pingHandler()) }()
		addr := waitForAddr(t, srv)
		defer func() { _ = srv.Stop() }()

		req, err := http.NewRequest(http.MethodGet, "http://"+addr+"/ping", nil)
		require.NoError(t, err)
		req.Header.Set("X-Padding", strings.Repeat("p", 16<<10))

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusRequestHeaderFieldsTooLarge, resp.StatusCode)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, server.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, server.DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
}

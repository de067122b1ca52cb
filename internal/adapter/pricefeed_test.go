package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
)

func newTestFeed(t *testing.T, url string) PriceFeed {
	t.Helper()
	cfg := config.Adapter{PriceFeedURL: url, RequestTimeout: 5 * time.Second}

	f, err := NewPriceFeed(cfg, logger.Nop())
	require.NoError(t, err)
	return f
}

func TestNewPriceFeed_EmptyURL(t *testing.T) {
	_, err := NewPriceFeed(config.Adapter{}, logger.Nop())
	require.Error(t, err)
}

func TestUSDRate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"arweave":{"usd":6.41}}`))
	}))
	defer srv.Close()

	f := newTestFeed(t, srv.URL)
	rate, err := f.USDRate(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 6.41, rate, 1e-9)
}

func TestUSDRate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := newTestFeed(t, srv.URL)
	_, err := f.USDRate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestUSDRate_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"arweave":`))
	}))
	defer srv.Close()

	f := newTestFeed(t, srv.URL)
	_, err := f.USDRate(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode price feed response")
}

func TestUSDRate_MissingRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":60000}}`))
	}))
	defer srv.Close()

	f := newTestFeed(t, srv.URL)
	_, err := f.USDRate(context.Background())

	require.Error(t, err)
}

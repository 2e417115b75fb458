package mollie_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/mollie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFetcher_Fetch(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ideal@2x.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(png)
		case "/huge.png":
			_, _ = w.Write(bytes.Repeat([]byte{0}, 2<<20))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := mollie.NewImageFetcher(2 * time.Second)

	t.Run("returns body", func(t *testing.T) {
		data, err := fetcher.Fetch(context.Background(), server.URL+"/ideal@2x.png")
		require.NoError(t, err)
		assert.Equal(t, png, data)
	})

	t.Run("rejects non-200", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/missing.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("rejects oversized images", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/huge.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds")
	})
}

package fetch

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("base64 body is decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/dog.jpg", r.URL.Path)
			_, err := w.Write([]byte(base64.StdEncoding.EncodeToString(pngHeader)))
			require.NoError(t, err)
		}))
		defer server.Close()

		f := New(WithTimeout(5 * time.Second))
		image, err := f.Fetch(context.Background(), server.URL+"/dog.jpg")

		require.NoError(t, err)
		assert.Equal(t, pngHeader, image)
	})

	t.Run("whitespace and missing padding are tolerated", func(t *testing.T) {
		encoded := base64.RawStdEncoding.EncodeToString(pngHeader)
		body := "  " + encoded[:4] + "\n" + encoded[4:] + "\r\n"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(body))
			require.NoError(t, err)
		}))
		defer server.Close()

		image, err := New().Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, pngHeader, image)
	})

	t.Run("raw body is returned as is", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write(pngHeader)
			require.NoError(t, err)
		}))
		defer server.Close()

		image, err := New(WithEncoding(EncodingRaw)).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, pngHeader, image)
	})

	t.Run("invalid base64 fails to decode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte("not*base64!"))
			require.NoError(t, err)
		}))
		defer server.Close()

		_, err := New().Fetch(context.Background(), server.URL)

		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("non 2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := New().Fetch(context.Background(), server.URL)

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("empty url is rejected", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), "  ")

		assert.ErrorIs(t, err, ErrEmptyURL)
	})

	t.Run("connection error", func(t *testing.T) {
		_, err := New(WithTimeout(time.Second)).Fetch(context.Background(), "http://localhost:99999/x.jpg")

		assert.Error(t, err)
	})

	t.Run("unknown encoding keeps the default", func(t *testing.T) {
		f := New(WithEncoding("gzip"))

		assert.Equal(t, EncodingBase64, f.encoding)
	})
}

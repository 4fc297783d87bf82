package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchArchive(t *testing.T) {
	payload := []byte("zip archive bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Write(payload)
	}))
	defer server.Close()

	svc := NewService(server.Client())

	var lastDone, lastTotal int64
	path, err := svc.FetchArchive(context.Background(), server.URL, func(done, total int64) {
		lastDone = done
		lastTotal = total
	})
	require.NoError(t, err)
	defer os.Remove(path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, content)

	assert.Equal(t, int64(len(payload)), lastDone)
	assert.Equal(t, int64(len(payload)), lastTotal)
}

func TestFetchArchiveHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewService(server.Client())

	_, err := svc.FetchArchive(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchArchiveRetriesOnce(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok on retry"))
	}))
	defer server.Close()

	svc := NewService(server.Client())

	path, err := svc.FetchArchive(context.Background(), server.URL, nil)
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, 2, attempts)
}

func TestFetchArchiveCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewService(server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchArchive(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

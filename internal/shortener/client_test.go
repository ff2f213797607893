package shortener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Shorten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://example.com?utm_source=vk", r.URL.Query().Get("url"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte("https://clck.ru/abc\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	short, err := client.Shorten(context.Background(), "https://example.com?utm_source=vk")

	assert.NoError(t, err)
	assert.Equal(t, "https://clck.ru/abc", short)
}

func TestClient_Shorten_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	short, err := client.Shorten(context.Background(), "https://example.com")

	assert.NoError(t, err)
	assert.Empty(t, short)
}

func TestClient_Shorten_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.Shorten(context.Background(), "https://example.com")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClient_Shorten_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, "test-key")

	_, err := client.Shorten(context.Background(), "https://example.com")

	assert.Error(t, err)
}

func TestClient_Shorten_NoKeyOmitsParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasKey := r.URL.Query()["key"]
		assert.False(t, hasKey)
		w.Write([]byte("https://clck.ru/xyz"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	short, err := client.Shorten(context.Background(), "https://example.com")

	assert.NoError(t, err)
	assert.Equal(t, "https://clck.ru/xyz", short)
}

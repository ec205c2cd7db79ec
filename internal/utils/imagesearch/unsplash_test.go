package imagesearch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsplashClient_PicksResult(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("client_id"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"urls":{"small":"https://img/1"}},{"urls":{"small":"https://img/2"}}]}`))
	}))
	defer srv.Close()

	client := NewUnsplashClient("key", srv.URL).(*unsplashClient)
	client.pick = func(n int) int { return n - 1 }

	link, err := client.SearchImage("lentil soup turkish food")
	require.NoError(t, err)

	assert.Equal(t, "https://img/2", link)
	assert.Equal(t, "lentil soup turkish food food photography", gotQuery)
}

func TestUnsplashClient_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	_, err := NewUnsplashClient("key", srv.URL).SearchImage("pide")

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestUnsplashClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":["OAuth error"]}`))
	}))
	defer srv.Close()

	_, err := NewUnsplashClient("bad", srv.URL).SearchImage("pide")

	assert.Error(t, err)
}

func TestUnsplashClient_RequiresKey(t *testing.T) {
	_, err := NewUnsplashClient("", "").SearchImage("pide")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

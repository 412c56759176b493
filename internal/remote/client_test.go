package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "go\npython\nrust\n")
	})
	mux.HandleFunc("/go,python", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, combinedResponse)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientCatalog(t *testing.T) {
	srv := newTestService(t)
	client := NewClient(srv.URL, time.Second)

	catalog, err := client.Catalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "python", "rust"}, catalog.Names())
}

func TestClientCatalogServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Catalog(context.Background())

	require.Error(t, err)
	assert.True(t, IsType(err, CatalogUnavailable))
}

func TestClientCatalogEmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "\n\n")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Catalog(context.Background())

	require.Error(t, err)
	assert.True(t, IsType(err, CatalogUnavailable))
}

func TestClientCatalogConnectionRefused(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second)
	_, err := client.Catalog(context.Background())

	require.Error(t, err)
	assert.True(t, IsType(err, CatalogUnavailable))
}

func TestClientFetch(t *testing.T) {
	srv := newTestService(t)
	client := NewClient(srv.URL, time.Second)

	templates, err := client.Fetch(context.Background(), []string{"Go", "Python"})

	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Go", templates[0].Name)
	assert.Equal(t, "*.exe\n*.test", templates[0].Body)
}

func TestClientFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), []string{"go"})

	require.Error(t, err)
	assert.True(t, IsType(err, FetchFailed))
}

func TestClientFetchNoNames(t *testing.T) {
	client := NewClient("http://unused.invalid", time.Second)

	templates, err := client.Fetch(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestClientFetchLowercasesRequestPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, "### Go ###\n*.exe\n# End of x")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), []string{"Go"})

	require.NoError(t, err)
	assert.Equal(t, "/go", gotPath)
}

func TestClientContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Catalog(ctx)

	require.Error(t, err)
	assert.True(t, IsType(err, CatalogUnavailable))
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", 0)

	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
}

package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tacogips/igno/internal/debug"
	"github.com/tacogips/igno/internal/gitignore"
)

// DefaultBaseURL is the gitignore.io template API.
const DefaultBaseURL = "https://www.toptal.com/developers/gitignore/api"

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Client fetches the template catalog and template bodies from a
// gitignore.io-style service. Nothing is cached across invocations:
// freshness matters more than call volume for a low-frequency CLI tool.
type Client struct {
	// BaseURL is the service API root without a trailing slash.
	BaseURL string
	// HTTPClient is the HTTP client for API requests.
	HTTPClient *http.Client
}

// NewClient creates a new Client. An empty baseURL selects the default
// service; a zero timeout selects the default timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Catalog fetches the full list of available template names.
func (c *Client) Catalog(ctx context.Context) (Catalog, error) {
	url := c.BaseURL + "/list?format=lines"
	debug.Debug("[remote] Catalog: GET %s", url)

	body, err := c.get(ctx, url)
	if err != nil {
		return Catalog{}, NewCatalogError(url, "failed to fetch template list", err)
	}

	names := parseNameList(body)
	if len(names) == 0 {
		return Catalog{}, NewCatalogError(url, "service returned an empty template list", nil)
	}

	debug.Debug("[remote] Catalog: %d template name(s)", len(names))
	return NewCatalog(names), nil
}

// Fetch retrieves the bodies for the given already-validated template
// names in one combined request and splits the response per template.
func (c *Client) Fetch(ctx context.Context, names []string) ([]gitignore.Template, error) {
	if len(names) == 0 {
		return nil, nil
	}

	url := c.BaseURL + "/" + strings.ToLower(strings.Join(names, ","))
	debug.Debug("[remote] Fetch: GET %s", url)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, NewFetchError(url, "failed to fetch templates", err)
	}

	return splitResponse(body, names)
}

// get performs a GET request and returns the response body text.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseNameList splits a catalog listing into template names. The service
// emits one name per line with format=lines, but comma-separated payloads
// are accepted as well.
func parseNameList(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		for _, field := range strings.Split(line, ",") {
			if name := strings.TrimSpace(field); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tacogips/egg-import/internal/debug"
	"github.com/tacogips/egg-import/internal/version"
)

// apiPrefix is the root of the application API below the panel URL.
const apiPrefix = "/api/application"

// PerPage is the page size requested from list endpoints.
const PerPage = 100

// DefaultTimeout is the HTTP client timeout used when none is given.
const DefaultTimeout = 30 * time.Second

// Client talks to the Pterodactyl application API.
type Client struct {
	// HTTPClient is the HTTP client for API requests.
	HTTPClient *http.Client
	// BaseURL is the panel URL without trailing slash.
	BaseURL string
	// APIKey is the application API key sent as a bearer token.
	APIKey string
	// UserAgent is sent with every request.
	UserAgent string
}

// NewClient creates a client for the panel at baseURL. A zero timeout
// selects DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		BaseURL:   strings.TrimRight(baseURL, "/"),
		APIKey:    apiKey,
		UserAgent: "egg-import/" + version.Version,
	}
}

// ListNests returns every nest on the panel.
func (c *Client) ListNests(ctx context.Context) ([]Nest, error) {
	return listAll[Nest](ctx, c, "/nests")
}

// CreateNest creates a nest and returns it with its panel-assigned id.
func (c *Client) CreateNest(ctx context.Context, name, description string) (*Nest, error) {
	body, err := json.Marshal(CreateNestRequest{
		Name:        name,
		Identifier:  NestIdentifier(name),
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode nest %q: %w", name, err)
	}

	var resp object[Nest]
	if err := c.do(ctx, http.MethodPost, "/nests", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Attributes, nil
}

// ListEggs returns every egg in the nest.
func (c *Client) ListEggs(ctx context.Context, nestID int) ([]Egg, error) {
	return listAll[Egg](ctx, c, fmt.Sprintf("/nests/%d/eggs", nestID))
}

// ImportEgg uploads a raw egg definition into the nest. The returned egg is
// nil when the panel answers without a body.
func (c *Client) ImportEgg(ctx context.Context, nestID int, raw json.RawMessage) (*Egg, error) {
	var resp object[Egg]
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/nests/%d/eggs/import", nestID), nil, raw, &resp); err != nil {
		return nil, err
	}
	if resp.Object == "" && resp.Attributes.ID == 0 {
		return nil, nil
	}
	return &resp.Attributes, nil
}

// listAll fetches every page of a list endpoint.
func listAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(PerPage))
		query.Set("page", strconv.Itoa(page))

		var resp list[T]
		if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
			return nil, err
		}
		for _, obj := range resp.Data {
			items = append(items, obj.Attributes)
		}

		if page >= resp.Meta.Pagination.TotalPages || len(resp.Data) == 0 {
			break
		}
	}

	debug.Debug("GET %s: %d item(s)", path, len(items))
	return items, nil
}

// do sends a request and decodes a successful JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	reqURL := c.BaseURL + apiPrefix + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return &Error{Type: ErrRequest, Method: method, Path: path, Cause: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	debug.Debug("%s %s", method, reqURL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &Error{Type: ErrRequest, Method: method, Path: path, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Type: ErrRequest, Method: method, Path: path, StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Type:       statusErrorType(resp.StatusCode),
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       bodyExcerpt(data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{
			Type:       ErrDecode,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       bodyExcerpt(data),
			Cause:      err,
		}
	}
	return nil
}

// bodyExcerpt keeps a JSON body verbatim (compacted) and truncates anything else.
func bodyExcerpt(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if json.Valid(trimmed) && len(trimmed) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err == nil {
			return buf.String()
		}
	}
	if len(trimmed) > maxBodyExcerpt {
		return string(trimmed[:maxBodyExcerpt]) + "..."
	}
	return string(trimmed)
}

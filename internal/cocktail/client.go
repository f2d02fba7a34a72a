package cocktail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("thecocktaildb: unexpected status %s", e.Status)
}

// Client talks to TheCocktailDB. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a timeout on every request. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// NewClient creates a client for the API rooted at baseURL, authenticated
// with token.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("thecocktaildb: token is required")
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("thecocktaildb: invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("thecocktaildb: invalid base url %q", baseURL)
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    u,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Random fetches randomly selected drinks. The API returns one drink per call
// on the free tier; an empty or null list is not an error.
func (c *Client) Random(ctx context.Context) ([]Drink, error) {
	var resp randomResponse
	if err := c.get(ctx, "random.php", &resp); err != nil {
		return nil, err
	}
	return resp.Drinks, nil
}

func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	u := c.baseURL.JoinPath(c.token, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("thecocktaildb: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("thecocktaildb: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{StatusCode: res.StatusCode, Status: res.Status}
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("thecocktaildb: failed to decode %s: %w", endpoint, err)
	}

	return nil
}

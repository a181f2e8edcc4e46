// Package portal is the client for the ConectaEdu REST API: authentication and the
// /portal post collection.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the hosted API the front end talks to unless configured otherwise.
const DefaultBaseURL = "https://conectaedu.onrender.com"

// Client issues one request per call. It never retries and applies no timeout of its own;
// callers bound requests through the context.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// httpFor returns the client used for a request. A non-empty token gets the bearer
// transport; an empty token means an anonymous request.
func (c *Client) httpFor(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.http
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// do sends the request and reads the whole body. Only transport failures are errors here.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return response{}, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpFor(ctx, token).Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return response{}, ctx.Err()
		}
		return response{}, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		if ctx.Err() != nil {
			return response{}, ctx.Err()
		}
		return response{}, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	return response{status: res.StatusCode, body: b}, nil
}

// decodeJSON parses body keeping numbers as json.Number. Empty or malformed bodies yield nil.
func decodeJSON(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

// decodeObject returns the body as an object, or an empty object for anything else.
func decodeObject(body []byte) (map[string]any, bool) {
	m, ok := decodeJSON(body).(map[string]any)
	if !ok {
		return map[string]any{}, false
	}
	return m, true
}

func messageField(body []byte) string {
	m, _ := decodeObject(body)
	if s, ok := m["message"].(string); ok {
		return s
	}
	return ""
}

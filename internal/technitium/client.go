// Package technitium is a thin client for the Technitium DNS Server
// HTTP management API. It issues one request per call, injects the API
// token into every request and decodes the uniform JSON envelope; it
// never interprets the envelope status except in Call.
package technitium

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Profile holds the connection settings for one Technitium server.
// It is immutable for the lifetime of the client built from it.
type Profile struct {
	BaseURL       string
	Port          int
	Token         string
	ValidateCerts bool
	Timeout       time.Duration
}

// Client issues authenticated requests against a single Technitium
// server. It holds no mutable state across calls, so independent
// invocations may run concurrently on separate instances.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given connection profile.
func NewClient(p Profile) *Client {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{}
	if !p.ValidateCerts {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	base := strings.TrimRight(p.BaseURL, "/")
	if p.Port > 0 {
		base = withPort(base, p.Port)
	}

	return &Client{
		baseURL: base,
		token:   p.Token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// withPort appends the port to the base URL's host part.
func withPort(base string, port int) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	if u.Port() != "" {
		return base
	}
	u.Host = u.Host + ":" + strconv.Itoa(port)
	return u.String()
}

// Request issues a single HTTP call and decodes the JSON envelope. The
// API token is appended to the query values; GET requests carry them in
// the URL, other methods send them as a form-encoded body. The envelope
// status is returned unchanged; use Call to have a non-ok status turned
// into an error.
func (c *Client) Request(ctx context.Context, path string, params url.Values, method string) (*Envelope, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.token)

	fullURL := c.baseURL + path
	var body io.Reader
	if method == http.MethodGet || method == "" {
		method = http.MethodGet
		fullURL = fullURL + "?" + params.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL + path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL + path, Err: err}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ProtocolError{URL: c.baseURL + path, StatusCode: resp.StatusCode, Err: err}
	}

	return &env, nil
}

// Call issues a request and converts a non-ok envelope into a
// RemoteError carrying the given context string.
func (c *Client) Call(ctx context.Context, path string, params url.Values, method, errContext string) (*Envelope, error) {
	env, err := c.Request(ctx, path, params, method)
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, NewRemoteError(errContext, env)
	}
	return env, nil
}

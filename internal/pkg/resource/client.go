package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/turismo/backoffice-console/internal/pkg/stream"
)

const (
	defaultTimeout        = 10 * time.Second
	defaultRefreshTimeout = 15 * time.Second
	maxPages              = 100
	maxErrorBody          = 1000
)

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient     HTTPClient
	timeout        time.Duration
	refreshTimeout time.Duration
	userAgent      string
	onMutation     func(resource string)
}

// WithHTTPClient replaces the default tuned http.Client.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRefreshTimeout bounds the background list refresh after a mutation.
func WithRefreshTimeout(d time.Duration) Option {
	return func(o *options) {
		o.refreshTimeout = d
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithMutationHook is called with the resource name after every successful
// create, update or delete.
func WithMutationHook(fn func(resource string)) Option {
	return func(o *options) {
		o.onMutation = fn
	}
}

// Client talks to one REST resource of the backend and keeps the last fetched
// list in a replayable stream. W is the write shape, R the read shape.
type Client[W any, R any] struct {
	name           string
	baseURL        string
	http           HTTPClient
	ua             string
	refreshTimeout time.Duration
	onMutation     func(string)

	cache   *stream.Subject[[]R]
	pending sync.WaitGroup
}

// page is the paginated list envelope some endpoints answer with.
type page[R any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []R     `json:"results"`
}

// New creates a client for the resource rooted at baseURL, e.g.
// http://127.0.0.1:8000/api/bookings.
func New[W any, R any](name, baseURL string, opts ...Option) *Client[W, R] {
	o := options{
		timeout:        defaultTimeout,
		refreshTimeout: defaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		o.timeout = defaultTimeout
	}
	if o.refreshTimeout <= 0 {
		o.refreshTimeout = defaultRefreshTimeout
	}
	if o.httpClient == nil {
		o.httpClient = newHTTPClient(o.timeout)
	}

	return &Client[W, R]{
		name:           name,
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           o.httpClient,
		ua:             o.userAgent,
		refreshTimeout: o.refreshTimeout,
		onMutation:     o.onMutation,
		cache:          stream.NewSubject([]R{}),
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Name returns the resource name, e.g. "bookings".
func (c *Client[W, R]) Name() string {
	return c.name
}

// ListAll fetches every entity and republishes the list. On failure the cached
// list is left as it was.
func (c *Client[W, R]) ListAll(ctx context.Context) ([]R, error) {
	next := c.baseURL + "/"
	items := make([]R, 0)

	for i := 0; next != "" && i < maxPages; i++ {
		body, err := c.do(ctx, "list", http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		batch, more, err := decodeList[R](body)
		if err != nil {
			return nil, &Error{Op: "list", Resource: c.name, Err: fmt.Errorf("decode list: %w", err)}
		}
		items = append(items, batch...)

		next, err = c.resolveNext(next, more)
		if err != nil {
			return nil, &Error{Op: "list", Resource: c.name, Err: err}
		}
	}

	c.cache.Publish(items)
	return items, nil
}

// GetByID fetches one entity. A missing entity yields an error matching ErrNotFound.
func (c *Client[W, R]) GetByID(ctx context.Context, id int64) (R, error) {
	var out R
	body, err := c.do(ctx, "get", http.MethodGet, c.itemURL(id), nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &Error{Op: "get", Resource: c.name, Err: fmt.Errorf("decode entity: %w", err)}
	}
	return out, nil
}

// Create posts a new entity and refreshes the cache in the background.
func (c *Client[W, R]) Create(ctx context.Context, in W) (R, error) {
	var out R
	body, err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/", in)
	if err != nil {
		return out, err
	}
	if err := decodeOptional(body, &out); err != nil {
		return out, &Error{Op: "create", Resource: c.name, Err: fmt.Errorf("decode entity: %w", err)}
	}
	c.mutated()
	return out, nil
}

// Update sends a partial write shape and refreshes the cache in the background.
func (c *Client[W, R]) Update(ctx context.Context, id int64, in W) (R, error) {
	var out R
	body, err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), in)
	if err != nil {
		return out, err
	}
	if err := decodeOptional(body, &out); err != nil {
		return out, &Error{Op: "update", Resource: c.name, Err: fmt.Errorf("decode entity: %w", err)}
	}
	c.mutated()
	return out, nil
}

// Delete removes an entity and refreshes the cache in the background.
func (c *Client[W, R]) Delete(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil); err != nil {
		return err
	}
	c.mutated()
	return nil
}

// Refresh refetches the list without waiting for it. Two overlapping refreshes
// race: whichever finishes last is what the cache holds.
func (c *Client[W, R]) Refresh() {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), c.refreshTimeout)
		defer cancel()

		if _, err := c.ListAll(ctx); err != nil {
			log.Warn().Err(err).Str("resource", c.name).Msg("Background list refresh failed")
		}
	}()
}

// Wait blocks until background refreshes started so far have finished.
func (c *Client[W, R]) Wait() {
	c.pending.Wait()
}

// Subscribe replays the cached list to fn and calls it on every change.
func (c *Client[W, R]) Subscribe(fn func([]R)) stream.Subscription {
	return c.cache.Subscribe(fn)
}

// Cached returns the last fetched list.
func (c *Client[W, R]) Cached() []R {
	return c.cache.Current()
}

func (c *Client[W, R]) mutated() {
	c.Refresh()
	if c.onMutation != nil {
		c.onMutation(c.name)
	}
}

func (c *Client[W, R]) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10) + "/"
}

func (c *Client[W, R]) resolveNext(current string, next *string) (string, error) {
	if next == nil || strings.TrimSpace(*next) == "" {
		return "", nil
	}
	base, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(*next)
	if err != nil {
		return "", fmt.Errorf("invalid next page link: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (c *Client[W, R]) do(ctx context.Context, op, method, target string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Resource: c.name, Err: fmt.Errorf("encode payload: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &Error{Op: op, Resource: c.name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Resource: c.name, Err: classifyRequestError(ctx, err)}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Op: op, Resource: c.name, StatusCode: resp.StatusCode}
		if readErr != nil {
			e.Body = fmt.Sprintf("<failed to read body: %v>", readErr)
		} else {
			e.Body = truncate(string(body), maxErrorBody)
		}
		if resp.StatusCode == http.StatusNotFound {
			e.Err = ErrNotFound
		}
		log.Debug().
			Str("resource", c.name).
			Str("op", op).
			Str("url", target).
			Int("status", resp.StatusCode).
			Msg("Backend call failed")
		return nil, e
	}
	if readErr != nil {
		return nil, &Error{Op: op, Resource: c.name, Err: fmt.Errorf("read body: %w", readErr)}
	}

	return body, nil
}

// decodeList accepts either a bare array or a page envelope.
func decodeList[R any](body []byte) ([]R, *string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []R{}, nil, nil
	}

	if trimmed[0] == '[' {
		var items []R
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, err
		}
		return items, nil, nil
	}

	var p page[R]
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, nil, err
	}
	if p.Results == nil {
		p.Results = []R{}
	}
	return p.Results, p.Next, nil
}

func decodeOptional(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "...<truncated>"
	}
	return s
}

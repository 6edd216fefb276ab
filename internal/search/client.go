// Package search talks to the remote answer service: one GET per question,
// decoded into a domain.SearchResult.
package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"legalsearch/internal/domain"
	"legalsearch/internal/logging"
)

const (
	searchPath    = "search"
	queryParam    = "query"
	maxErrorBody  = 512 // terminal cells of error body kept for display
	defaultUserUA = "legalsearch"
)

// Searcher is what the view needs from a search backend
type Searcher interface {
	Search(ctx context.Context, query string) (*Response, error)
}

// Options configures a Client
type Options struct {
	Endpoint      string        // base address, e.g. http://localhost:8000
	HTTPClient    *http.Client  // optional; built from Timeout when nil
	Timeout       time.Duration // zero means no timeout
	RatePerSecond float64       // zero means unlimited
	UserAgent     string
	StrictSchema  bool // reject bodies that don't match the result contract
}

// Response is a decoded search result plus the body it was decoded from
type Response struct {
	Result    domain.SearchResult
	Raw       []byte
	RequestID string
	Elapsed   time.Duration
}

// Client performs searches against the configured endpoint.
// It never retries and never cancels an earlier in-flight call.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	strict     bool
}

// New creates a Client. The endpoint must be an absolute URL.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "parse endpoint %q", opts.Endpoint)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Errorf("endpoint %q must be an absolute URL", opts.Endpoint)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserUA
	}

	return &Client{
		endpoint:   u,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		userAgent:  ua,
		strict:     opts.StrictSchema,
	}, nil
}

// URL returns the full request address for query
func (c *Client) URL(query string) string {
	u := c.endpoint.JoinPath(searchPath)
	u.RawQuery = queryParam + "=" + EncodeQuery(query)
	return u.String()
}

// queryUnescaper undoes the escapes url.QueryEscape applies beyond what
// encodeURIComponent does. Every % in QueryEscape output starts a triplet, so
// matching whole triplets cannot misread an escaped literal "%21".
var queryUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeQuery percent-encodes text byte-for-byte like encodeURIComponent:
// spaces become %20 and A-Z a-z 0-9 - _ . ! ~ * ' ( ) are left as is.
func EncodeQuery(text string) string {
	return queryUnescaper.Replace(url.QueryEscape(text))
}

// Search issues GET <endpoint>/search?query=<text> and decodes the body
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "wait for rate limiter")}
	}

	reqURL := c.URL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "build request")}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	logging.Debug("search request", "id", requestID, "url", reqURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrapf(err, "GET %s", reqURL)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "read response body")}
	}
	elapsed := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(strings.TrimSpace(string(body)), maxErrorBody)}
	}

	result, err := c.decode(body)
	if err != nil {
		return nil, err
	}

	logging.Debug("search response", "id", requestID, "status", resp.StatusCode, "bytes", len(body), "elapsed", elapsed)

	return &Response{
		Result:    result,
		Raw:       body,
		RequestID: requestID,
		Elapsed:   elapsed,
	}, nil
}

// decode parses body into a SearchResult. In lenient mode, fields of the wrong
// type are left empty instead of failing the whole search.
func (c *Client) decode(body []byte) (domain.SearchResult, error) {
	var result domain.SearchResult

	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return result, &DecodeError{Err: err}
	}

	if c.strict {
		if err := validateResult(generic); err != nil {
			return result, err
		}
	}

	if err := json.Unmarshal(body, &result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if c.strict || !errors.As(err, &typeErr) {
			return result, &DecodeError{Err: err}
		}
		logging.Warn("search response field has unexpected type", "field", typeErr.Field, "err", err)
	}

	return result, nil
}

// truncate shortens s to at most n cells without splitting a rune
func truncate(s string, n int) string {
	return ansi.Truncate(s, n, "…")
}

package vortex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/vortex/pkg/logger"
	"github.com/dmitrymomot/vortex/pkg/requestid"
)

// Header names sent with every request.
const (
	HeaderAPIKey     = "x-api-key"
	HeaderSDKName    = "x-vortex-sdk-name"
	HeaderSDKVersion = "x-vortex-sdk-version"
)

// maxErrorBodySize caps how much of a non-2xx response is kept in APIError.Body.
const maxErrorBodySize = 1 << 20

// call performs one request and decodes a successful response into T.
// A successful response whose body is empty, whitespace or not valid JSON
// yields the zero T and no error.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	raw, resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	if isEmptyBody(resp, raw) {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.DebugContext(ctx, "discarding unparseable response body",
			logger.HTTPRequest(method, path),
			logger.Error(err),
		)
		return zero, nil
	}
	return out, nil
}

// send builds, sends and reads one request. Non-2xx responses become *APIError.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, *http.Response, error) {
	start := time.Now()
	ctx, requestID := requestid.Ensure(ctx)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderAPIKey, c.key.Raw())
	req.Header.Set(HeaderSDKName, SDKName)
	req.Header.Set(HeaderSDKVersion, SDKVersion())
	req.Header.Set(requestid.Header, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			logger.HTTPRequest(method, path),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return nil, nil, fmt.Errorf("vortex: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var raw []byte
	if ok {
		raw, err = io.ReadAll(resp.Body)
	} else {
		raw, err = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.DebugContext(ctx, "request completed",
		logger.HTTPRequest(method, path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if !ok {
		return nil, nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(raw),
		}
	}

	return raw, resp, nil
}

// isEmptyBody treats zero-length responses, non-JSON responses of unknown
// length and whitespace-only bodies as "no content".
func isEmptyBody(resp *http.Response, raw []byte) bool {
	if resp.ContentLength == 0 {
		return true
	}
	if resp.ContentLength < 0 && !isJSONContentType(resp.Header.Get("Content-Type")) {
		return true
	}
	return len(bytes.TrimSpace(raw)) == 0
}

// isJSONContentType matches application/json, text/json and any +json suffix
// such as application/problem+json.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, subtype, _ := strings.Cut(mediaType, "/")
	return subtype == "json" || strings.HasSuffix(subtype, "+json")
}

// statusText strips the numeric code from resp.Status ("404 Not Found" -> "Not Found").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// escapePath joins percent-encoded path segments.
func escapePath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

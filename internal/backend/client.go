// Package backend reads record collections from the retail REST API.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var ErrNotArray = errors.New("response does not hold a record array")

type Config struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	RetryMax int
	// DataPath is the gjson path of the array in the response envelope,
	// e.g. "data" for {"data":[...]}. Empty means the body is the array.
	DataPath string
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

type Client struct {
	http     *retryablehttp.Client
	baseURL  string
	token    string
	dataPath string
	logger   logger.ZapLogger
}

func NewClient(cfg *Config, log logger.ZapLogger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = logger.Leveled{Logger: log}
	rc.ErrorHandler = lastResponse
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}

	return &Client{
		http:     rc,
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		dataPath: cfg.DataPath,
		logger:   log,
	}
}

// List GETs path for merchantID and decodes the record array into out, which
// must be a pointer to a slice.
func (c *Client) List(ctx context.Context, path, merchantID string, out interface{}) error {
	url := c.baseURL + path
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Merchant-ID", merchantID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}

	c.logger.Debug("backend list",
		zap.String("url", url),
		zap.String("merchant_id", merchantID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := Decode(body, c.dataPath, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// Decode unmarshals the record array found at dataPath in body into out.
// Files exported from the backend use the same envelope as its responses.
func Decode(body []byte, dataPath string, out interface{}) error {
	raw, err := extract(body, dataPath)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

func extract(body []byte, dataPath string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", errors.New("invalid json")
	}
	res := gjson.ParseBytes(body)
	if dataPath != "" {
		res = res.Get(dataPath)
		if !res.Exists() {
			return "", fmt.Errorf("%w: no %q in response", ErrNotArray, dataPath)
		}
		// Only an explicit null is an empty collection.
		if res.Type == gjson.Null {
			return "[]", nil
		}
	}
	if !res.IsArray() {
		return "", ErrNotArray
	}
	return res.Raw, nil
}

// lastResponse hands back the final response once retries are exhausted so
// its status code can be reported, instead of a generic "giving up" error.
func lastResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// Package sheets reads and writes the tournament spreadsheet through the
// Google Sheets values REST endpoints.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/calcettolab/torneo-api/internal/platform/logging"
	"github.com/calcettolab/torneo-api/internal/platform/resilience"
	"github.com/calcettolab/torneo-api/internal/platform/rowcache"
	"github.com/calcettolab/torneo-api/internal/usecase"
)

const (
	defaultBaseURL  = "https://sheets.googleapis.com"
	defaultCacheTTL = 90 * time.Second

	// Rows start at 2: row 1 is the header the dashboard never reads.
	valueRange = "A2:Z"

	maxBodyBytes = 4 << 20
)

var errSheetsTransient = crerr.New("sheets transient failure")

type ClientConfig struct {
	HTTPClient    *http.Client
	BaseURL       string
	SpreadsheetID string
	Token         string
	Timeout       time.Duration
	MaxRetries    int
	CacheTTL      time.Duration
	Logger        *logging.Logger

	CircuitThreshold   int
	CircuitOpenTimeout time.Duration
}

// Client fetches whole tabs and appends result rows. Fetches are cached and
// deduplicated; both directions sit behind one circuit breaker since a
// quota ban hits reads and writes alike.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sheetID    string
	token      string
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	cache      *rowcache.Store
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sheetID:    strings.TrimSpace(cfg.SpreadsheetID),
		token:      strings.TrimSpace(cfg.Token),
		maxRetries: cfg.MaxRetries,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitThreshold, cfg.CircuitOpenTimeout),
		cache:      rowcache.NewStore(ttl),
	}
}

type valuesEnvelope struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// FetchTab returns all data rows of a tab. Results are served from the TTL
// cache when fresh, and concurrent misses collapse into one upstream call.
func (c *Client) FetchTab(ctx context.Context, tab string) ([][]string, error) {
	return c.cache.GetOrLoad(ctx, tab, func(ctx context.Context) ([][]string, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sheets circuit breaker rejected request", "tab", tab, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: spreadsheet backend is temporarily unavailable", usecase.ErrSourceUnavailable)
		}

		rangeRef := url.PathEscape(tab + "!" + valueRange)
		fullURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?majorDimension=ROWS", c.baseURL, c.sheetID, rangeRef)

		raw, err := c.execute(ctx, http.MethodGet, fullURL, nil)
		c.record(err)
		if err != nil {
			return nil, fmt.Errorf("fetch tab %s: %w", tab, err)
		}

		var envelope valuesEnvelope
		if err := sonic.Unmarshal(raw, &envelope); err != nil {
			return nil, crerr.Wrap(err, "decode values payload")
		}
		if envelope.Values == nil {
			return [][]string{}, nil
		}
		return envelope.Values, nil
	})
}

type appendBody struct {
	Values [][]string `json:"values"`
}

// AppendRow writes one row under the last filled row of a tab, then drops
// the tab from the cache so the next read sees it.
func (c *Client) AppendRow(ctx context.Context, tab string, row []string) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "sheets circuit breaker rejected request", "tab", tab, "state", c.breaker.State())
		return fmt.Errorf("%w: spreadsheet backend is temporarily unavailable", usecase.ErrSourceUnavailable)
	}

	body, err := sonic.Marshal(appendBody{Values: [][]string{row}})
	if err != nil {
		return crerr.Wrap(err, "encode append payload")
	}

	rangeRef := url.PathEscape(tab + "!" + valueRange)
	fullURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED", c.baseURL, c.sheetID, rangeRef)

	c.logger.DebugContext(ctx, "appending sheet row", "tab", tab, "preview", buildAppendPreview(fullURL, string(body)))

	_, err = c.execute(ctx, http.MethodPost, fullURL, body)
	c.record(err)
	if err != nil {
		return fmt.Errorf("append row to %s: %w", tab, err)
	}

	c.cache.Invalidate(tab)
	return nil
}

func (c *Client) record(err error) {
	if err != nil && crerr.Is(err, errSheetsTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func (c *Client) execute(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reqBody io.Reader
		if body != nil {
			reqBody = strings.NewReader(string(body))
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSheetsTransient, sanitizeToken(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSheetsTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusTooManyRequests:
				// Google enforces a per-minute read quota; a 429 here means
				// the whole spreadsheet is throttled, not just this tab.
				c.logger.WarnContext(ctx, "sheets read quota exhausted", "status", resp.StatusCode)
				lastErr = fmt.Errorf("%w: quota exhausted status=%d body=%s", errSheetsTransient, resp.StatusCode, abbreviateBody(raw))
			case resp.StatusCode >= http.StatusInternalServerError:
				lastErr = fmt.Errorf("%w: backend status=%d body=%s", errSheetsTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("backend status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("sheets request failed")
	}
	c.logger.WarnContext(ctx, "sheets request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func sanitizeToken(text, token string) string {
	if token == "" {
		return text
	}
	return strings.ReplaceAll(text, token, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

// buildAppendPreview renders a reproducible curl line for debug logs, with
// the bearer token masked.
func buildAppendPreview(fullURL, body string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart("POST")
	appendPart("'" + fullURL + "'")
	appendPart("-H")
	appendPart("'Authorization: Bearer ***'")
	appendPart("-H")
	appendPart("'Content-Type: application/json'")
	appendPart("-d")
	appendPart("'" + strings.ReplaceAll(body, "'", "'\\''") + "'")

	return buf.String()
}

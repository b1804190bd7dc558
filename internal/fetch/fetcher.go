package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"regexp"
	"sync"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"myepg/internal/config"
	"myepg/internal/logging"
)

const (
	defaultConcurrency = 16
	defaultTimeout     = 30 * time.Second
)

// Result is the outcome of one source retrieval. Exactly one of Body or Err
// is meaningful; a failed source is represented, never dropped, so the
// result slice stays index-aligned with the locator list.
type Result struct {
	URL  string
	Body string
	Err  error
}

// OK reports whether the document was retrieved.
func (r Result) OK() bool { return r.Err == nil }

// Options describes fetcher construction parameters.
type Options struct {
	Concurrency int
	Timeout     time.Duration
	UserAgent   string
	HTTPClient  *http.Client
	// OnResult is invoked as each retrieval settles, from the fetching
	// goroutine. Used for progress reporting; may be nil.
	OnResult func(Result)
}

// Fetcher retrieves raw guide documents concurrently with a bounded number
// of in-flight requests and a per-request timeout. One failing source never
// aborts the batch; there are no retries.
type Fetcher struct {
	client      *http.Client
	logger      *slog.Logger
	concurrency int
	timeout     time.Duration
	userAgent   string
	onResult    func(Result)
}

// New creates a Fetcher from the supplied options.
func New(opts Options, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client:      client,
		logger:      logger,
		concurrency: concurrency,
		timeout:     timeout,
		userAgent:   opts.UserAgent,
		onResult:    opts.OnResult,
	}
}

// NewFromConfig creates a Fetcher using application config values.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, onResult func(Result)) *Fetcher {
	return New(Options{
		Concurrency: cfg.Fetch.Concurrency,
		Timeout:     time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		UserAgent:   cfg.Fetch.UserAgent,
		OnResult:    onResult,
	}, logger)
}

// FetchAll retrieves every locator and returns results index-aligned with
// the input so diagnostics can correlate failures to sources.
func (f *Fetcher) FetchAll(ctx context.Context, locators []string) []Result {
	results := make([]Result, len(locators))
	sem := make(chan struct{}, f.concurrency)

	var wg sync.WaitGroup
	for i, locator := range locators {
		wg.Add(1)
		go func(i int, locator string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			body, err := f.fetch(ctx, locator)
			if err != nil {
				f.logger.Warn("source fetch failed",
					slog.String(logging.FieldSourceURL, locator),
					slog.Any("error", err))
			}
			results[i] = Result{URL: locator, Body: body, Err: err}
			if f.onResult != nil {
				f.onResult(results[i])
			}
		}(i, locator)
	}
	wg.Wait()

	return results
}

func (f *Fetcher) fetch(ctx context.Context, locator string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, locator, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	return decodeBody(resp)
}

// encodingDecl matches the encoding pseudo-attribute of an XML declaration
// at the start of a document.
var encodingDecl = regexp.MustCompile(`^(<\?xml[^?>]*?)\s+encoding\s*=\s*(?:"[^"]*"|'[^']*')`)

// decodeBody converts the response to UTF-8 using the Content-Type charset
// parameter when one is declared; documents without one are assumed UTF-8
// (charsets named only in the XML declaration are handled at parse time).
// After a transform the XML declaration is rewritten to say UTF-8, otherwise
// a stale declaration would make the parser decode the bytes a second time.
func decodeBody(resp *http.Response) (string, error) {
	reader := io.Reader(resp.Body)
	transformed := false
	if name := charsetFromContentType(resp.Header.Get("Content-Type")); name != "" && name != "utf-8" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return "", fmt.Errorf("unsupported charset %q: %w", name, err)
		}
		reader = transform.NewReader(reader, enc.NewDecoder())
		transformed = true
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	text := string(body)
	if transformed {
		text = encodingDecl.ReplaceAllString(text, `$1 encoding="UTF-8"`)
	}
	return text, nil
}

func charsetFromContentType(value string) string {
	if value == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}
	return params["charset"]
}

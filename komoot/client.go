package komoot

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mfkd/komootgpx/config"
)

var tourIDPattern = regexp.MustCompile(`^[0-9]+$`)

// Client fetches tour pages from komoot. A single attempt per tour, no
// retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates a tour page client from the komoot section of the
// application config.
func New(cfg config.KomootConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
			Transport: &http.Transport{
				TLSHandshakeTimeout: 10 * time.Second,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConns:        10,
			},
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// ResolveTourURL turns the CLI argument into a fetchable tour page URL.
// Bare numeric IDs expand against the configured base URL; full URLs
// pass through with query and fragment stripped (shared komoot links
// carry ref/share parameters the page does not need).
func (c *Client) ResolveTourURL(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.New("empty tour URL or ID")
	}
	if tourIDPattern.MatchString(arg) {
		return c.baseURL + "/tour/" + arg, nil
	}
	raw := arg
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("not a komoot tour URL or ID: %q", arg)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// FetchTourPage downloads the tour page HTML. Transport failures and
// non-2xx responses yield a *FetchError.
func (c *Client) FetchTourPage(rawurl string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, rawurl, nil)
	if err != nil {
		return "", &FetchError{URL: rawurl, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawurl, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: rawurl, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: rawurl, Err: fmt.Errorf("read response body: %w", err)}
	}
	return string(body), nil
}

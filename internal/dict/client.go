// Package dict talks to the TDK dictionary service that decides whether a
// submission is a recognized Turkish word.
package dict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Oracle answers whether a word is recognized by the dictionary
type Oracle interface {
	Lookup(ctx context.Context, word string) bool
}

// DefaultBaseURL is the public TDK dictionary endpoint
const DefaultBaseURL = "https://sozluk.gov.tr"

// The service rejects requests that do not look like a browser
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client is the HTTP dictionary client. Lookups fail closed: any transport
// error, timeout or unexpected payload counts as "not a word" and is never
// surfaced past this boundary.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a dictionary client with a bounded lookup timeout
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// gtsEntry is one element of the array the service returns for known words.
// An unknown word comes back as a bare object carrying an error field, which
// fails the array decode and counts as a rejection.
type gtsEntry struct {
	Error string `json:"error"`
}

// Lookup reports whether the dictionary accepts the word
func (c *Client) Lookup(ctx context.Context, word string) bool {
	reqURL := fmt.Sprintf("%s/gts?ara=%s", c.baseURL, url.QueryEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("word", word).Msg("dictionary lookup failed")
		return false
	}
	defer resp.Body.Close()

	var entries []gtsEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		c.logger.Debug().Err(err).Str("word", word).Msg("dictionary payload malformed")
		return false
	}
	return len(entries) > 0 && entries[0].Error == ""
}

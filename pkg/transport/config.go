package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultBaseURL is the production Datatracker instance.
const DefaultBaseURL = "https://datatracker.ietf.org"

// Config contains configuration for the Datatracker transport.
type Config struct {
	// BaseURL is the root of the Datatracker instance to query.
	// Default: DefaultBaseURL
	BaseURL string

	// UserAgent identifies this client to the Datatracker operators.
	// Default: "ietfdata-go/<version>"
	UserAgent string

	// Timeout bounds a single HTTP request.
	// Default: 30 seconds
	Timeout time.Duration

	// RetryInitialDelay is the first backoff interval after a retryable
	// failure. Later intervals grow exponentially.
	// Default: 500 milliseconds
	RetryInitialDelay time.Duration

	// RetryMaxElapsed bounds the total time spent retrying one fetch,
	// including the requests themselves. Zero disables retries entirely.
	// Default: 45 seconds
	RetryMaxElapsed time.Duration
}

// DefaultConfig returns a Config with sensible defaults for the production
// Datatracker.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		UserAgent:         "ietfdata-go/" + Version,
		Timeout:           30 * time.Second,
		RetryInitialDelay: 500 * time.Millisecond,
		RetryMaxElapsed:   45 * time.Second,
	}
}

// withDefaults fills zero fields from DefaultConfig. RetryMaxElapsed is left
// alone so a caller can set it to zero to disable retries.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryInitialDelay == 0 {
		c.RetryInitialDelay = defaults.RetryInitialDelay
	}
	return c
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(checkHTTPURL)),
		validation.Field(&c.UserAgent, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.RetryInitialDelay, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.RetryMaxElapsed, validation.Min(time.Duration(0))),
	)
}

func checkHTTPURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("must be a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}

// newHTTPClient creates a configured HTTP client for this transport.
func (c Config) newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: c.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronsubmit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cronedit/cronedit/lib/netutil"
)

// FormField is the name of the form field carrying the expression.
const FormField = "cron"

// Config holds configuration for creating a Client.
type Config struct {
	// URL is the endpoint that receives the POST. Required; must be an
	// absolute http or https URL.
	URL string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to a logger that
	// discards everything.
	Logger *slog.Logger
}

// Client submits cron expressions to one endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client from the given configuration.
func NewClient(config Config) (*Client, error) {
	parsed, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("cronsubmit: invalid URL %q: %w", config.URL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("cronsubmit: URL %q must use http or https", config.URL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("cronsubmit: URL %q has no host", config.URL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		url:        config.URL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// URL returns the endpoint the client posts to.
func (client *Client) URL() string {
	return client.url
}

// Submit posts value as the "cron" form field. Returns nil on any 2xx
// response and a [*TransportError] otherwise.
func (client *Client) Submit(ctx context.Context, value string) error {
	form := url.Values{FormField: {value}}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.url, strings.NewReader(form.Encode()))
	if err != nil {
		return &TransportError{URL: client.url, Err: err}
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client.logger.Debug("submitting cron expression", "url", client.url, "cron", value)

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("cron submission failed", "url", client.url, "error", err)
		return &TransportError{URL: client.url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body := netutil.ErrorBody(response.Body)
		client.logger.Warn("cron submission rejected", "url", client.url, "status", response.StatusCode, "body", body)
		return &TransportError{URL: client.url, StatusCode: response.StatusCode, Body: body}
	}
	netutil.Drain(response.Body)

	client.logger.Info("cron expression saved", "url", client.url, "cron", value)
	return nil
}

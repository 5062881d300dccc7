// Package httpx issues the prepared load-test requests: JSON POSTs with the
// run's headers, cookies, and optional TLS client certificate, in streaming
// or single-shot mode.
package httpx

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/perfflow/perfflow/pkg/runcfg"
)

const (
	dialTimeout           = 10 * time.Second
	responseHeaderTimeout = 30 * time.Second
	maxIdleConns          = 100
	maxKeepAlive          = 20
	errorBodyLimit        = 1024
)

// StatusError reports a non-200 response. BodySnippet holds at most the
// first kilobyte of the response body.
type StatusError struct {
	Code        int
	BodySnippet string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.BodySnippet)
}

// Client wraps an http.Client configured for one run.
type Client struct {
	cfg    *runcfg.Config
	client *http.Client
}

// NewClient builds the run's HTTP client. Server certificate verification is
// disabled; a client certificate is loaded from either a combined PEM file
// or a separate cert/key pair when the task supplies one.
func NewClient(cfg *runcfg.Config) (*Client, error) {
	tlsCfg := &tls.Config{InsecureSkipVerify: true}
	if cfg.CertFile != "" {
		keyFile := cfg.KeyFile
		if keyFile == "" {
			keyFile = cfg.CertFile
		}
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, keyFile)
		if err != nil {
			return nil, fmt.Errorf("loading client certificate: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	transport := &http.Transport{
		DialContext:           (&net.Dialer{Timeout: dialTimeout}).DialContext,
		TLSClientConfig:       tlsCfg,
		TLSHandshakeTimeout:   dialTimeout,
		ResponseHeaderTimeout: responseHeaderTimeout,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   maxKeepAlive,
		IdleConnTimeout:       90 * time.Second,
	}

	// No overall client deadline: streaming responses run for the whole
	// test and are bounded by the request context instead.
	return &Client{
		cfg:    cfg,
		client: &http.Client{Transport: transport},
	}, nil
}

// Post sends body as JSON to the run's endpoint. The caller owns the
// response body; streaming callers consume it incrementally. A non-200
// response is drained, closed, and returned as a *StatusError.
func (c *Client) Post(ctx context.Context, body map[string]any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host+c.cfg.APIPath, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.StreamMode {
		req.Header.Set("Accept", "text/event-stream")
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range c.cfg.Cookies {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, BodySnippet: string(snippet)}
	}
	return resp, nil
}

// CloseIdleConnections releases pooled connections at the end of the run.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

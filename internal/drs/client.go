package drs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"legaldocs/internal/config"
)

const defaultContentType = "application/pdf"

// ErrInvalidResponse is returned when the service answers 2xx with a body
// that is not JSON.
var ErrInvalidResponse = errors.New("document record service returned a non-JSON body")

// StatusError reports a non-2xx answer from the service.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("document record service %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client is the subset of the Document Record Service API the registry uses.
type Client interface {
	// PostClassDocument stores body as a new document of the class and type in info.
	PostClassDocument(ctx context.Context, info RequestInfo, body []byte) (json.RawMessage, error)
	// GetDocument searches by class and document service id. The service
	// answers with a JSON array.
	GetDocument(ctx context.Context, info RequestInfo) (json.RawMessage, error)
	// DeleteDocument marks the document as removed.
	DeleteDocument(ctx context.Context, documentServiceID string) (json.RawMessage, error)
}

type httpClient struct {
	baseURL   *url.URL
	apiKey    string
	accountID string
	http      *http.Client
}

// NewClient builds an HTTP Client for the service at cfg.BaseURL. Outgoing
// requests are traced with otelhttp.
func NewClient(cfg config.DRSConfig) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("document record service base url is required")
	}
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse document record service url: %w", err)
	}

	return &httpClient{
		baseURL:   u,
		apiKey:    cfg.APIKey,
		accountID: cfg.AccountID,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (c *httpClient) PostClassDocument(ctx context.Context, info RequestInfo, body []byte) (json.RawMessage, error) {
	path := "/documents/" + info.DocumentClass + "/" + info.DocumentType
	contentType := info.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	return c.do(ctx, http.MethodPost, path, info.consumerQuery(), bytes.NewReader(body), contentType, info.AccountID)
}

func (c *httpClient) GetDocument(ctx context.Context, info RequestInfo) (json.RawMessage, error) {
	path := "/searches/" + info.DocumentClass
	q := url.Values{}
	q.Set("documentServiceId", info.DocumentServiceID)
	return c.do(ctx, http.MethodGet, path, q, nil, "", info.AccountID)
}

func (c *httpClient) DeleteDocument(ctx context.Context, documentServiceID string) (json.RawMessage, error) {
	path := "/documents/" + documentServiceID
	body, err := json.Marshal(map[string]bool{"removed": true})
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPatch, path, nil, bytes.NewReader(body), "application/json", "")
}

func (c *httpClient) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType, accountID string) (json.RawMessage, error) {
	u := *c.baseURL
	u.Path += path
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("x-apikey", c.apiKey)
	}
	if accountID == "" {
		accountID = c.accountID
	}
	if accountID != "" {
		req.Header.Set("Account-Id", accountID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document record service %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read document record service response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(b)}
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(b) {
		return nil, ErrInvalidResponse
	}
	return json.RawMessage(b), nil
}

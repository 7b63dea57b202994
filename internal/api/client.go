// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Study Buddy backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeTimeout
	ErrTypeNotFound
	ErrTypeRejected
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "study backend is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrNotFound    = &ClientError{Type: ErrTypeNotFound, Message: "not found"}
)

// IsUnreachable reports whether err means the backend could not be contacted.
func IsUnreachable(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeUnreachable || ce.Type == ErrTypeTimeout
	}
	return false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeNotFound
}

// IsRejected reports whether the backend refused the request (bad input,
// unsupported file type).
func IsRejected(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeRejected
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:8000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout for quick requests such as status and listings (default: 10s)
	Timeout time.Duration

	// AskTimeout for question answering, which waits on LLM generation
	// (default: 120s)
	AskTimeout time.Duration

	// UploadTimeout for document processing, which waits on chunking and
	// embedding (default: 120s)
	UploadTimeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:       "http://127.0.0.1:8000",
		Timeout:       10 * time.Second,
		AskTimeout:    120 * time.Second,
		UploadTimeout: 120 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Study Buddy backend.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	client := api.NewClient()
//	status, err := client.Status(ctx)
//	if err != nil {
//	    // treat as degraded, not fatal
//	}
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	askClient  *http.Client
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.AskTimeout == 0 {
		config.AskTimeout = 120 * time.Second
	}
	if config.UploadTimeout == 0 {
		config.UploadTimeout = 120 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		askClient:  &http.Client{Timeout: config.AskTimeout},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// HEALTH AND LISTINGS
// =============================================================================

// Status checks backend health and model readiness.
func (c *Client) Status(ctx context.Context) (model.SystemStatus, error) {
	var body StatusResponse
	if err := c.getJSON(ctx, "/status", &body); err != nil {
		return model.SystemStatus{}, err
	}
	return body.ToStatus(), nil
}

// Documents lists the names of all indexed documents.
func (c *Client) Documents(ctx context.Context) (DocumentsResponse, error) {
	var body DocumentsResponse
	if err := c.getJSON(ctx, "/documents", &body); err != nil {
		return DocumentsResponse{}, err
	}
	return body, nil
}

// Stats retrieves the backend's session counters.
func (c *Client) Stats(ctx context.Context) (model.SessionStats, error) {
	var body StatsResponse
	if err := c.getJSON(ctx, "/stats", &body); err != nil {
		return model.SessionStats{}, err
	}
	return body.ToStats(), nil
}

// =============================================================================
// DOCUMENT OPERATIONS
// =============================================================================

// Upload sends one file to the backend for chunking and indexing. The call
// blocks until processing finishes; use the returned counts to populate the
// library entry.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to build upload form", Cause: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to read upload content", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to finalize upload form", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/upload", &buf)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	uploadClient := &http.Client{Timeout: c.config.UploadTimeout}
	resp, err := uploadClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, &ClientError{Type: ErrTypeRejected, Message: "backend rejected the file: " + readDetail(resp.Body)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "upload failed: " + resp.Status}
	}

	var body UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode upload response", Cause: err}
	}
	return &body, nil
}

// Delete removes one document from the backend index. The document name is
// URL-escaped, so names with spaces or unicode are safe.
func (c *Client) Delete(ctx context.Context, name string) error {
	endpoint := c.config.BaseURL + "/documents/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "delete failed: " + resp.Status}
	}
	return nil
}

// =============================================================================
// QUESTION ANSWERING
// =============================================================================

// Ask sends a question to the backend and waits for the generated answer.
// documentFilter restricts retrieval to one document name; pass "" to
// search all documents.
func (c *Client) Ask(ctx context.Context, question, documentFilter string) (*AskResponse, error) {
	reqBody := AskRequest{Question: question, DocumentFilter: documentFilter}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.askClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "ask failed: " + resp.Status}
	}

	var body AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode answer", Cause: err}
	}
	return &body, nil
}

// =============================================================================
// SESSION MAINTENANCE
// =============================================================================

// ClearChat resets the backend's conversation memory.
func (c *Client) ClearChat(ctx context.Context) error {
	return c.postAction(ctx, "/clear-chat")
}

// ClearAll wipes the backend's documents and conversation memory.
func (c *Client) ClearAll(ctx context.Context) error {
	return c.postAction(ctx, "/clear-all")
}

// Export retrieves the backend's rendering of the conversation. format is
// "markdown" or "json".
func (c *Client) Export(ctx context.Context, format string) (string, error) {
	var body ExportResponse
	if err := c.getJSON(ctx, "/export?format="+url.QueryEscape(format), &body); err != nil {
		return "", err
	}
	return body.Content, nil
}

// =============================================================================
// INTERNAL
// =============================================================================

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+path, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "unexpected status: " + resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// postAction performs a bodyless POST to an acknowledge-only endpoint.
func (c *Client) postAction(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "unexpected status: " + resp.Status}
	}
	return nil
}

// transportError maps a transport failure to a typed error.
func (c *Client) transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return ErrTimeout
	}
	return &ClientError{Type: ErrTypeUnreachable, Message: "study backend is not reachable", Cause: err}
}

// readDetail pulls a short error detail out of a FastAPI error body.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil || body.Detail == "" {
		return "bad request"
	}
	return body.Detail
}

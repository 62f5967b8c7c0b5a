// Package errors holds the error helpers shared by the store clients.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MinErrorStatusCode is the lowest status treated as an error.
const MinErrorStatusCode = 400

// maxBodyBytes caps how much of an error body is kept.
const maxBodyBytes = 4 << 10

// HTTPError is a non-2xx answer from an upstream API.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (%d %s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// ParseHTTPError turns an error response into *HTTPError and returns nil for
// success codes. It understands {"error": "..."}, {"message": "..."} and the
// content API shape {"error": {"description": "...", "type": "..."}}.
func ParseHTTPError(resp *http.Response) error {
	if resp.StatusCode < MinErrorStatusCode {
		return nil
	}

	httpErr := &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	if resp.Request != nil && resp.Request.URL != nil {
		u := *resp.Request.URL
		u.RawQuery = ""
		httpErr.URL = u.String()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		httpErr.Message = fmt.Sprintf("read error body: %v", err)
		return httpErr
	}
	httpErr.Body = string(body)
	httpErr.Message = messageFromBody(body)
	return httpErr
}

func messageFromBody(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return strings.TrimSpace(string(body))
	}

	if len(payload.Error) > 0 {
		var s string
		if json.Unmarshal(payload.Error, &s) == nil && s != "" {
			return s
		}
		var obj struct {
			Description string `json:"description"`
			Type        string `json:"type"`
		}
		if json.Unmarshal(payload.Error, &obj) == nil && obj.Description != "" {
			if obj.Type != "" {
				return obj.Type + ": " + obj.Description
			}
			return obj.Description
		}
	}
	if payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// StatusCode extracts the status of a wrapped *HTTPError.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}

// IsNotFound reports whether err wraps a 404.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsRetryable reports whether err wraps a 429 or 5xx answer.
func IsRetryable(err error) bool {
	code, ok := StatusCode(err)
	return ok && (code == http.StatusTooManyRequests || code >= http.StatusInternalServerError)
}

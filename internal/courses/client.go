package courses

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
	"time"
)

// Checker reports whether a course exists in the course service.
//
// The result is three-way: (true, nil) the course exists, (false, nil) it
// does not, and (false, *CheckError) the service could not be asked.
type Checker interface {
	Exists(ctx context.Context, courseID string) (bool, error)
}

// CheckError is returned when the course service could not answer, so
// callers can tell "course missing" apart from "service unreachable".
type CheckError struct {
	CourseID string
	Reason   string
	Wrapped  error
}

func (e *CheckError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("course check failed for %q: %s: %v", e.CourseID, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("course check failed for %q: %s", e.CourseID, e.Reason)
}

func (e *CheckError) Unwrap() error {
	return e.Wrapped
}

// IsCheckFailed reports whether err came from a failed course check.
func IsCheckFailed(err error) bool {
	var ce *CheckError
	return errors.As(err, &ce)
}

// Client asks the course service's getCourseById endpoint.
type Client struct {
	baseURL string        // e.g. "http://localhost:2020"
	timeout time.Duration // bound on a single lookup
	client  *http.Client
}

// Compile-time check: *Client satisfies the Checker interface.
var _ Checker = (*Client)(nil)

// DefaultTimeout bounds a lookup when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// NewClient creates a client for the course service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Exists looks the course up. A 404 or an empty JSON document means the
// course does not exist; any other failure is a *CheckError.
func (c *Client) Exists(ctx context.Context, courseID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/getCourseById/" + url.PathEscape(courseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, &CheckError{CourseID: courseID, Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, &CheckError{CourseID: courseID, Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &CheckError{CourseID: courseID, Reason: fmt.Sprintf("course service returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &CheckError{CourseID: courseID, Reason: "failed to read response", Wrapped: err}
	}

	return nonEmpty(courseID, body)
}

// nonEmpty interprets the course document: an object with keys, a
// non-empty array or a non-empty string means the course exists.
func nonEmpty(courseID string, body []byte) (bool, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return false, nil
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return false, &CheckError{CourseID: courseID, Reason: "failed to decode response", Wrapped: err}
	}

	switch v := doc.(type) {
	case map[string]any:
		return len(v) > 0, nil
	case []any:
		return len(v) > 0, nil
	case string:
		return v != "", nil
	default:
		return false, nil
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrTimeout is returned when a single attempt exceeds the configured timeout.
	ErrTimeout = errors.New("request timeout")
)

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.Code, http.StatusText(e.Code))
}

// IsServerError reports a 5xx upstream status.
func IsServerError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code >= http.StatusInternalServerError
}

// IsNotFound reports a 404 upstream status.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// IsTimeout reports whether err is an attempt timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsNetworkError is a heuristic for transient connectivity failures: dial and
// DNS failures, or a transport cause whose message mentions "network". The
// request URL is left out of the match since it carries network=.
func IsNetworkError(err error) bool {
	if err == nil || IsTimeout(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		msg = urlErr.Err.Error()
	}
	return strings.Contains(strings.ToLower(msg), "network")
}

// IsRetryable returns true for server errors and network errors. Timeouts and
// 4xx responses are surfaced directly.
func IsRetryable(err error) bool {
	return IsServerError(err) || IsNetworkError(err)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsTimeout(err):
		return "timeout"
	case IsServerError(err):
		return "server_error"
	case IsNetworkError(err):
		return "network_error"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return "client_error"
	}
	return "error"
}

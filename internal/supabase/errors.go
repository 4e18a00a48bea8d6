package supabase

import (
	"errors"
	"net"
	"net/url"
	"strings"
)

// Transport-failure signatures that survive the client libraries'
// error wrapping as plain text.
var unreachableSignatures = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"dial tcp",
	"i/o timeout",
}

// IsUnreachable reports whether err looks like a transport-level failure
// reaching the platform, as opposed to the platform rejecting a request.
// The distinction drives the 503-vs-400/500 split: a 503 tells an
// operator the backend is unreachable, not that the request was wrong.
func IsUnreachable(err error) bool {
	if err == nil {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	for _, sig := range unreachableSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

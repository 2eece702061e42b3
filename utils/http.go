package utils

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// UserAgent is sent on every outbound request that does not set its own
	UserAgent = "CampusHire/1.0"

	// RequestIDHeader correlates a page view with the upstream calls it causes
	RequestIDHeader = "X-Request-ID"
)

type requestIDKey struct{}

// WithRequestID returns ctx carrying the inbound request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by WithRequestID, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NewHTTPClient creates the client shared by the backend, CV service and
// text generation clients. Requests carry the user agent and the request id
// of their context, and every exchange is logged at debug level.
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: NewTransport(transport),
	}
}

// NewTransport wraps next with the outbound headers and logging
func NewTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &upstreamTransport{next: next}
}

type upstreamTransport struct {
	next http.RoundTripper
}

func (t *upstreamTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := RequestIDFromContext(req.Context())
	needAgent := req.Header.Get("User-Agent") == ""
	needID := id != "" && req.Header.Get(RequestIDHeader) == ""

	if needAgent || needID {
		req = req.Clone(req.Context())
		if needAgent {
			req.Header.Set("User-Agent", UserAgent)
		}
		if needID {
			req.Header.Set(RequestIDHeader, id)
		}
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	log := GetLogger().WithFields(logrus.Fields{
		"component": "upstream",
		"method":    req.Method,
		"host":      req.URL.Host,
		"path":      req.URL.Path,
		"duration":  time.Since(start),
	})
	if id != "" {
		log = log.WithField("request_id", id)
	}
	if err != nil {
		log.WithError(err).Debug("Upstream request failed")
		return nil, err
	}
	log.WithField("status", resp.StatusCode).Debug("Upstream request")
	return resp, nil
}

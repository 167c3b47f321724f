package httpclient

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingRoundTripper logs method, URL, status and latency of each request.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface.
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	entry := logrus.WithContext(req.Context()).WithFields(logrus.Fields{
		"http.method": req.Method,
		"http.url":    req.URL.String(),
	})

	start := time.Now()
	resp, err := t.Transport.RoundTrip(req)
	entry = entry.WithField("dur_ms", time.Since(start).Milliseconds())
	if err != nil {
		entry.WithError(err).Info("outbound request failed")
		return nil, err
	}

	entry.WithField("http.status", resp.StatusCode).Info("outbound request")
	return resp, nil
}

// AppendRequestHeadersRoundTripper adds headers to the request.
type AppendRequestHeadersRoundTripper struct {
	Transport http.RoundTripper
	Headers   map[string]string
}

// RoundTrip implements the http.RoundTripper interface.
func (t *AppendRequestHeadersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}

	return t.Transport.RoundTrip(req)
}

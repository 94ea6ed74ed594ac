// Package network provides the HTTP plumbing shared by the scraper and the metadata client.
package network

import (
	"net/http"
	"time"
)

// Client is the default client for callers that do not build their own.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: shared,
}

var shared = newTransport()

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// Transport returns the pooled transport, or the Chrome-fingerprinted one when fingerprint is set.
func Transport(fingerprint bool) http.RoundTripper {
	if fingerprint {
		return fingerprinted()
	}
	return shared
}

// NewClient builds a client with the given timeout over Transport(fingerprint).
func NewClient(timeout time.Duration, fingerprint bool) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: Transport(fingerprint),
	}
}

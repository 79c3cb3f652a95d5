/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package web resolves did:web identifiers by fetching the document published
// at the well-known HTTPS location derived from the identifier's domain.
package web

import (
	"net/http"
)

const (
	namespace = "web"
)

// VDR resolves did:web documents over HTTP(S).
type VDR struct {
	client  *http.Client
	useHTTP bool
}

// Option configures the VDR.
type Option func(*VDR)

// WithHTTPClient overrides the HTTP client used for document fetches. Timeout
// policy belongs to the supplied client; the VDR sets none of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(v *VDR) {
		v.client = client
	}
}

// WithHTTP fetches documents over plain HTTP instead of HTTPS. Test use only.
func WithHTTP() Option {
	return func(v *VDR) {
		v.useHTTP = true
	}
}

// New creates a new did:web VDR.
func New(opts ...Option) *VDR {
	v := &VDR{client: &http.Client{}}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Accept reports whether the VDR handles the given DID method.
func (v *VDR) Accept(method string) bool {
	return method == namespace
}

// Close frees resources held by the VDR.
func (v *VDR) Close() error {
	return nil
}

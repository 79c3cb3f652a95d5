/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vdr

import (
	"context"

	"github.com/vaxxnz/nzcp-go/pkg/vdr"
)

// MockVDR mock implementation of vdr
// to be used only for unit tests.
type MockVDR struct {
	AcceptValue               bool
	ResolveRepresentationFunc func(ctx context.Context, didID string) (vdr.ResolutionMetadata, []byte)
	CloseErr                  error
}

// ResolveRepresentation did.
func (m *MockVDR) ResolveRepresentation(ctx context.Context, didID string) (vdr.ResolutionMetadata, []byte) {
	if m.ResolveRepresentationFunc != nil {
		return m.ResolveRepresentationFunc(ctx, didID)
	}

	return vdr.ResolutionMetadata{}, nil
}

// Accept did.
func (m *MockVDR) Accept(method string) bool {
	return m.AcceptValue
}

// Close frees resources being maintained by vdr.
func (m *MockVDR) Close() error {
	return m.CloseErr
}

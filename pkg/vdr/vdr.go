/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vdr defines the contract between the key resolution pipeline and the
// verifiable data registry that serves raw DID documents.
package vdr

import "context"

// ResolutionMetadata reports the outcome of one document fetch. It is produced
// per call and not retained.
type ResolutionMetadata struct {
	// Error is set when resolution failed at the fetch level. A resolver may
	// still return a best-effort document body alongside a non-empty Error;
	// consumers must treat the error as authoritative.
	Error string
}

// Resolver fetches the raw representation of a DID document.
type Resolver interface {
	// ResolveRepresentation returns the raw document bytes published for didID.
	// Empty bytes mean no document could be retrieved. Fetch-level failures are
	// carried in the metadata rather than an error return, matching DID-core
	// resolution semantics where a partial document and an error note can
	// coexist.
	ResolveRepresentation(ctx context.Context, didID string) (ResolutionMetadata, []byte)
}

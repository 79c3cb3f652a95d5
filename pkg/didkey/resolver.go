/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package didkey resolves a did:web issuer identifier and key id to the P-256
// verification key authorized to sign assertions on the issuer's behalf.
//
// The resolved document is attacker-adjacent input: it is fetched from the
// network and must not be trusted until every link of the authorization chain
// has been checked. The pipeline therefore verifies, in order, that the fetch
// succeeded, that the document's assertionMethod set authorizes the requested
// key, that a matching verification method of type JsonWebKey2020 exists, and
// that its JWK reconstructs into a valid point on P-256. Any failure aborts the
// call with one of the errors in errors.go; no partial result is ever returned.
package didkey

import (
	"context"
	"crypto/ecdsa"

	"github.com/vaxxnz/nzcp-go/pkg/doc/did"
	"github.com/vaxxnz/nzcp-go/pkg/vdr"
)

// KeyResolver resolves issuer verification keys through a document resolver.
// It holds no state across calls; concurrent use is safe.
type KeyResolver struct {
	resolver vdr.Resolver
}

// New creates a KeyResolver on top of the given document resolver.
func New(resolver vdr.Resolver) *KeyResolver {
	return &KeyResolver{resolver: resolver}
}

// ResolveVerifyingKey resolves the key with the given kid under the given
// issuer identifier, returning it only if the issuer's document authorizes it
// for assertion signing.
func (r *KeyResolver) ResolveVerifyingKey(ctx context.Context, d did.DID, kid string) (*ecdsa.PublicKey, error) {
	document, err := r.resolveDocument(ctx, d)
	if err != nil {
		return nil, err
	}

	absoluteKey := d.AbsoluteKeyID(kid)

	if document.AssertionMethod == nil {
		return nil, ErrMissingAssertionMethods
	}

	if !assertionMethodsContain(document.AssertionMethod, absoluteKey) {
		return nil, &MissingAssertionMethodError{Key: absoluteKey}
	}

	if document.VerificationMethod == nil {
		return nil, ErrMissingVerificationMethods
	}

	method, ok := did.LookupVerificationMethod(absoluteKey, document)
	if !ok {
		return nil, &MissingVerificationMethodError{Key: absoluteKey}
	}

	if method.Type != did.KeyTypeJSONWebKey2020 {
		return nil, ErrNotJSONWebKey2020
	}

	if method.PublicKeyJWK == nil {
		return nil, ErrMissingJWK
	}

	return method.PublicKeyJWK.VerifyingKey()
}

// resolveDocument fetches and decodes the issuer's DID document.
//
// The body is decoded even when the resolver reported an error, since some
// resolvers emit a best-effort partial document alongside a soft error; the
// metadata error still takes precedence once decoding is done. A decode failure
// surfaces immediately as a ResolutionError.
func (r *KeyResolver) resolveDocument(ctx context.Context, d did.DID) (*did.Doc, error) {
	metadata, body := r.resolver.ResolveRepresentation(ctx, d.String())

	var document *did.Doc

	if len(body) > 0 {
		var err error

		document, err = did.ParseDocument(body)
		if err != nil {
			return nil, &ResolutionError{Detail: err.Error()}
		}
	}

	if metadata.Error != "" {
		return nil, &ResolutionError{Detail: metadata.Error}
	}

	if document == nil {
		return nil, ErrEmptyDocument
	}

	return document, nil
}

func assertionMethodsContain(methods []did.Verification, absoluteKey string) bool {
	for i := range methods {
		if methods[i].Matches(absoluteKey) {
			return true
		}
	}

	return false
}

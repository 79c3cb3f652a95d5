/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey

import (
	"errors"
	"fmt"

	"github.com/vaxxnz/nzcp-go/pkg/doc/jose/jwk"
)

// Every failure of the resolution pipeline is terminal and maps to exactly one
// of the errors below. No retries, no fallback keys: a failed resolution must
// abort signature verification at the caller.
var (
	// ErrEmptyDocument is returned when resolution produced no document and no
	// fetch-level error was reported.
	ErrEmptyDocument = errors.New("an empty DID resolution document was returned")

	// ErrMissingAssertionMethods is returned when the document has no
	// assertionMethod array, i.e. no key is authorized to sign assertions.
	ErrMissingAssertionMethods = errors.New("assertionMethod array was missing from the DID document")

	// ErrMissingVerificationMethods is returned when the document has no
	// verificationMethod array.
	ErrMissingVerificationMethods = errors.New("verificationMethod was missing from the DID document")

	// ErrNotJSONWebKey2020 is returned when the matching verification method is
	// of an unsupported type.
	ErrNotJSONWebKey2020 = errors.New("verificationMethod type was not 'JsonWebKey2020'")

	// ErrMissingJWK is returned when the matching verification method carries
	// no publicKeyJwk.
	ErrMissingJWK = errors.New("verificationMethod was missing publicKeyJwk")
)

// JWK-level failures are reported by the jwk package; they are re-exported here
// so callers can match the whole taxonomy in one place.
var (
	// ErrJWKNotEllipticCurve is returned when the publicKeyJwk is not an
	// elliptic curve key.
	ErrJWKNotEllipticCurve = jwk.ErrNotEllipticCurve

	// ErrJWKWrongCurve is returned when the publicKeyJwk curve is not P-256.
	ErrJWKWrongCurve = jwk.ErrWrongCurve

	// ErrJWKMissingX is returned when the publicKeyJwk has no x coordinate.
	ErrJWKMissingX = jwk.ErrMissingX

	// ErrJWKMissingY is returned when the publicKeyJwk has no y coordinate.
	ErrJWKMissingY = jwk.ErrMissingY

	// ErrInvalidJWK is returned when the coordinates do not form a valid point
	// on the curve.
	ErrInvalidJWK = jwk.ErrInvalidKey
)

// ResolutionError reports a failure of the document fetch or decode step,
// wrapping the underlying detail reported by the resolver or parser.
type ResolutionError struct {
	Detail string
}

func (e *ResolutionError) Error() string {
	return "DID resolution error: " + e.Detail
}

// MissingAssertionMethodError reports that the document's assertionMethod array
// does not authorize the requested key.
type MissingAssertionMethodError struct {
	// Key is the absolute DID URL of the requested key.
	Key string
}

func (e *MissingAssertionMethodError) Error() string {
	return fmt.Sprintf("assertionMethod with absolute key '%s' was missing from the DID document", e.Key)
}

// MissingVerificationMethodError reports that the document describes no
// verification method with the requested id.
type MissingVerificationMethodError struct {
	// Key is the absolute DID URL of the requested key.
	Key string
}

func (e *MissingVerificationMethodError) Error() string {
	return fmt.Sprintf("verificationMethod with the absolute key '%s' was missing from the DID document", e.Key)
}

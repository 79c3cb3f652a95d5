/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Prefix is the scheme and method prefix of every supported identifier.
// Only the web DID method is supported: the issuer of a pass publishes its
// document at a location derived from a domain name.
const Prefix = "did:web:"

// ErrInvalidDID is returned by Parse for input that is not a did:web identifier.
var ErrInvalidDID = errors.New("invalid DID")

// DID is a parsed did:web decentralized identifier.
type DID struct {
	// Domain is the method-specific identifier, i.e. everything after the
	// did:web: prefix.
	Domain string
}

// Parse parses a did:web identifier. Input not starting with the literal
// did:web: prefix fails with ErrInvalidDID; no other DID methods are supported.
func Parse(didStr string) (DID, error) {
	domain, ok := strings.CutPrefix(didStr, Prefix)
	if !ok {
		return DID{}, fmt.Errorf("%w: %q must start with %q", ErrInvalidDID, didStr, Prefix)
	}

	return DID{Domain: domain}, nil
}

// String returns the canonical form of the identifier, the inverse of Parse.
func (d DID) String() string {
	return Prefix + d.Domain
}

// AbsoluteKeyID returns the absolute DID URL of a key fragment, in the
// "<did>#<kid>" form used by assertionMethod and verificationMethod entries.
func (d DID) AbsoluteKeyID(kid string) string {
	return d.String() + "#" + kid
}

// MarshalJSON marshals the identifier to its canonical string form.
func (d DID) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses an identifier from a JSON string, so the iss claim of a
// pass payload can be decoded directly into a DID.
func (d *DID) UnmarshalJSON(data []byte) error {
	var didStr string
	if err := json.Unmarshal(data, &didStr); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDID, err)
	}

	parsed, err := Parse(didStr)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

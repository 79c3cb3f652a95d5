/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwksupport

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"

	"github.com/go-jose/go-jose/v3"

	"github.com/vaxxnz/nzcp-go/pkg/doc/jose/jwk"
)

// FromPublicKey creates a JWK from a P-256 ECDSA public key.
// It is the inverse of jwk.JWK.VerifyingKey and is used by issuers producing
// DID documents, and by tests building documents around known keys.
func FromPublicKey(pubKey *ecdsa.PublicKey) (*jwk.JWK, error) {
	joseKey := jose.JSONWebKey{Key: pubKey}

	// marshal/unmarshal through the jose representation to get the curve name
	// and fixed-width coordinate encoding filled.
	keyBytes, err := joseKey.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("create JWK: %w", err)
	}

	key := &jwk.JWK{}

	err = json.Unmarshal(keyBytes, key)
	if err != nil {
		return nil, fmt.Errorf("create JWK: %w", err)
	}

	return key, nil
}

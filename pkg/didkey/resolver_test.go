/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaxxnz/nzcp-go/pkg/doc/did"
	"github.com/vaxxnz/nzcp-go/pkg/doc/jose/jwk"
	"github.com/vaxxnz/nzcp-go/pkg/doc/jose/jwk/jwksupport"
	mockvdr "github.com/vaxxnz/nzcp-go/pkg/mock/vdr"
	"github.com/vaxxnz/nzcp-go/pkg/vdr"
)

const (
	issuer      = "did:web:example.com"
	keyID       = "key-1"
	absoluteKey = issuer + "#" + keyID
)

func newResolver(t *testing.T, metadata vdr.ResolutionMetadata, body []byte) *KeyResolver {
	t.Helper()

	return New(&mockvdr.MockVDR{
		ResolveRepresentationFunc: func(ctx context.Context, didID string) (vdr.ResolutionMetadata, []byte) {
			require.Equal(t, issuer, didID)

			return metadata, body
		},
	})
}

func issuerDID(t *testing.T) did.DID {
	t.Helper()

	d, err := did.Parse(issuer)
	require.NoError(t, err)

	return d
}

// issuerDoc builds the issuer's document JSON around the given JWK, marshalled
// the way the issuer would publish it.
func issuerDoc(t *testing.T, key *jwk.JWK, mutate func(doc map[string]interface{})) []byte {
	t.Helper()

	methods := []interface{}{
		map[string]interface{}{
			"id":           absoluteKey,
			"controller":   issuer,
			"type":         "JsonWebKey2020",
			"publicKeyJwk": key,
		},
	}

	doc := map[string]interface{}{
		"@context":           "https://w3id.org/did/v1",
		"id":                 issuer,
		"assertionMethod":    []interface{}{absoluteKey},
		"verificationMethod": methods,
	}

	if mutate != nil {
		mutate(doc)
	}

	body, err := json.Marshal(doc)
	require.NoError(t, err)

	return body
}

func generateKey(t *testing.T) (*ecdsa.PublicKey, *jwk.JWK) {
	t.Helper()

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	key, err := jwksupport.FromPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	return &privateKey.PublicKey, key
}

func TestResolveVerifyingKey(t *testing.T) {
	t.Run("test end to end success", func(t *testing.T) {
		publicKey, key := generateKey(t)
		r := newResolver(t, vdr.ResolutionMetadata{}, issuerDoc(t, key, nil))

		verifyingKey, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.NoError(t, err)
		require.True(t, verifyingKey.Equal(publicKey))
	})

	t.Run("test empty document", func(t *testing.T) {
		r := newResolver(t, vdr.ResolutionMetadata{}, nil)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("test metadata error takes precedence over parsed document", func(t *testing.T) {
		_, key := generateKey(t)
		r := newResolver(t, vdr.ResolutionMetadata{Error: "registry unavailable"}, issuerDoc(t, key, nil))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)

		resolutionErr := &ResolutionError{}
		require.ErrorAs(t, err, &resolutionErr)
		require.Equal(t, "registry unavailable", resolutionErr.Detail)
		require.Contains(t, err.Error(), "DID resolution error: registry unavailable")
	})

	t.Run("test metadata error with empty body", func(t *testing.T) {
		r := newResolver(t, vdr.ResolutionMetadata{Error: "DID does not exist"}, nil)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)

		resolutionErr := &ResolutionError{}
		require.ErrorAs(t, err, &resolutionErr)
		require.Equal(t, "DID does not exist", resolutionErr.Detail)
	})

	t.Run("test malformed document body", func(t *testing.T) {
		r := newResolver(t, vdr.ResolutionMetadata{}, []byte("not json"))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)

		resolutionErr := &ResolutionError{}
		require.ErrorAs(t, err, &resolutionErr)
		require.Contains(t, resolutionErr.Detail, "JSON unmarshalling of did doc bytes failed")
	})

	t.Run("test absent context treated as empty document", func(t *testing.T) {
		// a parseable document without a string @context never becomes a
		// structured document, so resolution reports it as empty
		r := newResolver(t, vdr.ResolutionMetadata{}, []byte(`{"id": "did:web:example.com"}`))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrEmptyDocument)

		r = newResolver(t, vdr.ResolutionMetadata{}, []byte(`{"@context": ["https://www.w3.org/ns/did/v1"]}`))

		_, err = r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("test missing assertion methods", func(t *testing.T) {
		_, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			delete(doc, "assertionMethod")
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrMissingAssertionMethods)
	})

	t.Run("test missing assertion method for key", func(t *testing.T) {
		_, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			doc["assertionMethod"] = []interface{}{issuer + "#key-2"}
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)

		missingErr := &MissingAssertionMethodError{}
		require.ErrorAs(t, err, &missingErr)
		require.Equal(t, absoluteKey, missingErr.Key)
		require.Contains(t, err.Error(), fmt.Sprintf("absolute key '%s'", absoluteKey))
	})

	t.Run("test inline assertion method map matches", func(t *testing.T) {
		publicKey, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			doc["assertionMethod"] = []interface{}{
				map[string]interface{}{"id": absoluteKey, "type": "JsonWebKey2020"},
			}
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		verifyingKey, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.NoError(t, err)
		require.True(t, verifyingKey.Equal(publicKey))
	})

	t.Run("test missing verification methods", func(t *testing.T) {
		_, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			delete(doc, "verificationMethod")
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrMissingVerificationMethods)
	})

	t.Run("test missing verification method for key", func(t *testing.T) {
		_, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			doc["verificationMethod"] = []interface{}{
				map[string]interface{}{
					"id":           issuer + "#key-2",
					"type":         "JsonWebKey2020",
					"publicKeyJwk": key,
				},
			}
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)

		missingErr := &MissingVerificationMethodError{}
		require.ErrorAs(t, err, &missingErr)
		require.Equal(t, absoluteKey, missingErr.Key)
	})

	t.Run("test wrong verification method type", func(t *testing.T) {
		_, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			doc["verificationMethod"].([]interface{})[0].(map[string]interface{})["type"] = "Ed25519VerificationKey2018"
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrNotJSONWebKey2020)
	})

	t.Run("test missing JWK", func(t *testing.T) {
		_, key := generateKey(t)
		body := issuerDoc(t, key, func(doc map[string]interface{}) {
			delete(doc["verificationMethod"].([]interface{})[0].(map[string]interface{}), "publicKeyJwk")
		})
		r := newResolver(t, vdr.ResolutionMetadata{}, body)

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrMissingJWK)
	})

	t.Run("test JWK not elliptic curve", func(t *testing.T) {
		_, key := generateKey(t)
		key.Kty = "OKP"
		r := newResolver(t, vdr.ResolutionMetadata{}, issuerDoc(t, key, nil))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrJWKNotEllipticCurve)
	})

	t.Run("test JWK wrong curve", func(t *testing.T) {
		_, key := generateKey(t)
		key.Crv = "P-384"
		r := newResolver(t, vdr.ResolutionMetadata{}, issuerDoc(t, key, nil))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrJWKWrongCurve)
	})

	t.Run("test JWK missing coordinates", func(t *testing.T) {
		_, key := generateKey(t)
		key.X = nil
		r := newResolver(t, vdr.ResolutionMetadata{}, issuerDoc(t, key, nil))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrJWKMissingX)

		_, key = generateKey(t)
		key.Y = nil
		r = newResolver(t, vdr.ResolutionMetadata{}, issuerDoc(t, key, nil))

		_, err = r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrJWKMissingY)
	})

	t.Run("test JWK point not on curve", func(t *testing.T) {
		_, key := generateKey(t)
		key.X = make([]byte, 32)
		key.Y = make([]byte, 32)
		r := newResolver(t, vdr.ResolutionMetadata{}, issuerDoc(t, key, nil))

		_, err := r.ResolveVerifyingKey(context.Background(), issuerDID(t), keyID)
		require.ErrorIs(t, err, ErrInvalidJWK)
	})
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vaxxnz/nzcp-go/pkg/doc/jose/jwk"
)

const (
	// ContextV1 is the canonical DID-core JSON-LD context. A string-valued
	// @context is rewritten to this value before structured decoding, since
	// issuers publish documents under several historical context URLs.
	ContextV1 = "https://www.w3.org/ns/did/v1"

	// KeyTypeJSONWebKey2020 is the only verification method type accepted for
	// pass issuer keys.
	KeyTypeJSONWebKey2020 = "JsonWebKey2020"

	jsonldContext   = "@context"
	jsonldID        = "id"
	jsonldType      = "type"
	jsonldPublicKey = "publicKeyJwk"
)

var schemaLoaderV1 = gojsonschema.NewStringLoader(schemaV1) //nolint:gochecknoglobals

// Doc is the subset of a DID document consumed to authorize an issuer key.
// Unknown fields are ignored. A nil AssertionMethod or VerificationMethod slice
// means the field was absent from the document, as opposed to present and empty.
type Doc struct {
	Context            string
	ID                 string
	AssertionMethod    []Verification
	VerificationMethod []VerificationMethod
}

// VerificationMethod is one inline key description of a DID document.
type VerificationMethod struct {
	ID           string
	Type         string
	PublicKeyJWK *jwk.JWK
}

// Verification is one assertionMethod entry: either a bare DID URL reference or
// an inline verification method.
type Verification struct {
	Reference string
	Method    *VerificationMethod
}

// Matches reports whether the entry refers to the given absolute key DID URL,
// whichever of the two forms it uses.
func (v *Verification) Matches(absoluteKey string) bool {
	if v.Method != nil {
		return v.Method.ID == absoluteKey
	}

	return v.Reference == absoluteKey
}

type rawDoc struct {
	Context            interface{}              `json:"@context,omitempty"`
	ID                 string                   `json:"id,omitempty"`
	AssertionMethod    []interface{}            `json:"assertionMethod,omitempty"`
	VerificationMethod []map[string]interface{} `json:"verificationMethod,omitempty"`
}

// ParseDocument creates an instance of Doc by reading a JSON document from bytes.
//
// Decoding is layered. The bytes are first decoded into an untyped value so the
// @context field can be normalized; only when @context is a plain JSON string is
// the value validated against the document schema and decoded into the
// structured shape. An absent or non-string @context yields (nil, nil): no
// structured document, but not an error either. Callers decide what an absent
// document means.
func ParseDocument(data []byte) (*Doc, error) {
	var untyped map[string]interface{}

	err := json.Unmarshal(data, &untyped)
	if err != nil {
		return nil, fmt.Errorf("JSON unmarshalling of did doc bytes failed: %w", err)
	}

	if _, ok := untyped[jsonldContext].(string); !ok {
		return nil, nil
	}

	untyped[jsonldContext] = ContextV1

	normalized, err := json.Marshal(untyped)
	if err != nil {
		return nil, fmt.Errorf("re-marshalling of normalized did doc failed: %w", err)
	}

	err = validate(normalized, schemaLoaderV1)
	if err != nil {
		return nil, err
	}

	raw := &rawDoc{}

	err = json.Unmarshal(normalized, raw)
	if err != nil {
		return nil, fmt.Errorf("JSON unmarshalling of normalized did doc failed: %w", err)
	}

	assertionMethods, err := populateAssertionMethods(raw.AssertionMethod)
	if err != nil {
		return nil, fmt.Errorf("populate assertion methods failed: %w", err)
	}

	verificationMethods, err := populateVerificationMethods(raw.VerificationMethod)
	if err != nil {
		return nil, fmt.Errorf("populate verification methods failed: %w", err)
	}

	return &Doc{
		Context:            ContextV1,
		ID:                 raw.ID,
		AssertionMethod:    assertionMethods,
		VerificationMethod: verificationMethods,
	}, nil
}

func populateAssertionMethods(rawEntries []interface{}) ([]Verification, error) {
	if rawEntries == nil {
		return nil, nil
	}

	verifications := make([]Verification, 0, len(rawEntries))

	for _, rawEntry := range rawEntries {
		switch entry := rawEntry.(type) {
		case string:
			verifications = append(verifications, Verification{Reference: entry})
		case map[string]interface{}:
			method, err := populateVerificationMethod(entry)
			if err != nil {
				return nil, err
			}

			verifications = append(verifications, Verification{Method: method})
		default:
			return nil, errors.New("assertionMethod entry is neither a reference nor a map")
		}
	}

	return verifications, nil
}

func populateVerificationMethods(rawMethods []map[string]interface{}) ([]VerificationMethod, error) {
	if rawMethods == nil {
		return nil, nil
	}

	methods := make([]VerificationMethod, 0, len(rawMethods))

	for _, rawMethod := range rawMethods {
		method, err := populateVerificationMethod(rawMethod)
		if err != nil {
			return nil, err
		}

		methods = append(methods, *method)
	}

	return methods, nil
}

func populateVerificationMethod(rawMethod map[string]interface{}) (*VerificationMethod, error) {
	method := &VerificationMethod{
		ID:   stringEntry(rawMethod[jsonldID]),
		Type: stringEntry(rawMethod[jsonldType]),
	}

	jwkMap, ok := rawMethod[jsonldPublicKey].(map[string]interface{})
	if !ok {
		return method, nil
	}

	jwkBytes, err := json.Marshal(jwkMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal '%s': %w", jsonldPublicKey, err)
	}

	key := &jwk.JWK{}

	err = json.Unmarshal(jwkBytes, key)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling of '%s' failed: %w", jsonldPublicKey, err)
	}

	method.PublicKeyJWK = key

	return method, nil
}

func stringEntry(entry interface{}) string {
	if entry == nil {
		return ""
	}

	if e, ok := entry.(string); ok {
		return e
	}

	return ""
}

func validate(data []byte, schemaLoader gojsonschema.JSONLoader) error {
	// Validate that the DID Document conforms to the serialization of the DID
	// Document data model. Reference: https://w3c.github.io/did-core/
	documentLoader := gojsonschema.NewStringLoader(string(data))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation of DID doc failed: %w", err)
	}

	if !result.Valid() {
		errMsg := "did document not valid:\n"
		for _, desc := range result.Errors() {
			errMsg += fmt.Sprintf("- %s\n", desc)
		}

		return errors.New(errMsg)
	}

	return nil
}

// LookupVerificationMethod returns the verification method with the given id
// from the given DID Doc.
func LookupVerificationMethod(id string, doc *Doc) (*VerificationMethod, bool) {
	for i := range doc.VerificationMethod {
		if doc.VerificationMethod[i].ID == id {
			return &doc.VerificationMethod[i], true
		}
	}

	return nil, false
}

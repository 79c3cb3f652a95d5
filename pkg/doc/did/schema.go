/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

const schemaV1 = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "description": "DID document subset used for issuer key authorization",
  "type": "object",
  "required": ["@context"],
  "properties": {
    "@context": {
      "type": "string",
      "const": "https://www.w3.org/ns/did/v1"
    },
    "id": {
      "type": "string"
    },
    "assertionMethod": {
      "type": "array",
      "items": {
        "anyOf": [
          {
            "type": "string"
          },
          {
            "$ref": "#/definitions/assertionMethodEntry"
          }
        ]
      }
    },
    "verificationMethod": {
      "type": "array",
      "items": {
        "$ref": "#/definitions/verificationMethod"
      }
    }
  },
  "definitions": {
    "assertionMethodEntry": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": {
          "type": "string"
        }
      }
    },
    "verificationMethod": {
      "type": "object",
      "required": ["id", "type"],
      "properties": {
        "id": {
          "type": "string"
        },
        "type": {
          "type": "string"
        },
        "publicKeyJwk": {
          "type": "object"
        }
      }
    }
  }
}`

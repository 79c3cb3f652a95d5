/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package nzcp resolves did:web issuer identifiers to P-256 verification keys
// for signed-pass verification.
//
// Packages for end developer usage
//
// pkg/didkey: The key resolution pipeline. Given a parsed issuer identifier and
// a key id, it fetches the issuer's DID document, checks that the key is
// authorized for assertion signing, and returns the verification key.
//
// pkg/doc/did: The did:web identifier and the DID document model, including the
// layered JSON decode and schema validation.
//
// pkg/doc/jose/jwk: The elliptic curve JSON Web Key subset and its
// reconstruction into a P-256 public key.
//
// pkg/vdr: The document resolver contract, with the did:web HTTP implementation
// under pkg/vdr/web and a mock under pkg/mock/vdr.
package nzcp

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwk holds the JSON Web Key subset accepted for pass issuer keys:
// elliptic curve keys on NIST P-256. Coordinates are carried as raw bytes and
// reconstructed into an uncompressed curve point before a verification key is
// handed out, so an attacker-supplied document can never smuggle an off-curve
// point past signature verification.
package jwk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// KtyEC is the JWK key type of elliptic curve keys.
	KtyEC = "EC"

	// CrvP256 is the JWK curve name of NIST P-256.
	CrvP256 = "P-256"

	// p256CoordinateSize is the fixed byte width of a P-256 affine coordinate.
	p256CoordinateSize = 32
)

var (
	// ErrNotEllipticCurve is returned when the JWK is not an elliptic curve key.
	ErrNotEllipticCurve = errors.New("publicKeyJwk was not elliptic curve")

	// ErrWrongCurve is returned when the JWK crv parameter is not P-256.
	ErrWrongCurve = errors.New("publicKeyJwk 'crv' was not 'P-256'")

	// ErrMissingX is returned when the JWK has no x coordinate.
	ErrMissingX = errors.New("publicKeyJwk was missing x coordinate")

	// ErrMissingY is returned when the JWK has no y coordinate.
	ErrMissingY = errors.New("publicKeyJwk was missing y coordinate")

	// ErrInvalidKey is returned when the x and y coordinates do not form a
	// point on the curve.
	ErrInvalidKey = errors.New("publicKeyJwk was invalid")
)

// JWK is the subset of a JSON Web Key consumed for issuer key resolution.
// X and Y hold the decoded coordinate bytes; nil means the field was absent.
type JWK struct {
	Kty string
	Crv string
	X   []byte
	Y   []byte
}

type rawJWK struct {
	Kty string `json:"kty,omitempty"`
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

// IsEC reports whether the key is of the elliptic curve type.
func (j *JWK) IsEC() bool {
	return j.Kty == KtyEC
}

// VerifyingKey validates the key material and reconstructs it into a P-256
// ECDSA public key usable for signature verification.
//
// The JWK must be an elliptic curve key on P-256 with both coordinates present.
// The coordinates are assembled into an uncompressed curve point; a coordinate
// of the wrong width, or a point not on the curve, fails with ErrInvalidKey.
func (j *JWK) VerifyingKey() (*ecdsa.PublicKey, error) {
	if !j.IsEC() {
		return nil, ErrNotEllipticCurve
	}

	if j.Crv != CrvP256 {
		return nil, ErrWrongCurve
	}

	if j.X == nil {
		return nil, ErrMissingX
	}

	if j.Y == nil {
		return nil, ErrMissingY
	}

	if len(j.X) != p256CoordinateSize || len(j.Y) != p256CoordinateSize {
		return nil, ErrInvalidKey
	}

	point := make([]byte, 0, 1+2*p256CoordinateSize)
	point = append(point, 0x4) // uncompressed point form
	point = append(point, j.X...)
	point = append(point, j.Y...)

	x, y := elliptic.Unmarshal(elliptic.P256(), point)
	if x == nil {
		return nil, ErrInvalidKey
	}

	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

// MarshalJSON marshals the key with base64url-encoded coordinates.
func (j *JWK) MarshalJSON() ([]byte, error) {
	raw := rawJWK{Kty: j.Kty, Crv: j.Crv}

	if j.X != nil {
		raw.X = base64.RawURLEncoding.EncodeToString(j.X)
	}

	if j.Y != nil {
		raw.Y = base64.RawURLEncoding.EncodeToString(j.Y)
	}

	return json.Marshal(raw)
}

// UnmarshalJSON parses the key, decoding base64url coordinates into raw bytes.
func (j *JWK) UnmarshalJSON(data []byte) error {
	var raw rawJWK

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unable to read JWK: %w", err)
	}

	j.Kty = raw.Kty
	j.Crv = raw.Crv
	j.X = nil
	j.Y = nil

	if raw.X != "" {
		j.X, err = base64.RawURLEncoding.DecodeString(raw.X)
		if err != nil {
			return fmt.Errorf("unable to decode JWK x coordinate: %w", err)
		}
	}

	if raw.Y != "" {
		j.Y, err = base64.RawURLEncoding.DecodeString(raw.Y)
		if err != nil {
			return fmt.Errorf("unable to decode JWK y coordinate: %w", err)
		}
	}

	return nil
}

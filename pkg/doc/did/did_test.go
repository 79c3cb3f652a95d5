/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("test parse did:web success", func(t *testing.T) {
		d, err := Parse("did:web:example.com")
		require.NoError(t, err)
		require.Equal(t, "example.com", d.Domain)

		d, err = Parse("did:web:nzcp.covid19.health.nz")
		require.NoError(t, err)
		require.Equal(t, "nzcp.covid19.health.nz", d.Domain)
	})

	t.Run("test round trip", func(t *testing.T) {
		for _, domain := range []string{"example.com", "localhost%3A8080", "example.com:user:alice"} {
			d, err := Parse(Prefix + domain)
			require.NoError(t, err)
			require.Equal(t, Prefix+domain, d.String())
		}
	})

	t.Run("test parse failure", func(t *testing.T) {
		for _, input := range []string{
			"",
			"example.com",
			"did:key:z6Mk",
			"did:web",
			"DID:WEB:example.com",
			"web:example.com",
		} {
			_, err := Parse(input)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidDID)
		}
	})
}

func TestAbsoluteKeyID(t *testing.T) {
	d, err := Parse("did:web:example.com")
	require.NoError(t, err)
	require.Equal(t, "did:web:example.com#key-1", d.AbsoluteKeyID("key-1"))
}

func TestDIDJSON(t *testing.T) {
	t.Run("test unmarshal success", func(t *testing.T) {
		var d DID
		require.NoError(t, json.Unmarshal([]byte(`"did:web:example.com"`), &d))
		require.Equal(t, "example.com", d.Domain)
	})

	t.Run("test unmarshal failure", func(t *testing.T) {
		var d DID

		err := json.Unmarshal([]byte(`"did:key:z6Mk"`), &d)
		require.ErrorIs(t, err, ErrInvalidDID)

		err = json.Unmarshal([]byte(`42`), &d)
		require.ErrorIs(t, err, ErrInvalidDID)
	})

	t.Run("test marshal", func(t *testing.T) {
		data, err := json.Marshal(DID{Domain: "example.com"})
		require.NoError(t, err)
		require.Equal(t, `"did:web:example.com"`, string(data))
	})

	t.Run("test unmarshal inside claims struct", func(t *testing.T) {
		payload := struct {
			Issuer DID `json:"iss"`
		}{}

		require.NoError(t, json.Unmarshal([]byte(`{"iss":"did:web:example.com"}`), &payload))
		require.Equal(t, "did:web:example.com", payload.Issuer.String())
	})
}

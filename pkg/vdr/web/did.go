/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vaxxnz/nzcp-go/pkg/doc/did"
)

const (
	defaultPath  = "/.well-known/did.json"
	documentPath = "/did.json"
)

// parseDIDWeb consumes a did:web identifier and returns the URL location of the
// DID document along with the host the TLS certificate must cover.
func parseDIDWeb(id string, useHTTP bool) (string, string, error) {
	var address, host string

	parsedDID, err := did.Parse(id)
	if err != nil {
		return address, host, fmt.Errorf("could not parse did:web did: %w", err)
	}

	pathComponents := strings.Split(parsedDID.Domain, ":")

	pathComponents[0], err = url.QueryUnescape(pathComponents[0])
	if err != nil {
		return address, host, fmt.Errorf("error parsing did:web did: %w", err)
	}

	host = strings.Split(pathComponents[0], ":")[0]

	protocol := "https://"
	if useHTTP {
		protocol = "http://"
	}

	switch len(pathComponents) {
	case 1:
		address = protocol + pathComponents[0] + defaultPath
	default:
		address = protocol + strings.Join(pathComponents, "/") + documentPath
	}

	return address, host, nil
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vaxxnz/nzcp-go/pkg/vdr"
)

const (
	didJSON   = "application/did+json"
	didLDJSON = "application/did+ld+json"
)

var logger = logrus.WithField("module", "vdr/web") //nolint:gochecknoglobals

// ResolveRepresentation resolves a did:web DID to its raw document bytes.
//
// Fetch-level failures land in the returned metadata; a non-200 response other
// than 404 still hands back whatever body was served, as a best-effort partial
// document for the caller to weigh against the error note.
func (v *VDR) ResolveRepresentation(ctx context.Context, didID string) (vdr.ResolutionMetadata, []byte) {
	address, host, err := parseDIDWeb(didID, v.useHTTP)
	if err != nil {
		return metadataError(errors.Wrap(err, "error resolving did:web did")), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return metadataError(errors.Wrap(err, "HTTP create get request failed")), nil
	}

	req.Header.Add("Accept", didJSON)
	req.Header.Add("Accept", didLDJSON)

	resp, err := v.client.Do(req)
	if err != nil {
		return metadataError(errors.Wrap(err, "http request unsuccessful")), nil
	}

	defer closeResponseBody(resp.Body)

	if resp.TLS != nil {
		for _, cert := range resp.TLS.PeerCertificates {
			err = cert.VerifyHostname(host)
			if err != nil {
				return metadataError(errors.Wrap(err, "identifier does not match TLS host")), nil
			}
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return metadataError(errors.Wrap(err, "error reading http response body")), nil
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return vdr.ResolutionMetadata{}, body
	case http.StatusNotFound:
		return vdr.ResolutionMetadata{Error: "DID does not exist"}, nil
	default:
		return vdr.ResolutionMetadata{
			Error: fmt.Sprintf("unsupported response from DID resolver [%v]", resp.StatusCode),
		}, body
	}
}

func metadataError(err error) vdr.ResolutionMetadata {
	return vdr.ResolutionMetadata{Error: err.Error()}
}

func closeResponseBody(respBody io.Closer) {
	e := respBody.Close()
	if e != nil {
		logger.Errorf("Failed to close response body: %v", e)
	}
}

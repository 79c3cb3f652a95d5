/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolvecmd

import (
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vaxxnz/nzcp-go/pkg/didkey"
	"github.com/vaxxnz/nzcp-go/pkg/doc/did"
	"github.com/vaxxnz/nzcp-go/pkg/vdr/web"
)

const (
	timeoutFlagName  = "timeout"
	timeoutFlagUsage = "HTTP timeout for the document fetch."

	useHTTPFlagName  = "insecure-http"
	useHTTPFlagUsage = "Fetch the DID document over plain HTTP. Test use only."
)

// Cmd returns the didweb-resolve command.
func Cmd() *cobra.Command {
	var (
		timeout time.Duration
		useHTTP bool
	)

	cmd := &cobra.Command{
		Use:          "didweb-resolve <iss> <kid>",
		Short:        "Resolve a did:web issuer key",
		Long:         "Resolve a did:web issuer identifier and key id to a P-256 verification key.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			identifier, err := did.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "parsing issuer DID")
			}

			opts := []web.Option{web.WithHTTPClient(&http.Client{Timeout: timeout})}
			if useHTTP {
				opts = append(opts, web.WithHTTP())
			}

			resolver := didkey.New(web.New(opts...))

			key, err := resolver.ResolveVerifyingKey(cmd.Context(), identifier, args[1])
			if err != nil {
				return errors.Wrapf(err, "resolving key %q for %s", args[1], identifier)
			}

			keyBytes, err := x509.MarshalPKIXPublicKey(key)
			if err != nil {
				return errors.Wrap(err, "encoding verification key")
			}

			return pem.Encode(cmd.OutOrStdout(), &pem.Block{Type: "PUBLIC KEY", Bytes: keyBytes})
		},
	}

	cmd.Flags().DurationVar(&timeout, timeoutFlagName, 10*time.Second, timeoutFlagUsage)
	cmd.Flags().BoolVar(&useHTTP, useHTTPFlagName, false, useHTTPFlagUsage)

	return cmd
}

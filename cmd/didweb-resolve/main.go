/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// didweb-resolve resolves a did:web issuer identifier and key id to the P-256
// public key authorized for assertion signing, and prints it PEM-encoded.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/vaxxnz/nzcp-go/cmd/didweb-resolve/resolvecmd"
)

func main() {
	rootCmd := resolvecmd.Cmd()

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("run didweb-resolve: %v", err)
	}
}

// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passgen.
//
// Usage:
//
//	go run . [flags]
//	./passgen [command] [flags]
//
// This launches the Passgen CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/passgen/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

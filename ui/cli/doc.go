// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Passgen using Cobra.
// It wires configuration, logging and localization, then delegates to the
// engine for generation and to the tui package for the interactive screen.
package cli

// SPDX-License-Identifier: MIT

// Package cli wires the minecount command: it parses arguments, resolves
// configuration, runs the read → annotate → write pipeline and turns errors
// into diagnostics and exit codes.
package cli

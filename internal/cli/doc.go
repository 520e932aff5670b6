// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli handles command-line parsing, terminal detection, and
// help/version output for lazyreview.
//
// The package is deliberately small: it maps os.Args onto a Command
// plus an Args struct, decides whether colored interactive output is
// appropriate, and renders the help text. All actual work happens in
// the packages the commands dispatch to.
package cli

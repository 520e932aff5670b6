// errors.go - Error types and exit codes for the lazyreview CLI.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitInputError indicates the input file could not be read
	ExitInputError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError indicates the command line itself was invalid.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// InputError indicates an input file could not be read or parsed.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return ExitInputError
	}

	return ExitGeneralError
}

// Fail prints the error to stderr and exits with the mapped code.
func Fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(ExitCode(err))
}

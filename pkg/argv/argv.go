// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package argv returns the process command line as UTF-8 strings on every
// platform. On Windows the command line is re-read from the OS and each
// wide-character token is decoded to UTF-8; elsewhere the arguments the
// runtime received are already byte strings and are forwarded unchanged.
package argv

import "go.uber.org/zap"

// source produces the platform's argument list.
var source = platformArgs

// CommandLine returns the decoded arguments of the current process, with
// index 0 conventionally the program path. If the OS cannot supply or parse
// the command line, CommandLine logs one diagnostic and returns an empty
// slice. The result is newly allocated and owned by the caller.
func CommandLine() []string {
	args, err := source()
	if err != nil {
		Logger().Warn("failed to parse command line", zap.Error(err))
		return []string{}
	}
	return args
}

// FromArgv returns a copy of an argument array the platform already supplies
// as byte strings. The elements are assumed to be UTF-8 and are neither
// validated nor converted.
func FromArgv(argv []string) []string {
	args := make([]string, len(argv))
	copy(args, argv)
	return args
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package argv

import "os"

// NativeWideArgv reports whether CommandLine decodes a wide-character
// command line obtained from the OS.
const NativeWideArgv = false

func platformArgs() ([]string, error) {
	return FromArgv(os.Args), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package argv

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// NativeWideArgv reports whether CommandLine decodes a wide-character
// command line obtained from the OS.
const NativeWideArgv = true

func platformArgs() ([]string, error) {
	var argc int32
	argv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if err != nil {
		return nil, fmt.Errorf("CommandLineToArgvW: %w", err)
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(argv)))

	args := make([]string, argc)
	for i := range args {
		args[i] = windows.UTF16PtrToString(&argv[i][0])
	}
	return args, nil
}

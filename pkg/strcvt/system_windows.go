// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package strcvt

import "golang.org/x/sys/windows"

// SystemCodePage returns the active ANSI code page.
func SystemCodePage() CodePage {
	return CodePage(windows.GetACP())
}

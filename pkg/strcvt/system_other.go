// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package strcvt

import "os"

// SystemCodePage returns the code page named by the locale environment,
// defaulting to UTF-8.
func SystemCodePage() CodePage {
	return localeCodePage(os.Getenv)
}

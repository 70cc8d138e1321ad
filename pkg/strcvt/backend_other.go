// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package strcvt

var platform backend = portable{}

// nativeCodePages reports whether code page ids outside the registry can
// still be converted by the OS.
const nativeCodePages = false

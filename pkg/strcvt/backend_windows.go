// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package strcvt

import (
	"errors"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

// nativeCodePages reports whether code page ids outside the registry can
// still be converted by the OS.
const nativeCodePages = true

// platform uses MultiByteToWideChar and WideCharToMultiByte, falling back
// to the portable tables for code pages the system does not install.
var platform backend = native{}

var procWideCharToMultiByte = windows.NewLazySystemDLL("kernel32.dll").NewProc("WideCharToMultiByte")

type native struct {
	fallback portable
}

func (n native) decode(cp CodePage, b []byte) ([]uint16, bool) {
	if len(b) > math.MaxInt32 {
		return n.fallback.decode(cp, b)
	}
	size, err := windows.MultiByteToWideChar(uint32(cp), 0, &b[0], int32(len(b)), nil, 0)
	if size == 0 {
		if errors.Is(err, windows.ERROR_INVALID_PARAMETER) {
			return n.fallback.decode(cp, b)
		}
		return nil, false
	}
	buf := make([]uint16, size)
	size, _ = windows.MultiByteToWideChar(uint32(cp), 0, &b[0], int32(len(b)), &buf[0], size)
	if size == 0 {
		return nil, false
	}
	return buf[:size], true
}

func (n native) encode(cp CodePage, w []uint16) ([]byte, bool) {
	if len(w) > math.MaxInt32 {
		return n.fallback.encode(cp, w)
	}
	size, err := wideCharToMultiByte(uint32(cp), w, nil)
	if size == 0 {
		if errors.Is(err, windows.ERROR_INVALID_PARAMETER) {
			return n.fallback.encode(cp, w)
		}
		return nil, false
	}
	buf := make([]byte, size)
	size, _ = wideCharToMultiByte(uint32(cp), w, buf)
	if size == 0 {
		return nil, false
	}
	return buf[:size], true
}

// wideCharToMultiByte calls WideCharToMultiByte with no flags and no
// default char. A nil buf queries the required size.
func wideCharToMultiByte(cp uint32, w []uint16, buf []byte) (int, error) {
	var out *byte
	if len(buf) > 0 {
		out = &buf[0]
	}
	r, _, err := procWideCharToMultiByte.Call(
		uintptr(cp),
		0,
		uintptr(unsafe.Pointer(&w[0])),
		uintptr(len(w)),
		uintptr(unsafe.Pointer(out)),
		uintptr(len(buf)),
		0,
		0,
	)
	if r == 0 {
		return 0, err
	}
	return int(r), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strcvt converts text between legacy code page bytes, UTF-16 code
// units, and UTF-8. Every conversion is total: nil or empty input, an
// unknown code page, or a rejected byte sequence all yield empty output
// rather than an error. Conversions between UTF-8 and a legacy code page
// always pass through UTF-16.
package strcvt

import "bytes"

// NarrowToWide converts b, encoded in cp, to UTF-16. A length of -1 treats
// b as NUL-terminated and excludes the terminator; a non-negative length is
// an explicit byte count (clamped to len(b)) that may include NUL bytes.
// Any other negative length yields empty output.
func NarrowToWide(b []byte, length int, cp CodePage) []uint16 {
	b, ok := span(b, length)
	if !ok || len(b) == 0 {
		return nil
	}
	w, ok := platform.decode(resolve(cp), b)
	if !ok || len(w) == 0 {
		return nil
	}
	return w
}

// StringToWide converts every byte of s, encoded in cp, to UTF-16.
func StringToWide(s string, cp CodePage) []uint16 {
	if s == "" {
		return nil
	}
	return NarrowToWide([]byte(s), len(s), cp)
}

// WideToNarrow converts UTF-16 code units to bytes in cp. Characters cp
// cannot represent are replaced.
func WideToNarrow(w []uint16, cp CodePage) []byte {
	if len(w) == 0 {
		return nil
	}
	b, ok := platform.encode(resolve(cp), w)
	if !ok || len(b) == 0 {
		return nil
	}
	return b
}

// WideToString is WideToNarrow returning a string.
func WideToString(w []uint16, cp CodePage) string {
	return string(WideToNarrow(w, cp))
}

// U8ToWide converts UTF-8 bytes to UTF-16. length follows NarrowToWide.
func U8ToWide(b []byte, length int) []uint16 {
	if b == nil || length == 0 {
		return nil
	}
	return NarrowToWide(b, length, UTF8)
}

// U8StringToWide converts a UTF-8 string to UTF-16.
func U8StringToWide(s string) []uint16 {
	if s == "" {
		return nil
	}
	return StringToWide(s, UTF8)
}

// WideToU8 converts UTF-16 code units to a UTF-8 string. Unpaired
// surrogates become U+FFFD.
func WideToU8(w []uint16) string {
	if len(w) == 0 {
		return ""
	}
	return WideToString(w, UTF8)
}

// U8ToString converts UTF-8 bytes to cp by way of UTF-16. The result is
// lossy for characters cp cannot represent.
func U8ToString(b []byte, length int, cp CodePage) string {
	if b == nil || length == 0 {
		return ""
	}
	return WideToString(U8ToWide(b, length), cp)
}

// U8StringToString converts a UTF-8 string to cp by way of UTF-16.
func U8StringToString(s string, cp CodePage) string {
	if s == "" {
		return ""
	}
	return U8ToString([]byte(s), len(s), cp)
}

// StringToU8 converts s, encoded in cp, to UTF-8 by way of UTF-16.
func StringToU8(s string, cp CodePage) string {
	if s == "" {
		return ""
	}
	return WideToU8(StringToWide(s, cp))
}

// Converter binds the system code page used by the convenience
// conversions. The zero value resolves ACP on every call.
type Converter struct {
	System CodePage
}

// NewConverter returns a Converter for system, resolving ACP once.
func NewConverter(system CodePage) Converter {
	if system == ACP {
		system = SystemCodePage()
	}
	return Converter{System: system}
}

// DefaultConverter returns a Converter for the process's system code page.
func DefaultConverter() Converter {
	return NewConverter(ACP)
}

// U8ToSystem converts a UTF-8 string to the system code page.
func (c Converter) U8ToSystem(s string) string {
	return U8StringToString(s, c.System)
}

// SystemToU8 converts system code page text to UTF-8.
func (c Converter) SystemToU8(s string) string {
	return StringToU8(s, c.System)
}

// ToWide converts system code page text to UTF-16.
func (c Converter) ToWide(s string) []uint16 {
	return StringToWide(s, c.System)
}

// FromWide converts UTF-16 code units to the system code page.
func (c Converter) FromWide(w []uint16) string {
	return WideToString(w, c.System)
}

func resolve(cp CodePage) CodePage {
	if cp == ACP {
		return SystemCodePage()
	}
	return cp
}

func span(b []byte, length int) ([]byte, bool) {
	switch {
	case length == -1:
		if i := bytes.IndexByte(b, 0); i >= 0 {
			return b[:i], true
		}
		return b, true
	case length < 0:
		return nil, false
	case length > len(b):
		return b, true
	default:
		return b[:length], true
	}
}

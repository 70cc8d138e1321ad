// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strcvt

// U8Length counts UTF-8 code points in b by lead byte alone. Continuation
// bytes are skipped without inspection. Scanning stops at a NUL byte, at a
// byte that is not a valid lead, or at the end of b; a sequence cut short
// by the end of b still counts once.
func U8Length(b []byte) int {
	return u8Length(b)
}

// U8StringLength is U8Length for strings.
func U8StringLength(s string) int {
	return u8Length(s)
}

func u8Length[T ~[]byte | ~string](s T) int {
	count := 0
	for i := 0; i < len(s) && s[i] != 0; count++ {
		n := leadLen(s[i])
		if n == 0 {
			break
		}
		i += n
	}
	return count
}

// leadLen returns the sequence length a lead byte claims, or 0.
func leadLen(c byte) int {
	switch {
	case c < 0x80:
		return 1 // 0xxxxxxx
	case c>>5 == 0x06:
		return 2 // 110xxxxx
	case c>>4 == 0x0E:
		return 3 // 1110xxxx
	case c>>3 == 0x1E:
		return 4 // 11110xxx
	}
	return 0
}

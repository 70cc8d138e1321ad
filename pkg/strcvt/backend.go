// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strcvt

import (
	"unicode/utf16"

	"golang.org/x/text/encoding"
)

// backend performs the two primitive conversions. Inputs are never empty
// and cp is never ACP; the boolean reports success.
type backend interface {
	decode(cp CodePage, b []byte) ([]uint16, bool)
	encode(cp CodePage, w []uint16) ([]byte, bool)
}

// portable converts through golang.org/x/text. Bytes invalid in the source
// code page decode to U+FFFD; characters missing from the target code page
// encode to the encoding's substitution byte.
type portable struct{}

func (portable) decode(cp CodePage, b []byte) ([]uint16, bool) {
	enc, ok := Lookup(cp)
	if !ok {
		return nil, false
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, false
	}
	return utf16.Encode([]rune(string(s))), true
}

func (portable) encode(cp CodePage, w []uint16) ([]byte, bool) {
	enc, ok := Lookup(cp)
	if !ok {
		return nil, false
	}
	s := string(utf16.Decode(w))
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, false
	}
	return out, true
}

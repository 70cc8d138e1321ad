// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strcvt

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// CodePage is an opaque code page identifier. Values use the Windows
// numbering so the same identifier works with the native conversion API.
type CodePage uint32

const (
	// ACP selects the process's current system code page.
	ACP CodePage = 0
	// UTF8 is the UTF-8 code page.
	UTF8 CodePage = 65001
	// UTF16LE is little-endian UTF-16 carried as a byte stream.
	UTF16LE CodePage = 1200
	// UTF16BE is big-endian UTF-16 carried as a byte stream.
	UTF16BE CodePage = 1201
)

// ErrUnknownCodePage is returned by ParseCodePage for names and numbers
// that do not map to a registered code page.
var ErrUnknownCodePage = errors.New("unknown code page")

type entry struct {
	name string
	enc  encoding.Encoding
}

// registry maps code page identifiers to their portable encodings.
var registry = map[CodePage]entry{
	UTF8:    {"utf-8", unicode.UTF8},
	UTF16LE: {"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	UTF16BE: {"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},

	437:   {"ibm437", charmap.CodePage437},
	850:   {"ibm850", charmap.CodePage850},
	852:   {"ibm852", charmap.CodePage852},
	855:   {"ibm855", charmap.CodePage855},
	858:   {"ibm00858", charmap.CodePage858},
	860:   {"ibm860", charmap.CodePage860},
	862:   {"ibm862", charmap.CodePage862},
	863:   {"ibm863", charmap.CodePage863},
	865:   {"ibm865", charmap.CodePage865},
	866:   {"ibm866", charmap.CodePage866},
	874:   {"windows-874", charmap.Windows874},
	1250:  {"windows-1250", charmap.Windows1250},
	1251:  {"windows-1251", charmap.Windows1251},
	1252:  {"windows-1252", charmap.Windows1252},
	1253:  {"windows-1253", charmap.Windows1253},
	1254:  {"windows-1254", charmap.Windows1254},
	1255:  {"windows-1255", charmap.Windows1255},
	1256:  {"windows-1256", charmap.Windows1256},
	1257:  {"windows-1257", charmap.Windows1257},
	1258:  {"windows-1258", charmap.Windows1258},
	10000: {"macintosh", charmap.Macintosh},
	10007: {"x-mac-cyrillic", charmap.MacintoshCyrillic},
	20866: {"koi8-r", charmap.KOI8R},
	21866: {"koi8-u", charmap.KOI8U},
	28591: {"iso-8859-1", charmap.ISO8859_1},
	28592: {"iso-8859-2", charmap.ISO8859_2},
	28593: {"iso-8859-3", charmap.ISO8859_3},
	28594: {"iso-8859-4", charmap.ISO8859_4},
	28595: {"iso-8859-5", charmap.ISO8859_5},
	28596: {"iso-8859-6", charmap.ISO8859_6},
	28597: {"iso-8859-7", charmap.ISO8859_7},
	28598: {"iso-8859-8", charmap.ISO8859_8},
	28599: {"iso-8859-9", charmap.ISO8859_9},
	28603: {"iso-8859-13", charmap.ISO8859_13},
	28605: {"iso-8859-15", charmap.ISO8859_15},

	932:   {"shift_jis", japanese.ShiftJIS},
	20932: {"euc-jp", japanese.EUCJP},
	50220: {"iso-2022-jp", japanese.ISO2022JP},
	50221: {"cp50221", japanese.ISO2022JP},
	50222: {"cp50222", japanese.ISO2022JP},
	949:   {"euc-kr", korean.EUCKR},
	936:   {"gbk", simplifiedchinese.GBK},
	54936: {"gb18030", simplifiedchinese.GB18030},
	950:   {"big5", traditionalchinese.Big5},
}

// aliases covers locale charset spellings that are not WHATWG labels.
var aliases = map[string]CodePage{
	"utf8":  UTF8,
	"sjis":  932,
	"eucjp": 20932,
	"euckr": 949,
	"koi8r": 20866,
	"koi8u": 21866,
}

var byName = func() map[string]CodePage {
	m := make(map[string]CodePage, len(registry))
	for cp, e := range registry {
		m[e.name] = cp
	}
	return m
}()

// Lookup returns the portable encoding registered for cp. ACP is not
// resolved here; callers pass a concrete code page.
func Lookup(cp CodePage) (encoding.Encoding, bool) {
	e, ok := registry[cp]
	if !ok {
		return nil, false
	}
	return e.enc, true
}

// Name returns the canonical label for cp, or "cpNNN" when cp has no
// registered label.
func Name(cp CodePage) string {
	if cp == ACP {
		return "acp"
	}
	if e, ok := registry[cp]; ok {
		return e.name
	}
	return "cp" + strconv.FormatUint(uint64(cp), 10)
}

// Supported returns every registered code page in ascending order.
func Supported() []CodePage {
	cps := make([]CodePage, 0, len(registry))
	for cp := range registry {
		cps = append(cps, cp)
	}
	slices.Sort(cps)
	return cps
}

// ParseCodePage resolves a code page from a decimal identifier, a "cpNNN"
// or "windows-NNN" spelling, "acp"/"system", or any WHATWG encoding label.
// On Windows numeric ids outside the registry are passed through to the OS;
// elsewhere they are rejected.
func ParseCodePage(s string) (CodePage, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "":
		return ACP, fmt.Errorf("%w: empty name", ErrUnknownCodePage)
	case "acp", "ansi", "system":
		return ACP, nil
	}

	if cp, ok := byName[key]; ok {
		return cp, nil
	}
	if cp, ok := aliases[key]; ok {
		return cp, nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(key, "windows-"), "cp")
	if n, err := strconv.ParseUint(digits, 10, 32); err == nil {
		cp := CodePage(n)
		if cp == ACP {
			return ACP, nil
		}
		if _, ok := registry[cp]; ok || nativeCodePages {
			return cp, nil
		}
		return ACP, fmt.Errorf("%w: %d", ErrUnknownCodePage, n)
	}

	if enc, err := htmlindex.Get(key); err == nil {
		if cp, ok := codePageOf(enc); ok {
			return cp, nil
		}
	}
	return ACP, fmt.Errorf("%w: %q", ErrUnknownCodePage, s)
}

// codePageOf finds the lowest registered identifier for enc.
func codePageOf(enc encoding.Encoding) (CodePage, bool) {
	for _, cp := range Supported() {
		if registry[cp].enc == enc {
			return cp, true
		}
	}
	return ACP, false
}

// localeCodePage derives a code page from POSIX locale variables. The
// first non-empty of LC_ALL, LC_CTYPE and LANG wins; a locale without a
// recognized charset is treated as UTF-8.
func localeCodePage(getenv func(string) string) CodePage {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		dot := strings.IndexByte(v, '.')
		if dot < 0 {
			return UTF8
		}
		charset := v[dot+1:]
		if at := strings.IndexByte(charset, '@'); at >= 0 {
			charset = charset[:at]
		}
		cp, err := ParseCodePage(charset)
		if err != nil || cp == ACP {
			return UTF8
		}
		return cp
	}
	return UTF8
}

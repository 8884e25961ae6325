package writer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/wudi/tagkit/ir/raw"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// TextString encodes s as a PDF text string. Printable ASCII is written as a
// literal string, which PDFDocEncoding reads identically; anything else is
// written as UTF-16BE with a byte order mark. Invalid UTF-8 sequences become
// U+FFFD.
func TextString(s string) raw.StringObj {
	if isPlainASCII(s) {
		return raw.Str([]byte(s))
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	enc, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return raw.HexStr(nil)
	}
	return raw.HexStr(enc)
}

// DecodeTextString is the inverse of TextString.
func DecodeTextString(b []byte) (string, error) {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		out, err := utf16BE.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return string(b), nil
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c < 0x20 && c != '\n' && c != '\r' && c != '\t') {
			return false
		}
	}
	return true
}

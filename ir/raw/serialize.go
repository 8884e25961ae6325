package raw

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberFloat32 keeps the shortest decimal form of f, so 0.1 stays 0.1
// instead of picking up float32 widening noise.
func NumberFloat32(f float32) NumberObj {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'f', -1, 32), 64)
	if err != nil {
		v = float64(f)
	}
	return NumberFloat(v)
}

// Serialize renders obj in PDF syntax. Dictionaries keep insertion order and
// floats use their shortest non-exponent form, so equal inputs always give
// equal bytes. NaN and infinities are written as 0.
func Serialize(o Object) []byte {
	var b bytes.Buffer
	writeObject(&b, o)
	return b.Bytes()
}

func writeObject(b *bytes.Buffer, o Object) {
	switch v := o.(type) {
	case nil:
		b.WriteString("null")
	case NameObj:
		b.WriteString("/" + EscapeName(v.Value()))
	case NumberObj:
		if v.IsInteger() {
			b.WriteString(strconv.FormatInt(v.Int(), 10))
			return
		}
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// PDF has no syntax for non-finite reals.
			f = 0
		}
		b.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	case BoolObj:
		if v.Value() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case NullObj:
		b.WriteString("null")
	case String:
		if v.IsHex() {
			b.WriteByte('<')
			b.WriteString(strings.ToUpper(hex.EncodeToString(v.Value())))
			b.WriteByte('>')
			return
		}
		b.Write(EscapeLiteralString(v.Value()))
	case *ArrayObj:
		b.WriteByte('[')
		for i, it := range v.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeObject(b, it)
		}
		b.WriteByte(']')
	case *DictObj:
		b.WriteString("<<")
		for i, k := range v.order {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("/" + EscapeName(k) + " ")
			writeObject(b, v.KV[k])
		}
		b.WriteString(">>")
	case Reference:
		fmt.Fprintf(b, "%d %d R", v.Ref().Num, v.Ref().Gen)
	default:
		b.WriteString("null")
	}
}

// EscapeName encodes bytes outside the regular name character set as #xx.
func EscapeName(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' || ch == '.' {
			b.WriteByte(ch)
			continue
		}
		fmt.Fprintf(&b, "#%02X", ch)
	}
	return b.String()
}

// EscapeLiteralString returns rawBytes as a parenthesized PDF string.
func EscapeLiteralString(rawBytes []byte) []byte {
	var b bytes.Buffer
	b.WriteByte('(')
	for _, ch := range rawBytes {
		switch ch {
		case '\\', '(', ')':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\t':
			b.WriteString("\\t")
		case '\b':
			b.WriteString("\\b")
		case '\f':
			b.WriteString("\\f")
		default:
			if ch < 0x20 || ch >= 0x80 {
				fmt.Fprintf(&b, "\\%03o", ch)
			} else {
				b.WriteByte(ch)
			}
		}
	}
	b.WriteByte(')')
	return b.Bytes()
}

package raw

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
)

// Hash returns a content fingerprint of obj. Dictionary keys are hashed in
// sorted order, so two dictionaries with the same entries hash equally even
// when they were built in a different order.
func Hash(obj Object) string {
	h := sha256.New()
	writeHash(h, obj)
	return hex.EncodeToString(h.Sum(nil))
}

func writeHash(h io.Writer, obj Object) {
	if obj == nil {
		fmt.Fprint(h, "nil")
		return
	}
	fmt.Fprint(h, obj.Type(), ":")
	switch t := obj.(type) {
	case Name:
		fmt.Fprint(h, t.Value())
	case Number:
		if t.IsInteger() {
			fmt.Fprint(h, t.Int())
		} else {
			fmt.Fprint(h, t.Float())
		}
	case Boolean:
		fmt.Fprint(h, t.Value())
	case String:
		fmt.Fprintf(h, "%t:%x", t.IsHex(), t.Value())
	case Reference:
		fmt.Fprintf(h, "%d %d R", t.Ref().Num, t.Ref().Gen)
	case Array:
		fmt.Fprint(h, "[")
		for i := 0; i < t.Len(); i++ {
			v, _ := t.Get(i)
			writeHash(h, v)
			fmt.Fprint(h, ",")
		}
		fmt.Fprint(h, "]")
	case Dictionary:
		fmt.Fprint(h, "<<")
		keys := t.Keys()
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].Value() < keys[j].Value()
		})
		for _, k := range keys {
			fmt.Fprint(h, k.Value(), "=")
			v, _ := t.Get(k)
			writeHash(h, v)
			fmt.Fprint(h, ";")
		}
		fmt.Fprint(h, ">>")
	}
}

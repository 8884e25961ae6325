package writer

import "github.com/wudi/tagkit/ir/raw"

// RefAllocator hands out sequential object references starting at first.
func RefAllocator(first int) func() raw.ObjectRef {
	next := first
	return func() raw.ObjectRef {
		ref := raw.ObjectRef{Num: next}
		next++
		return ref
	}
}

// Deduplicate writes each element as an indirect object into objects and
// returns their references in input order. Attribute objects with identical
// content are written once and referenced from every element that uses
// them; a table with many equal header cells shares one /Table dictionary.
func Deduplicate(elems []StructElem, nextRef func() raw.ObjectRef, objects map[raw.ObjectRef]raw.Object) []raw.ObjectRef {
	seen := make(map[string]raw.ObjectRef)
	refs := make([]raw.ObjectRef, 0, len(elems))
	for _, e := range elems {
		attrs := make([]raw.Object, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			d := a.Dict()
			h := raw.Hash(d)
			ref, ok := seen[h]
			if !ok {
				ref = nextRef()
				objects[ref] = d
				seen[h] = ref
			}
			attrs = append(attrs, raw.Ref(ref.Num, ref.Gen))
		}
		ref := nextRef()
		objects[ref] = e.dict(attrs)
		refs = append(refs, ref)
	}
	return refs
}

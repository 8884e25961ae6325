package writer

import "github.com/wudi/tagkit/ir/raw"

// AttributeEntry is one key/value pair of an attribute object.
type AttributeEntry struct {
	Key   string
	Value raw.Object
}

// AttributeObject is a standard attribute dictionary: an owner and its
// entries in the order they were added.
type AttributeObject struct {
	Owner   AttributeOwner
	Entries []AttributeEntry
}

// Set adds key, replacing an existing entry in place.
func (a *AttributeObject) Set(key string, value raw.Object) {
	for i := range a.Entries {
		if a.Entries[i].Key == key {
			a.Entries[i].Value = value
			return
		}
	}
	a.Entries = append(a.Entries, AttributeEntry{Key: key, Value: value})
}

func (a AttributeObject) Get(key string) (raw.Object, bool) {
	for _, e := range a.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the entry keys without /O.
func (a AttributeObject) Keys() []string {
	keys := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		keys[i] = e.Key
	}
	return keys
}

func (a AttributeObject) Empty() bool { return len(a.Entries) == 0 }

// Dict renders the object with /O first.
func (a AttributeObject) Dict() *raw.DictObj {
	d := raw.Dict()
	d.Set(raw.NameLiteral("O"), a.Owner.Name())
	for _, e := range a.Entries {
		d.Set(raw.NameLiteral(e.Key), e.Value)
	}
	return d
}

package tagging

import (
	"iter"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	userIDPrefix      = 'U'
	generatedIDPrefix = 'N'
)

// TagID identifies a structure element so other elements can refer to it,
// for example a table cell naming its header cells.
//
// Identifiers built from caller bytes always start with 'U' and identifiers
// issued by an IDGenerator always start with 'N', so the two can never
// collide. TagID is comparable and usable as a map key.
type TagID struct {
	b string
}

// NewTagID builds an identifier from caller-supplied bytes.
func NewTagID(b []byte) TagID {
	return TagID{b: string(userIDPrefix) + string(b)}
}

// TagIDString builds an identifier from caller-supplied text.
func TagIDString(s string) TagID {
	return TagID{b: string(userIDPrefix) + s}
}

// TagIDFromSeq builds an identifier from a byte sequence.
func TagIDFromSeq(seq iter.Seq[byte]) TagID {
	var sb strings.Builder
	sb.WriteByte(userIDPrefix)
	for c := range seq {
		sb.WriteByte(c)
	}
	return TagID{b: sb.String()}
}

// Bytes returns the full prefixed identifier.
func (id TagID) Bytes() []byte { return []byte(id.b) }

func (id TagID) String() string { return id.b }

func (id TagID) Len() int { return len(id.b) }

// IsZero reports whether id was never assigned.
func (id TagID) IsZero() bool { return id.b == "" }

// IsGenerated reports whether id was issued by an IDGenerator.
func (id TagID) IsGenerated() bool { return len(id.b) > 0 && id.b[0] == generatedIDPrefix }

// Compare orders identifiers byte-wise.
func (id TagID) Compare(o TagID) int { return strings.Compare(id.b, o.b) }

// IDGenerator issues identifiers for elements the caller did not name, such
// as footnotes. Output depends only on the namespace and the call order, so
// the same document always receives the same identifiers.
type IDGenerator struct {
	mu   sync.Mutex
	ns   uuid.UUID
	next uint64
}

// NewIDGenerator returns a generator scoped to ns.
func NewIDGenerator(ns uuid.UUID) *IDGenerator {
	return &IDGenerator{ns: ns}
}

// NewIDGeneratorForName derives the namespace from a document name.
func NewIDGeneratorForName(name string) *IDGenerator {
	return NewIDGenerator(uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)))
}

// Next returns the next identifier.
func (g *IDGenerator) Next() TagID {
	g.mu.Lock()
	n := g.next
	g.next++
	g.mu.Unlock()
	u := uuid.NewSHA1(g.ns, strconv.AppendUint(nil, n, 10))
	return TagID{b: string(generatedIDPrefix) + u.String()}
}

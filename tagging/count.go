package tagging

import (
	"errors"
	"strconv"
)

// ErrZeroCount is returned when a count of zero is requested.
var ErrZeroCount = errors.New("tagging: count must be at least 1")

// Count is a positive integer. The zero value is 1, so a Count can never
// hold zero.
type Count struct {
	minus1 uint32
}

// CountOne is the smallest Count.
var CountOne = Count{}

// NewCount returns n as a Count, or ErrZeroCount when n is 0.
func NewCount(n uint32) (Count, error) {
	if n == 0 {
		return Count{}, ErrZeroCount
	}
	return Count{minus1: n - 1}, nil
}

// MustCount is like NewCount but panics when n is 0.
func MustCount(n uint32) Count {
	c, err := NewCount(n)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Count) Uint32() uint32 { return c.minus1 + 1 }

func (c Count) IsOne() bool { return c.minus1 == 0 }

func (c Count) String() string { return strconv.FormatUint(uint64(c.Uint32()), 10) }

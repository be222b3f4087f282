package llvmstr

import (
	"sync"

	"github.com/ansel1/merry/v2"
)

// Go has no compile-time NUL-appending macro, so literals are terminated once
// at first use and kept for process lifetime. The cache only ever grows;
// entries back live Str views and must never be evicted or mutated.
var literals = struct {
	sync.RWMutex
	m map[string]*byte
}{m: make(map[string]*byte)}

var emptyLiteral = [1]byte{0}

// Literal returns a Str over a NUL-terminated copy of s backed by Go memory
// that lives for the rest of the process. No release is ever required and
// repeated calls with the same text return a view over the same storage.
//
// s must not contain an embedded NUL byte: the terminator convention cannot
// represent it, so Literal panics with ErrEmbeddedNUL.
func Literal(s string) Str {
	if s == "" {
		return Str{ptr: &emptyLiteral[0]}
	}

	literals.RLock()
	p, ok := literals.m[s]
	literals.RUnlock()
	if ok {
		return Str{ptr: p}
	}

	literals.Lock()
	defer literals.Unlock()
	if p, ok := literals.m[s]; ok {
		return Str{ptr: p}
	}
	c, err := NewCString(s)
	if err != nil {
		panic(merry.Wrap(err, merry.WithValue("literal", s)))
	}
	literals.m[s] = c.ptr()
	return Str{ptr: c.ptr()}
}

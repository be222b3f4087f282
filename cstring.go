package llvmstr

import (
	"strings"

	"github.com/ansel1/merry/v2"
)

// CString is a NUL-terminated copy of a Go string, allocated on the Go heap.
// It is the outbound counterpart of Str: something to hand to a foreign call
// that expects a C string. The memory is Go-managed, so there is nothing to
// release; the buffer just has to be kept alive (and the CString not garbage
// collected) for as long as the foreign side holds the pointer.
type CString struct {
	buf []byte
}

// NewCString copies s into a fresh NUL-terminated buffer. Unlike the decode
// path this returns an error instead of panicking: the input is caller data,
// not a foreign contract, and an embedded NUL is an expected kind of bad
// input (ErrEmbeddedNUL, with the offending index attached).
func NewCString(s string) (CString, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return CString{}, merry.Wrap(ErrEmbeddedNUL, merry.WithValue("index", i))
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return CString{buf: buf}, nil
}

// Str borrows the buffer as a non-owning view, valid while c is alive.
func (c CString) Str() Str {
	return Str{ptr: c.ptr()}
}

// String decodes the buffer back, see Str.String.
func (c CString) String() string {
	return c.Str().String()
}

func (c CString) ptr() *byte {
	return &c.buf[0]
}

package llvmstr

import (
	"strconv"
	"unicode/utf8"
	"unsafe"

	"github.com/ansel1/merry/v2"
	"github.com/msaf1980/go-stringutils"
)

// Str is a non-owning view over a NUL-terminated byte buffer. It carries no
// length: the extent is found by scanning for the terminator, so every decode
// is O(length) and nothing is cached.
//
// The backing memory must stay valid and unmodified for as long as the view
// (or anything derived from it, see String and Bytes) is in use. That cannot
// be checked across the foreign boundary; it is a caller obligation.
//
// Views are plain values: copying one is free and two views over the same
// pointer compare equal with ==. The zero Str is invalid; construct one
// through StrFromPtr, Literal, or a borrow from String or CString.
type Str struct {
	ptr *byte
}

// StrFromPtr reinterprets a raw foreign pointer as a Str. The pointer must be
// non-nil, NUL-terminated within valid memory, and must outlive the view.
// None of that is verified beyond the nil check; a nil pointer panics with
// ErrNilPointer rather than producing a view that is undefined to read.
func StrFromPtr(ptr unsafe.Pointer) Str {
	if ptr == nil {
		panic(merry.Wrap(ErrNilPointer, merry.WithValue("func", "StrFromPtr")))
	}
	return Str{ptr: (*byte)(ptr)}
}

// Ptr returns the raw address of the buffer. Identity, no side effects.
func (s Str) Ptr() unsafe.Pointer {
	return unsafe.Pointer(s.ptr)
}

// Len scans to the terminator and returns the byte length of the string, not
// counting the terminator itself.
func (s Str) Len() int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(s.ptr), n)) != 0 {
		n++
	}
	return n
}

// Bytes returns the bytes of the string up to (not including) the terminator.
// The slice aliases the foreign buffer; it is a borrow, not a copy.
func (s Str) Bytes() []byte {
	return unsafe.Slice(s.ptr, s.Len())
}

// String decodes the buffer as UTF-8 and returns a Go string aliasing the
// foreign bytes. LLVM only produces valid UTF-8, so invalid bytes here mean a
// broken contract: String panics with ErrInvalidUTF8 carrying the offset of
// the first bad byte. There is deliberately no recoverable try-decode path.
func (s Str) String() string {
	b := s.Bytes()
	if !utf8.Valid(b) {
		panic(merry.Wrap(ErrInvalidUTF8, merry.WithValue("offset", invalidOffset(b))))
	}
	return stringutils.UnsafeString(b)
}

// Path returns the decoded text for use as a filesystem path. Go paths are
// ordinary strings, so this is the same conversion as String.
func (s Str) Path() string {
	return s.String()
}

// GoString implements %#v for debugging.
func (s Str) GoString() string {
	return "llvmstr.Str(" + strconv.Quote(s.String()) + ")"
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

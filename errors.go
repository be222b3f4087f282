package llvmstr

import "github.com/ansel1/merry/v2"

// Contract-violation errors. Except for ErrEmbeddedNUL returned by
// NewCString, these are never returned: they are panic values, because each
// one indicates a bug in the foreign library or in how the binding was
// called, not a condition a caller is expected to recover from.
var ErrNilPointer = merry.New("nil pointer passed where a C string was expected")
var ErrInvalidUTF8 = merry.New("LLVM string contains invalid UTF-8")
var ErrEmbeddedNUL = merry.New("string contains an embedded NUL byte")
var ErrNoDisposer = merry.New("no dispose function registered")

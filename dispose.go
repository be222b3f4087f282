package llvmstr

import (
	"unsafe"

	"github.com/ansel1/merry/v2"
)

// disposeFn is the foreign library's release entry point for strings it
// allocated. LLVMDisposeMessage in production, a recording stub in tests.
var disposeFn func(unsafe.Pointer)

// RegisterDispose installs fn as the release function used by String.Dispose
// and returns the previously installed one (nil if none). Registration is
// expected to happen once, from an init function, before any String exists;
// it is not synchronized against concurrent Dispose calls.
func RegisterDispose(fn func(unsafe.Pointer)) func(unsafe.Pointer) {
	prev := disposeFn
	disposeFn = fn
	return prev
}

func dispose(ptr unsafe.Pointer) {
	if disposeFn == nil {
		// Silently dropping the pointer would leak the foreign buffer.
		panic(merry.Wrap(ErrNoDisposer, merry.WithValue("ptr", uintptr(ptr))))
	}
	disposeFn(ptr)
}

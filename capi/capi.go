//go:build llvm

// Package capi bridges llvmstr to the real LLVM entry points. It is gated
// behind the llvm build tag so the rest of the module stays buildable and
// testable without an LLVM install; without the tag the stubs in
// capi_none.go apply.
//
// Only the string entry points the shim itself needs are bound here. The
// rest of the C API belongs to the wider binding, not to this package.
package capi

/*
#cgo LDFLAGS: -lLLVM
#include <stdlib.h>

char *LLVMCreateMessage(const char *Message);
void LLVMDisposeMessage(char *Message);
char *LLVMGetDefaultTargetTriple(void);
*/
import "C"

import (
	"unsafe"

	"github.com/go-llvm/llvmstr"
)

func init() {
	llvmstr.RegisterDispose(DisposeMessage)
}

// Available reports whether the binary was built against LLVM.
func Available() bool { return true }

// DisposeMessage releases a string allocated by LLVM. This is the release
// function String.Dispose goes through; calling it directly bypasses the
// exactly-once latch and is only for pointers never wrapped in a String.
func DisposeMessage(ptr unsafe.Pointer) {
	C.LLVMDisposeMessage((*C.char)(ptr))
}

// CreateMessage copies s into an LLVM-allocated buffer and returns it as an
// owned String. The caller must Dispose it.
func CreateMessage(s string) *llvmstr.String {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return llvmstr.StringFromPtr(unsafe.Pointer(C.LLVMCreateMessage(cs)))
}

// DefaultTargetTriple returns the triple LLVM was configured for, as an owned
// String the caller must Dispose.
func DefaultTargetTriple() *llvmstr.String {
	return llvmstr.StringFromPtr(unsafe.Pointer(C.LLVMGetDefaultTargetTriple()))
}

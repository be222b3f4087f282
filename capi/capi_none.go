//go:build !llvm

package capi

import (
	"unsafe"

	"github.com/go-llvm/llvmstr"
)

const errNoLLVM = "llvmstr/capi: binary was built without the llvm build tag"

func Available() bool { return false }

func DisposeMessage(ptr unsafe.Pointer) {
	panic(errNoLLVM)
}

func CreateMessage(s string) *llvmstr.String {
	panic(errNoLLVM)
}

func DefaultTargetTriple() *llvmstr.String {
	panic(errNoLLVM)
}

package llvmstr

import (
	"runtime"
	"unsafe"

	"github.com/ansel1/merry/v2"
	"github.com/lomik/zapwriter"
	"github.com/tevino/abool"
	"go.uber.org/zap"
)

// String wraps a NUL-terminated buffer allocated by LLVM that the wrapper is
// solely responsible for releasing. Dispose hands the pointer back to the
// registered release function exactly once; after that the buffer is gone and
// no view derived from the wrapper may be used.
//
// Go has no scope-exit destructor, so disposal is explicit and deterministic:
//
//	s := llvmstr.StringFromPtr(ptr)
//	defer s.Dispose()
//
// A String must not be copied (it is handed around by pointer and carries a
// vet-visible lock for that reason); transferring the *String transfers
// ownership. Dispose itself is latched, but concurrent reads during a Dispose
// from another goroutine are not safe without external synchronization.
type String struct {
	noCopy   noCopy
	ptr      unsafe.Pointer
	disposed *abool.AtomicBool
}

// StringFromPtr takes ownership of a pointer obtained from an LLVM API
// documented to require LLVMDisposeMessage. No validation is performed beyond
// the nil check; the caller asserts the pointer's origin.
func StringFromPtr(ptr unsafe.Pointer) *String {
	if ptr == nil {
		panic(merry.Wrap(ErrNilPointer, merry.WithValue("func", "StringFromPtr")))
	}
	s := &String{ptr: ptr, disposed: abool.New()}
	if leakTracking.IsSet() {
		runtime.SetFinalizer(s, reportLeak)
	}
	return s
}

// Str borrows the buffer as a non-owning view. The view is only valid until
// Dispose is called.
func (s *String) Str() Str {
	return Str{ptr: (*byte)(s.ptr)}
}

// Ptr returns the raw address of the owned buffer without giving up
// ownership.
func (s *String) Ptr() unsafe.Pointer {
	return s.ptr
}

// String decodes the owned buffer, see Str.String. The returned Go string
// aliases the foreign bytes and must not be retained past Dispose.
func (s *String) String() string {
	return s.Str().String()
}

// Bytes borrows the bytes of the owned buffer, see Str.Bytes.
func (s *String) Bytes() []byte {
	return s.Str().Bytes()
}

// Len returns the byte length of the owned string, see Str.Len.
func (s *String) Len() int {
	return s.Str().Len()
}

// Path returns the decoded text for use as a filesystem path.
func (s *String) Path() string {
	return s.Str().Path()
}

// GoString implements %#v for debugging.
func (s *String) GoString() string {
	return s.Str().GoString()
}

// Dispose releases the buffer through the registered release function. The
// first call releases; every later call is a no-op, so a defer'd Dispose and
// an explicit early one do not double-free.
func (s *String) Dispose() {
	if !s.disposed.SetToIf(false, true) {
		return
	}
	runtime.SetFinalizer(s, nil)
	dispose(s.ptr)
}

// Disposed reports whether the buffer has already been released.
func (s *String) Disposed() bool {
	return s.disposed.IsSet()
}

// leakTracking arms a finalizer on every String created afterwards. The
// finalizer never frees the buffer (the foreign allocator is invisible to the
// collector and release order would be nondeterministic); it only reports the
// leak.
var leakTracking = abool.New()

// TrackLeaks enables leak reporting for Strings created after the call: a
// String collected without Dispose having been called logs a warning with the
// leaked pointer. Intended for tests and debugging builds; off by default.
func TrackLeaks() {
	leakTracking.Set()
}

var leakLog = func() *zap.Logger { return zapwriter.Logger("llvmstr") }

func reportLeak(s *String) {
	if s.disposed.IsSet() {
		return
	}
	leakLog().Warn("owned LLVM string was never disposed",
		zap.Uintptr("ptr", uintptr(s.ptr)),
		zap.Int("len", s.Len()),
	)
}

// noCopy makes `go vet -copylocks` flag value copies of String.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

package llvmstr

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type disposeRecorder struct {
	calls int
	last  unsafe.Pointer
}

func (d *disposeRecorder) dispose(ptr unsafe.Pointer) {
	d.calls++
	d.last = ptr
}

func (d *disposeRecorder) install(t *testing.T) {
	t.Helper()
	prev := RegisterDispose(d.dispose)
	t.Cleanup(func() { RegisterDispose(prev) })
}

func TestStringDisposeExactlyOnce(t *testing.T) {
	rec := &disposeRecorder{}
	rec.install(t)

	b := cbuf("owned by llvm")
	ptr := unsafe.Pointer(&b[0])

	s := StringFromPtr(ptr)
	require.Equal(t, "owned by llvm", s.String())
	require.False(t, s.Disposed())

	s.Dispose()
	s.Dispose()
	s.Dispose()

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, ptr, rec.last)
	assert.True(t, s.Disposed())
}

// ownership transfer: the receiver disposes, the sender's deferred Dispose
// must not release a second time
func TestStringDisposeAfterHandoff(t *testing.T) {
	rec := &disposeRecorder{}
	rec.install(t)

	b := cbuf("handed off")
	s := StringFromPtr(unsafe.Pointer(&b[0]))

	consume := func(owned *String) {
		defer owned.Dispose()
		_ = owned.String()
	}

	func() {
		defer s.Dispose()
		consume(s)
	}()

	assert.Equal(t, 1, rec.calls)
}

func TestStringBorrowedViewEquivalence(t *testing.T) {
	rec := &disposeRecorder{}
	rec.install(t)

	b := cbuf("two paths, one buffer")
	ptr := unsafe.Pointer(&b[0])

	owned := StringFromPtr(ptr)
	defer owned.Dispose()
	direct := StrFromPtr(ptr)

	assert.Equal(t, direct, owned.Str())
	assert.Equal(t, direct.String(), owned.String())
	assert.Equal(t, direct.Len(), owned.Len())
	assert.Equal(t, direct.Ptr(), owned.Ptr())
	assert.Equal(t, direct.GoString(), owned.GoString())
}

func TestStringFromPtrNil(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, ErrNilPointer))
	}()
	StringFromPtr(nil)
}

func TestStringDisposeWithoutDisposer(t *testing.T) {
	prev := RegisterDispose(nil)
	t.Cleanup(func() { RegisterDispose(prev) })

	b := cbuf("nobody frees me")
	s := StringFromPtr(unsafe.Pointer(&b[0]))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, ErrNoDisposer))
	}()
	s.Dispose()
}

func TestLeakReport(t *testing.T) {
	rec := &disposeRecorder{}
	rec.install(t)

	core, logs := observer.New(zap.WarnLevel)
	prevLog := leakLog
	leakLog = func() *zap.Logger { return zap.New(core) }
	t.Cleanup(func() { leakLog = prevLog })

	b := cbuf("leaked")
	s := StringFromPtr(unsafe.Pointer(&b[0]))

	reportLeak(s)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "owned LLVM string was never disposed", entry.Message)
	assert.Equal(t, int64(6), entry.ContextMap()["len"])

	// once disposed there is nothing to report
	s.Dispose()
	reportLeak(s)
	assert.Equal(t, 1, logs.Len())
}

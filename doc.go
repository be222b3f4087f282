// Package llvmstr provides borrowed and owned wrappers for NUL-terminated
// C strings crossing the LLVM C API boundary.
//
// Str is a non-owning view over a buffer whose memory is owned elsewhere:
// by LLVM itself, by an owning String, or by Go-side storage (Literal,
// CString). String additionally holds sole responsibility for releasing its
// buffer through the registered dispose function, exactly once.
//
// The dispose function is the foreign library's LLVMDisposeMessage entry
// point; the capi subpackage registers it when built with the llvm tag.
// Nothing here validates foreign pointers: the usual C contract applies and
// violating it (nil pointers aside) is undefined behavior, not an error the
// caller can branch on.
package llvmstr

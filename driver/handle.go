package driver

import "sync/atomic"

// Resource handles
//
// These opaque handles represent driver resources. Each driver maintains
// the mapping between handles and actual backend resources. Handles are
// uint64 to accommodate various backend handle sizes and are unique across
// a driver's lifetime; destroyed values are never reissued.

// SwapChainHandle is an opaque handle to a presentation surface.
type SwapChainHandle uint64

// BufferHandle is an opaque handle to a GPU buffer.
type BufferHandle uint64

// TextureHandle is an opaque handle to a GPU texture.
type TextureHandle uint64

// RenderTargetHandle is an opaque handle to an offscreen render target.
type RenderTargetHandle uint64

// ProgramHandle is an opaque handle to a shader program.
type ProgramHandle uint64

// InvalidHandle is the zero value, representing an invalid/null resource.
const InvalidHandle = 0

// HandleAllocator mints unique resource handles for a driver.
// The zero handle is never issued. Safe for concurrent use.
type HandleAllocator struct {
	next atomic.Uint64
}

// NewHandleAllocator creates an allocator whose first handle is 1.
func NewHandleAllocator() *HandleAllocator {
	a := &HandleAllocator{}
	a.next.Store(1)
	return a
}

// Next returns the next unique handle value.
func (a *HandleAllocator) Next() uint64 {
	return a.next.Add(1) - 1
}

// Allocated returns how many handles have been issued so far. A handle h
// was minted by this allocator iff 1 <= h <= Allocated().
func (a *HandleAllocator) Allocated() uint64 {
	return a.next.Load() - 1
}

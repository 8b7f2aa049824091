package driver

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// Common driver errors.
var (
	// ErrTerminated is returned by every operation invoked after Terminate.
	ErrTerminated = errors.New("driver: terminated")

	// ErrInvalidHandle is returned when an operation references a handle
	// that was never created or has already been destroyed.
	ErrInvalidHandle = errors.New("driver: invalid handle")
)

// Capabilities describes what a driver's backend can do.
// Queries on a no-op driver report benign defaults rather than failing.
type Capabilities struct {
	// Backend is the backend identifier (e.g., "noop", "headless").
	Backend string

	// Device is the underlying adapter/device name, or "" when the
	// backend has no device concept.
	Device string

	// Limits are the device limits upper layers size resources against.
	Limits gputypes.Limits
}

// Driver is the interface for backend command-execution engines.
// Each backend supplies its own implementation; callers obtain exactly
// one via backend.Platform.CreateDriver and own it from then on.
//
// Every operation is synchronous. Implementations define their own
// failure conditions, except that all of them return ErrTerminated
// after Terminate.
type Driver interface {
	// Terminate tears the driver down, releasing every resource it still
	// tracks. The driver is unusable afterwards; every later call,
	// Terminate included, fails with ErrTerminated.
	Terminate() error

	// BeginFrame marks the start of a frame. frameID is caller-assigned
	// and monotonically increasing.
	BeginFrame(frameID uint64) error

	// EndFrame marks the end of a frame started with the same frameID.
	EndFrame(frameID uint64) error

	// Flush submits pending work to the backend without waiting.
	Flush() error

	// Finish submits pending work and blocks until the backend is idle.
	Finish() error

	// Tick gives the driver an opportunity to pump completion callbacks.
	// Best-effort; never fails.
	Tick()

	// CreateSwapChain creates a presentation surface for the backend.
	CreateSwapChain(desc SwapChainDescriptor) (SwapChainHandle, error)

	// DestroySwapChain releases a swap chain.
	DestroySwapChain(h SwapChainHandle) error

	// Commit presents the swap chain's current contents.
	Commit(h SwapChainHandle) error

	// CreateBuffer creates a GPU buffer.
	CreateBuffer(desc BufferDescriptor) (BufferHandle, error)

	// DestroyBuffer releases a GPU buffer.
	DestroyBuffer(h BufferHandle) error

	// UpdateBuffer writes data into a buffer at the given byte offset.
	UpdateBuffer(h BufferHandle, offset uint64, data []byte) error

	// CreateTexture creates a GPU texture.
	CreateTexture(desc TextureDescriptor) (TextureHandle, error)

	// DestroyTexture releases a GPU texture.
	DestroyTexture(h TextureHandle) error

	// CreateRenderTarget creates an offscreen render target.
	CreateRenderTarget(desc RenderTargetDescriptor) (RenderTargetHandle, error)

	// DestroyRenderTarget releases a render target.
	DestroyRenderTarget(h RenderTargetHandle) error

	// CreateProgram registers a shader program with the backend.
	CreateProgram(p Program) (ProgramHandle, error)

	// DestroyProgram releases a shader program.
	DestroyProgram(h ProgramHandle) error

	// ReadPixels copies a render target's contents into dst.
	// dst.Data must be sized for dst.Stride * dst.Height bytes.
	ReadPixels(h RenderTargetHandle, dst *PixelBufferDescriptor) error

	// IsTextureFormatSupported reports whether the backend can sample
	// and render the given format.
	IsTextureFormatSupported(format gputypes.TextureFormat) bool

	// Limits returns the device limits for this driver.
	Limits() gputypes.Limits

	// Capabilities returns a summary of the backend behind this driver.
	Capabilities() Capabilities
}

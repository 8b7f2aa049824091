package noop

import (
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gofilament/filament/backend"
	"github.com/gofilament/filament/driver"
)

// counter tracks creates and destroys for one resource class.
type counter struct {
	created   atomic.Uint64
	destroyed atomic.Uint64
}

func (c *counter) outstanding() int {
	return int(c.created.Load()) - int(c.destroyed.Load())
}

// Driver accepts every operation and performs none of them. Handles come
// from a shared allocator, so they are non-zero and strictly increasing
// across all resource classes; per-class counters back Outstanding and
// Created so tests can assert balanced resource usage.
//
// Driver is safe for concurrent use.
type Driver struct {
	handles *driver.HandleAllocator

	swapChains    counter
	buffers       counter
	textures      counter
	renderTargets counter
	programs      counter

	terminated atomic.Bool
}

var _ driver.Driver = (*Driver)(nil)

// NewDriver creates a no-op driver. Most callers obtain one through
// Platform.CreateDriver instead.
func NewDriver() *Driver {
	return &Driver{handles: driver.NewHandleAllocator()}
}

// check rejects operations on a terminated driver.
func (d *Driver) check() error {
	if d.terminated.Load() {
		return driver.ErrTerminated
	}
	return nil
}

// unknown reports whether h was never issued by this driver.
func (d *Driver) unknown(h uint64) bool {
	return h == driver.InvalidHandle || h > d.handles.Allocated()
}

// Terminate shuts the driver down. Every later operation, including a
// second Terminate, fails with driver.ErrTerminated.
func (d *Driver) Terminate() error {
	if d.terminated.Swap(true) {
		return driver.ErrTerminated
	}
	slogger().Info("noop driver terminated", "outstanding", d.Outstanding())
	return nil
}

// BeginFrame marks the start of a frame.
func (d *Driver) BeginFrame(frameID uint64) error { return d.check() }

// EndFrame marks the end of a frame.
func (d *Driver) EndFrame(frameID uint64) error { return d.check() }

// Flush accepts pending work. There is none, so it returns immediately.
func (d *Driver) Flush() error { return d.check() }

// Finish waits for pending work. There is none, so it returns immediately.
func (d *Driver) Finish() error { return d.check() }

// Tick services the driver's internal housekeeping. It does nothing.
func (d *Driver) Tick() {}

// CreateSwapChain mints a swap chain handle.
func (d *Driver) CreateSwapChain(desc driver.SwapChainDescriptor) (driver.SwapChainHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	d.swapChains.created.Add(1)
	return driver.SwapChainHandle(d.handles.Next()), nil
}

// DestroySwapChain releases a swap chain handle. Unknown handles are
// accepted and logged at Debug.
func (d *Driver) DestroySwapChain(h driver.SwapChainHandle) error {
	if err := d.check(); err != nil {
		return err
	}
	if d.unknown(uint64(h)) {
		slogger().Debug("noop destroy of unknown handle", "kind", "swapchain", "handle", uint64(h))
		return nil
	}
	d.swapChains.destroyed.Add(1)
	return nil
}

// Commit presents a swap chain. Nothing is rendered, so nothing shows.
func (d *Driver) Commit(h driver.SwapChainHandle) error { return d.check() }

// CreateBuffer mints a buffer handle.
func (d *Driver) CreateBuffer(desc driver.BufferDescriptor) (driver.BufferHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	d.buffers.created.Add(1)
	return driver.BufferHandle(d.handles.Next()), nil
}

// DestroyBuffer releases a buffer handle.
func (d *Driver) DestroyBuffer(h driver.BufferHandle) error {
	if err := d.check(); err != nil {
		return err
	}
	if d.unknown(uint64(h)) {
		slogger().Debug("noop destroy of unknown handle", "kind", "buffer", "handle", uint64(h))
		return nil
	}
	d.buffers.destroyed.Add(1)
	return nil
}

// UpdateBuffer accepts new buffer contents and discards them.
func (d *Driver) UpdateBuffer(h driver.BufferHandle, offset uint64, data []byte) error {
	return d.check()
}

// CreateTexture mints a texture handle.
func (d *Driver) CreateTexture(desc driver.TextureDescriptor) (driver.TextureHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	d.textures.created.Add(1)
	return driver.TextureHandle(d.handles.Next()), nil
}

// DestroyTexture releases a texture handle.
func (d *Driver) DestroyTexture(h driver.TextureHandle) error {
	if err := d.check(); err != nil {
		return err
	}
	if d.unknown(uint64(h)) {
		slogger().Debug("noop destroy of unknown handle", "kind", "texture", "handle", uint64(h))
		return nil
	}
	d.textures.destroyed.Add(1)
	return nil
}

// CreateRenderTarget mints a render target handle.
func (d *Driver) CreateRenderTarget(desc driver.RenderTargetDescriptor) (driver.RenderTargetHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	d.renderTargets.created.Add(1)
	return driver.RenderTargetHandle(d.handles.Next()), nil
}

// DestroyRenderTarget releases a render target handle.
func (d *Driver) DestroyRenderTarget(h driver.RenderTargetHandle) error {
	if err := d.check(); err != nil {
		return err
	}
	if d.unknown(uint64(h)) {
		slogger().Debug("noop destroy of unknown handle", "kind", "rendertarget", "handle", uint64(h))
		return nil
	}
	d.renderTargets.destroyed.Add(1)
	return nil
}

// CreateProgram mints a program handle. The source is not compiled.
func (d *Driver) CreateProgram(p driver.Program) (driver.ProgramHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	d.programs.created.Add(1)
	return driver.ProgramHandle(d.handles.Next()), nil
}

// DestroyProgram releases a program handle.
func (d *Driver) DestroyProgram(h driver.ProgramHandle) error {
	if err := d.check(); err != nil {
		return err
	}
	if d.unknown(uint64(h)) {
		slogger().Debug("noop destroy of unknown handle", "kind", "program", "handle", uint64(h))
		return nil
	}
	d.programs.destroyed.Add(1)
	return nil
}

// ReadPixels fills dst with zeros, the contents of every no-op render
// target. Malformed descriptors are skipped rather than rejected.
func (d *Driver) ReadPixels(h driver.RenderTargetHandle, dst *driver.PixelBufferDescriptor) error {
	if err := d.check(); err != nil {
		return err
	}
	if dst == nil {
		return nil
	}
	if err := dst.Validate(); err != nil {
		slogger().Debug("noop readPixels skipping malformed descriptor", "err", err)
		return nil
	}
	clear(dst.Data[:dst.Stride*dst.Height])
	return nil
}

// IsTextureFormatSupported reports true for every format.
func (d *Driver) IsTextureFormatSupported(format gputypes.TextureFormat) bool { return true }

// Limits returns the default limits.
func (d *Driver) Limits() gputypes.Limits { return gputypes.DefaultLimits() }

// Capabilities describes the no-op device.
func (d *Driver) Capabilities() driver.Capabilities {
	return driver.Capabilities{
		Backend: backend.BackendNoop,
		Device:  "noop",
		Limits:  gputypes.DefaultLimits(),
	}
}

// Outstanding returns the number of resources created but not yet
// destroyed, summed over all resource classes.
func (d *Driver) Outstanding() int {
	return d.swapChains.outstanding() +
		d.buffers.outstanding() +
		d.textures.outstanding() +
		d.renderTargets.outstanding() +
		d.programs.outstanding()
}

// Created returns the total number of resources ever created.
func (d *Driver) Created() uint64 {
	return d.swapChains.created.Load() +
		d.buffers.created.Load() +
		d.textures.created.Load() +
		d.renderTargets.created.Load() +
		d.programs.created.Load()
}

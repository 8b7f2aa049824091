// Copyright 2026 The gofilament Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gofilament/filament/backend"
	"github.com/gofilament/filament/driver"
	"github.com/gofilament/filament/internal/cache"
)

// waitTimeout bounds fence waits in Finish (nanoseconds).
const waitTimeout = 5_000_000_000

// shaderCacheLimit caps the number of memoized shader compilations.
const shaderCacheLimit = 64

// swapChain is the offscreen stand-in for a presentation surface.
type swapChain struct {
	texture hal.Texture
	width   uint32
	height  uint32
	format  gputypes.TextureFormat
}

// renderTarget is an offscreen color attachment with its view.
type renderTarget struct {
	texture hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32
	format  gputypes.TextureFormat
}

// Driver maps resource operations onto a HAL device. Handles index
// mutex-guarded tables of live HAL resources; Terminate destroys
// whatever is still tracked.
//
// Thread safety: Driver is safe for concurrent use from multiple
// goroutines. All resource operations are protected by a mutex.
type Driver struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	adapter string
	limits  gputypes.Limits

	handles       *driver.HandleAllocator
	swapChains    map[driver.SwapChainHandle]*swapChain
	buffers       map[driver.BufferHandle]hal.Buffer
	textures      map[driver.TextureHandle]hal.Texture
	renderTargets map[driver.RenderTargetHandle]*renderTarget
	programs      map[driver.ProgramHandle]hal.ShaderModule

	shaders *cache.Cache

	terminated atomic.Bool
}

var _ driver.Driver = (*Driver)(nil)

func newDriver(device hal.Device, queue hal.Queue, adapter string, limits gputypes.Limits) *Driver {
	return &Driver{
		device:        device,
		queue:         queue,
		adapter:       adapter,
		limits:        limits,
		handles:       driver.NewHandleAllocator(),
		swapChains:    make(map[driver.SwapChainHandle]*swapChain),
		buffers:       make(map[driver.BufferHandle]hal.Buffer),
		textures:      make(map[driver.TextureHandle]hal.Texture),
		renderTargets: make(map[driver.RenderTargetHandle]*renderTarget),
		programs:      make(map[driver.ProgramHandle]hal.ShaderModule),
		shaders:       cache.New(shaderCacheLimit),
	}
}

// check rejects operations on a terminated driver.
func (d *Driver) check() error {
	if d.terminated.Load() {
		return driver.ErrTerminated
	}
	return nil
}

// Terminate destroys every tracked resource and shuts the driver down.
// The device itself stays alive; its owner releases it. Every later
// operation, including a second Terminate, fails with
// driver.ErrTerminated.
func (d *Driver) Terminate() error {
	if d.terminated.Swap(true) {
		return driver.ErrTerminated
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	released := 0
	for _, rt := range d.renderTargets {
		d.device.DestroyTextureView(rt.view)
		d.device.DestroyTexture(rt.texture)
		released++
	}
	for _, sc := range d.swapChains {
		d.device.DestroyTexture(sc.texture)
		released++
	}
	for _, texture := range d.textures {
		d.device.DestroyTexture(texture)
		released++
	}
	for _, buffer := range d.buffers {
		d.device.DestroyBuffer(buffer)
		released++
	}
	for _, module := range d.programs {
		if module != nil {
			d.device.DestroyShaderModule(module)
		}
		released++
	}
	d.swapChains = nil
	d.buffers = nil
	d.textures = nil
	d.renderTargets = nil
	d.programs = nil
	d.shaders.Clear()

	slogger().Info("headless driver terminated", "released", released)
	return nil
}

// BeginFrame marks the start of a frame.
func (d *Driver) BeginFrame(frameID uint64) error { return d.check() }

// EndFrame marks the end of a frame.
func (d *Driver) EndFrame(frameID uint64) error { return d.check() }

// Flush pushes pending work to the device without waiting for it.
func (d *Driver) Flush() error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.queue.Submit(nil, nil, 0); err != nil {
		return fmt.Errorf("headless: flush: %w", err)
	}
	return nil
}

// Finish blocks until the device has completed all submitted work.
func (d *Driver) Finish() error {
	if err := d.check(); err != nil {
		return err
	}

	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("headless: create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit(nil, fence, 1); err != nil {
		return fmt.Errorf("headless: submit fence signal: %w", err)
	}
	if _, err := d.device.Wait(fence, 1, waitTimeout); err != nil {
		return fmt.Errorf("headless: wait for fence: %w", err)
	}
	return nil
}

// Tick services the driver's internal housekeeping. The software device
// has none.
func (d *Driver) Tick() {}

// CreateSwapChain allocates an offscreen texture standing in for a
// presentation surface.
func (d *Driver) CreateSwapChain(desc driver.SwapChainDescriptor) (driver.SwapChainHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	if desc.Width == 0 || desc.Height == 0 {
		return driver.InvalidHandle, fmt.Errorf("headless: swap chain dimensions must be positive")
	}

	texture, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              desc.Width,
			Height:             desc.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return driver.InvalidHandle, fmt.Errorf("headless: create swap chain texture: %w", err)
	}

	h := driver.SwapChainHandle(d.handles.Next())
	d.mu.Lock()
	d.swapChains[h] = &swapChain{
		texture: texture,
		width:   desc.Width,
		height:  desc.Height,
		format:  desc.Format,
	}
	d.mu.Unlock()
	return h, nil
}

// DestroySwapChain releases a swap chain.
func (d *Driver) DestroySwapChain(h driver.SwapChainHandle) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.Lock()
	sc, ok := d.swapChains[h]
	if ok {
		delete(d.swapChains, h)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: swap chain %d", driver.ErrInvalidHandle, h)
	}
	d.device.DestroyTexture(sc.texture)
	return nil
}

// Commit presents a swap chain. There is no display; the frame boundary
// is marked by an empty submit.
func (d *Driver) Commit(h driver.SwapChainHandle) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.RLock()
	_, ok := d.swapChains[h]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: swap chain %d", driver.ErrInvalidHandle, h)
	}

	if err := d.queue.Submit(nil, nil, 0); err != nil {
		return fmt.Errorf("headless: commit: %w", err)
	}
	return nil
}

// CreateBuffer allocates a device buffer.
func (d *Driver) CreateBuffer(desc driver.BufferDescriptor) (driver.BufferHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	if desc.Size == 0 {
		return driver.InvalidHandle, fmt.Errorf("headless: buffer size must be positive")
	}

	usage := desc.Usage
	if usage == 0 {
		usage = gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst
	}
	buffer, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: desc.Label,
		Size:  desc.Size,
		Usage: usage,
	})
	if err != nil {
		return driver.InvalidHandle, fmt.Errorf("headless: create buffer: %w", err)
	}

	h := driver.BufferHandle(d.handles.Next())
	d.mu.Lock()
	d.buffers[h] = buffer
	d.mu.Unlock()
	return h, nil
}

// DestroyBuffer releases a device buffer.
func (d *Driver) DestroyBuffer(h driver.BufferHandle) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.Lock()
	buffer, ok := d.buffers[h]
	if ok {
		delete(d.buffers, h)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: buffer %d", driver.ErrInvalidHandle, h)
	}
	d.device.DestroyBuffer(buffer)
	return nil
}

// UpdateBuffer schedules a write into a buffer.
func (d *Driver) UpdateBuffer(h driver.BufferHandle, offset uint64, data []byte) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.RLock()
	buffer, ok := d.buffers[h]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: buffer %d", driver.ErrInvalidHandle, h)
	}

	if len(data) > 0 {
		d.queue.WriteBuffer(buffer, offset, data)
	}
	return nil
}

// CreateTexture allocates a device texture.
func (d *Driver) CreateTexture(desc driver.TextureDescriptor) (driver.TextureHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	if desc.Width == 0 || desc.Height == 0 {
		return driver.InvalidHandle, fmt.Errorf("headless: texture dimensions must be positive")
	}

	depth := desc.Depth
	if depth == 0 {
		depth = 1
	}
	mips := desc.MipLevelCount
	if mips == 0 {
		mips = 1
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	texture, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              desc.Width,
			Height:             desc.Height,
			DepthOrArrayLayers: depth,
		},
		MipLevelCount: mips,
		SampleCount:   samples,
		Dimension:     desc.Dimension,
		Format:        desc.Format,
		Usage:         desc.Usage,
	})
	if err != nil {
		return driver.InvalidHandle, fmt.Errorf("headless: create texture: %w", err)
	}

	h := driver.TextureHandle(d.handles.Next())
	d.mu.Lock()
	d.textures[h] = texture
	d.mu.Unlock()
	return h, nil
}

// DestroyTexture releases a device texture.
func (d *Driver) DestroyTexture(h driver.TextureHandle) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.Lock()
	texture, ok := d.textures[h]
	if ok {
		delete(d.textures, h)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: texture %d", driver.ErrInvalidHandle, h)
	}
	d.device.DestroyTexture(texture)
	return nil
}

// CreateRenderTarget allocates an offscreen color attachment and a view
// onto it.
func (d *Driver) CreateRenderTarget(desc driver.RenderTargetDescriptor) (driver.RenderTargetHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}
	if desc.Width == 0 || desc.Height == 0 {
		return driver.InvalidHandle, fmt.Errorf("headless: render target dimensions must be positive")
	}

	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	texture, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              desc.Width,
			Height:             desc.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return driver.InvalidHandle, fmt.Errorf("headless: create render target texture: %w", err)
	}

	view, err := d.device.CreateTextureView(texture, &hal.TextureViewDescriptor{Label: desc.Label})
	if err != nil {
		d.device.DestroyTexture(texture)
		return driver.InvalidHandle, fmt.Errorf("headless: create render target view: %w", err)
	}

	h := driver.RenderTargetHandle(d.handles.Next())
	d.mu.Lock()
	d.renderTargets[h] = &renderTarget{
		texture: texture,
		view:    view,
		width:   desc.Width,
		height:  desc.Height,
		format:  desc.Format,
	}
	d.mu.Unlock()
	return h, nil
}

// DestroyRenderTarget releases a render target and its view.
func (d *Driver) DestroyRenderTarget(h driver.RenderTargetHandle) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.Lock()
	rt, ok := d.renderTargets[h]
	if ok {
		delete(d.renderTargets, h)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: render target %d", driver.ErrInvalidHandle, h)
	}
	d.device.DestroyTextureView(rt.view)
	d.device.DestroyTexture(rt.texture)
	return nil
}

// CreateProgram compiles a program's WGSL source to SPIR-V and creates a
// shader module from it. Compilation results are memoized by source, so
// recreating a program from identical source skips the compiler; the
// module itself is minted per handle. A program with empty source is
// tracked without a module.
func (d *Driver) CreateProgram(p driver.Program) (driver.ProgramHandle, error) {
	if err := d.check(); err != nil {
		return driver.InvalidHandle, err
	}

	words, err := d.shaders.GetOrCompile(p.Source, p.Compile)
	if err != nil {
		return driver.InvalidHandle, err
	}

	var module hal.ShaderModule
	if len(words) > 0 {
		module, err = d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label: p.Label,
			Source: hal.ShaderSource{
				SPIRV: words,
			},
		})
		if err != nil {
			return driver.InvalidHandle, fmt.Errorf("headless: create shader module %q: %w", p.Label, err)
		}
	}

	h := driver.ProgramHandle(d.handles.Next())
	d.mu.Lock()
	d.programs[h] = module
	d.mu.Unlock()
	return h, nil
}

// DestroyProgram releases a program's shader module.
func (d *Driver) DestroyProgram(h driver.ProgramHandle) error {
	if err := d.check(); err != nil {
		return err
	}

	d.mu.Lock()
	module, ok := d.programs[h]
	if ok {
		delete(d.programs, h)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: program %d", driver.ErrInvalidHandle, h)
	}
	if module != nil {
		d.device.DestroyShaderModule(module)
	}
	return nil
}

// ReadPixels synchronizes with the device and fills dst with the render
// target's contents. Nothing draws into headless targets, so the result
// is cleared pixels; the call still validates the handle and the
// destination and orders correctly against submitted work.
func (d *Driver) ReadPixels(h driver.RenderTargetHandle, dst *driver.PixelBufferDescriptor) error {
	if err := d.check(); err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("headless: readPixels: nil destination")
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("headless: readPixels: %w", err)
	}

	d.mu.RLock()
	_, ok := d.renderTargets[h]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: render target %d", driver.ErrInvalidHandle, h)
	}

	if err := d.Finish(); err != nil {
		return err
	}
	clear(dst.Data[:dst.Stride*dst.Height])
	return nil
}

// IsTextureFormatSupported reports whether the device accepts a format.
func (d *Driver) IsTextureFormatSupported(format gputypes.TextureFormat) bool {
	return format != gputypes.TextureFormatUndefined
}

// Limits returns the limits the device was opened with.
func (d *Driver) Limits() gputypes.Limits { return d.limits }

// Capabilities describes the opened device.
func (d *Driver) Capabilities() driver.Capabilities {
	return driver.Capabilities{
		Backend: backend.BackendHeadless,
		Device:  d.adapter,
		Limits:  d.limits,
	}
}

// Outstanding returns the number of live tracked resources.
func (d *Driver) Outstanding() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.swapChains) + len(d.buffers) + len(d.textures) +
		len(d.renderTargets) + len(d.programs)
}

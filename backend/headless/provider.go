// Copyright 2026 The gofilament Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Provider exposes a headless device through the gpucontext sharing
// surface, so components that accept a gpucontext.DeviceProvider (or
// probe for raw HAL handles) can run against it. The platform keeps
// ownership of the device: destroying it through the provider is a
// no-op.
type Provider struct {
	device  hal.Device
	queue   hal.Queue
	adapter string
}

var _ gpucontext.DeviceProvider = (*Provider)(nil)

// NewProvider wraps a device and queue for sharing.
func NewProvider(device hal.Device, queue hal.Queue, adapter string) *Provider {
	return &Provider{device: device, queue: queue, adapter: adapter}
}

// providerDevice adapts hal.Device to gpucontext.Device for a borrowed
// device.
type providerDevice struct {
	device hal.Device
}

// Poll is a no-op; the software device completes work on submit.
func (d *providerDevice) Poll(wait bool) {}

// Destroy is a no-op; the owning platform releases the device.
func (d *providerDevice) Destroy() {}

// providerAdapter carries the adapter name for consumers that ask.
type providerAdapter struct {
	name string
}

func (a providerAdapter) Name() string { return a.name }

// Device returns the shared device behind the gpucontext surface.
func (p *Provider) Device() gpucontext.Device { return &providerDevice{device: p.device} }

// Queue returns the shared queue.
func (p *Provider) Queue() gpucontext.Queue { return p.queue }

// Adapter identifies the adapter the device was opened on.
func (p *Provider) Adapter() gpucontext.Adapter { return providerAdapter{name: p.adapter} }

// SurfaceFormat returns the format headless render targets default to.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// HalDevice exposes the raw HAL device for consumers that drive the HAL
// directly.
func (p *Provider) HalDevice() any { return p.device }

// HalQueue exposes the raw HAL queue.
func (p *Provider) HalQueue() any { return p.queue }

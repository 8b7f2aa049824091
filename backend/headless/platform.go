// Copyright 2026 The gofilament Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides a platform backed by a software HAL device.
// It allocates real GPU-shaped resources (buffers, textures, shader
// modules) without a display or a hardware adapter, which makes it the
// backend of choice for CI and for exercising engine logic end to end.
package headless

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gofilament/filament/backend"
	"github.com/gofilament/filament/driver"
	"github.com/gofilament/filament/internal/hostinfo"
)

func init() {
	backend.Register(backend.BackendHeadless, func() backend.Platform {
		return NewPlatform()
	})
}

// Platform opens a software HAL device on CreateDriver, or adopts one
// from a shared context that exposes HAL handles. The platform owns the
// device it opens; adopted devices stay owned by the caller and are left
// alive on Destroy.
type Platform struct {
	mu            sync.Mutex
	driverCreated bool

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	owned    bool
	adapter  string
}

var _ backend.Platform = (*Platform)(nil)

// NewPlatform creates a headless platform. No device is opened until
// CreateDriver.
func NewPlatform() *Platform {
	return &Platform{}
}

// Name returns the registry name of this platform.
func (p *Platform) Name() string { return backend.BackendHeadless }

// OSVersion reports the host kernel version, or 0 when the host does not
// expose one.
func (p *Platform) OSVersion() int { return hostinfo.Version() }

// CreateDriver opens the platform's device and returns a driver for it.
//
// With a nil sharedContext the platform opens its own software device.
// A non-nil sharedContext must expose HAL handles (HalDevice/HalQueue
// accessors); any other shape fails with backend.ErrContextIncompatible.
// A second call fails with backend.ErrDriverAlreadyCreated. A failed
// call does not count against that limit.
func (p *Platform) CreateDriver(sharedContext any) (driver.Driver, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.driverCreated {
		return nil, backend.ErrDriverAlreadyCreated
	}

	if sharedContext != nil {
		device, queue, ok := backend.AsHALHandles(sharedContext)
		if !ok {
			return nil, fmt.Errorf("%w: %T does not expose HAL handles", backend.ErrContextIncompatible, sharedContext)
		}
		p.device = device
		p.queue = queue
		p.owned = false
		p.adapter = "external"
		slogger().Info("headless driver adopting shared device")
	} else if err := p.openDevice(); err != nil {
		return nil, err
	}

	p.driverCreated = true
	return newDriver(p.device, p.queue, p.adapter, gputypes.DefaultLimits()), nil
}

// openDevice creates a standalone software device. Called with mu held.
func (p *Platform) openDevice() error {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return fmt.Errorf("%w: create instance: %v", backend.ErrBackendUnavailable, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("%w: no adapters found", backend.ErrBackendUnavailable)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("%w: open device: %v", backend.ErrBackendUnavailable, err)
	}

	p.instance = instance
	p.device = openDev.Device
	p.queue = openDev.Queue
	p.owned = true
	p.adapter = selected.Info.Name
	if p.adapter == "" {
		p.adapter = "software"
	}
	slogger().Info("headless device opened", "adapter", p.adapter)
	return nil
}

// Provider exposes the platform's device for sharing with other
// components. Returns nil before CreateDriver has opened or adopted one.
func (p *Platform) Provider() *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.device == nil {
		return nil
	}
	return NewProvider(p.device, p.queue, p.adapter)
}

// Destroy releases the device and instance if the platform owns them.
// Adopted devices are left alive. Safe to call any number of times,
// before or after CreateDriver; the driver must be terminated first.
func (p *Platform) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.owned {
		if p.device != nil {
			p.device.Destroy()
		}
		if p.instance != nil {
			p.instance.Destroy()
		}
	}
	p.instance = nil
	p.device = nil
	p.queue = nil
	p.owned = false
}

// SetLogger routes this package's log output to l. Pass nil to silence.
func (p *Platform) SetLogger(l *slog.Logger) { setLogger(l) }

// Copyright 2026 The gofilament Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gofilament/filament/backend"
	"github.com/gofilament/filament/driver"
	"github.com/gofilament/filament/internal/hostinfo"
)

// createNoopDevice creates a noop device and queue standing in for a
// host-owned graphics context. Returns the device, queue, and a cleanup
// function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// hostContext mimics a host application sharing its HAL handles.
type hostContext struct {
	device hal.Device
	queue  hal.Queue
}

func (c *hostContext) HalDevice() any { return c.device }
func (c *hostContext) HalQueue() any  { return c.queue }

func TestPlatformRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendHeadless) {
		t.Fatal("headless platform did not self-register")
	}
	p := backend.Get(backend.BackendHeadless)
	if p == nil {
		t.Fatal("backend.Get(headless) returned nil")
	}
	if got := p.Name(); got != backend.BackendHeadless {
		t.Errorf("Name() = %q, want %q", got, backend.BackendHeadless)
	}
}

func TestOSVersionMatchesHost(t *testing.T) {
	p := NewPlatform()
	defer p.Destroy()

	want := hostinfo.Version()
	for i := 0; i < 3; i++ {
		if got := p.OSVersion(); got != want {
			t.Fatalf("OSVersion() call %d = %d, want %d", i+1, got, want)
		}
	}
}

func TestCreateDriverOwnDevice(t *testing.T) {
	p := NewPlatform()
	defer p.Destroy()

	d, err := p.CreateDriver(nil)
	if err != nil {
		t.Fatalf("CreateDriver failed: %v", err)
	}

	caps := d.Capabilities()
	if caps.Backend != backend.BackendHeadless {
		t.Errorf("Capabilities().Backend = %q, want %q", caps.Backend, backend.BackendHeadless)
	}
	if caps.Limits.MaxBufferSize == 0 {
		t.Error("Capabilities().Limits.MaxBufferSize = 0, want default limits")
	}
	if err := d.Terminate(); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
}

func TestCreateDriverSecondCallFails(t *testing.T) {
	p := NewPlatform()
	defer p.Destroy()

	d, err := p.CreateDriver(nil)
	if err != nil {
		t.Fatalf("first CreateDriver failed: %v", err)
	}
	defer d.Terminate()

	if _, err := p.CreateDriver(nil); !errors.Is(err, backend.ErrDriverAlreadyCreated) {
		t.Errorf("second CreateDriver error = %v, want ErrDriverAlreadyCreated", err)
	}
}

func TestCreateDriverIncompatibleContext(t *testing.T) {
	p := NewPlatform()
	defer p.Destroy()

	tests := []struct {
		name string
		ctx  any
	}{
		{"plain int", 42},
		{"string", "opaque"},
		{"dangling pointer value", uintptr(0xdeadbeef)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.CreateDriver(tt.ctx); !errors.Is(err, backend.ErrContextIncompatible) {
				t.Errorf("CreateDriver(%v) error = %v, want ErrContextIncompatible", tt.ctx, err)
			}
		})
	}

	// A rejected context does not consume the one-driver limit.
	d, err := p.CreateDriver(nil)
	if err != nil {
		t.Fatalf("CreateDriver(nil) after rejection failed: %v", err)
	}
	d.Terminate()
}

func TestCreateDriverAdoptsSharedContext(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := NewPlatform()
	d, err := p.CreateDriver(&hostContext{device: device, queue: queue})
	if err != nil {
		t.Fatalf("CreateDriver(shared) failed: %v", err)
	}

	buf, err := d.CreateBuffer(driver.BufferDescriptor{Label: "shared", Size: 64})
	if err != nil {
		t.Fatalf("CreateBuffer on adopted device failed: %v", err)
	}
	if err := d.DestroyBuffer(buf); err != nil {
		t.Errorf("DestroyBuffer failed: %v", err)
	}
	if err := d.Terminate(); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
	p.Destroy()

	// The adopted device belongs to the host and must survive the
	// platform's teardown.
	probe, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "probe",
		Size:  16,
		Usage: gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		t.Fatalf("adopted device unusable after platform destroy: %v", err)
	}
	device.DestroyBuffer(probe)
}

func TestProviderSharing(t *testing.T) {
	p := NewPlatform()
	defer p.Destroy()

	if prov := p.Provider(); prov != nil {
		t.Fatal("Provider() before CreateDriver should be nil")
	}

	d, err := p.CreateDriver(nil)
	if err != nil {
		t.Fatalf("CreateDriver failed: %v", err)
	}
	defer d.Terminate()

	prov := p.Provider()
	if prov == nil {
		t.Fatal("Provider() after CreateDriver returned nil")
	}
	if prov.SurfaceFormat() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want BGRA8Unorm", prov.SurfaceFormat())
	}
	if prov.Device() == nil {
		t.Error("Provider().Device() returned nil")
	}
	if _, _, ok := backend.AsHALHandles(prov); !ok {
		t.Error("provider does not expose HAL handles")
	}
	if _, ok := backend.AsDeviceProvider(prov); !ok {
		t.Error("provider is not a DeviceProvider")
	}

	// A second platform can adopt the provider as its shared context.
	p2 := NewPlatform()
	d2, err := p2.CreateDriver(prov)
	if err != nil {
		t.Fatalf("second platform failed to adopt provider: %v", err)
	}
	buf, err := d2.CreateBuffer(driver.BufferDescriptor{Size: 32})
	if err != nil {
		t.Fatalf("CreateBuffer on adopted provider device failed: %v", err)
	}
	if err := d2.DestroyBuffer(buf); err != nil {
		t.Errorf("DestroyBuffer failed: %v", err)
	}
	if err := d2.Terminate(); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
	p2.Destroy()
}

func TestDestroyIsIdempotent(t *testing.T) {
	// Before CreateDriver.
	p := NewPlatform()
	p.Destroy()
	p.Destroy()

	// After CreateDriver.
	p = NewPlatform()
	d, err := p.CreateDriver(nil)
	if err != nil {
		t.Fatalf("CreateDriver failed: %v", err)
	}
	if err := d.Terminate(); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
	p.Destroy()
	p.Destroy()
}

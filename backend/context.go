package backend

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// Shared-context adoption helpers.
//
// A shared context is an opaque handle a caller passes to CreateDriver so
// the backend attaches to an existing graphics context instead of creating
// its own. The handle is borrowed for the duration of the call. These
// helpers let concrete platforms probe a context's shape without ever
// dereferencing values they do not recognize: a handle of unknown shape is
// simply reported as not adoptable.

// halHandleProvider is implemented by shared contexts that expose raw HAL
// handles. The accessors return any so providers need not import hal.
type halHandleProvider interface {
	HalDevice() any
	HalQueue() any
}

// AsDeviceProvider reports whether a shared context is a
// gpucontext.DeviceProvider, the device-sharing surface used across the
// gogpu ecosystem. Returns (nil, false) for nil or any other shape.
func AsDeviceProvider(sharedContext any) (gpucontext.DeviceProvider, bool) {
	if sharedContext == nil {
		return nil, false
	}
	p, ok := sharedContext.(gpucontext.DeviceProvider)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// AsHALHandles extracts a live hal.Device and hal.Queue from a shared
// context that exposes HalDevice()/HalQueue() accessors. Returns
// (nil, nil, false) when the context is nil, does not expose the
// accessors, or the accessors return values of any other type.
func AsHALHandles(sharedContext any) (hal.Device, hal.Queue, bool) {
	if sharedContext == nil {
		return nil, nil, false
	}
	hp, ok := sharedContext.(halHandleProvider)
	if !ok {
		return nil, nil, false
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, false
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, false
	}
	return device, queue, true
}

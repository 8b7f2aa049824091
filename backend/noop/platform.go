// Package noop provides a platform whose driver accepts every operation
// and touches no GPU. It exists so engine code can run anywhere:
// operations are accepted and accounted for, then discarded.
package noop

import (
	"log/slog"
	"sync/atomic"

	"github.com/gofilament/filament/backend"
	"github.com/gofilament/filament/driver"
)

func init() {
	backend.Register(backend.BackendNoop, func() backend.Platform {
		return NewPlatform()
	})
}

// Platform is the no-op backend.Platform. The zero value is ready to use.
//
// Shared contexts passed to CreateDriver are ignored entirely: the handle
// is never dereferenced, so a stale or dangling value is harmless.
type Platform struct {
	driverCreated atomic.Bool
}

// NewPlatform creates a no-op platform.
func NewPlatform() *Platform {
	return &Platform{}
}

// Name returns the registry name of this platform.
func (p *Platform) Name() string { return backend.BackendNoop }

// OSVersion reports 0: the no-op platform has no operating system
// dependency worth distinguishing.
func (p *Platform) OSVersion() int { return 0 }

// CreateDriver returns a driver that accepts every operation. The shared
// context is ignored without being inspected. A second call fails with
// backend.ErrDriverAlreadyCreated.
func (p *Platform) CreateDriver(sharedContext any) (driver.Driver, error) {
	if p.driverCreated.Swap(true) {
		return nil, backend.ErrDriverAlreadyCreated
	}
	if sharedContext != nil {
		slogger().Debug("noop platform ignoring shared context")
	}
	slogger().Info("noop driver created")
	return NewDriver(), nil
}

// Destroy releases the platform. It holds no resources, so this is a
// no-op and safe to call any number of times, before or after
// CreateDriver.
func (p *Platform) Destroy() {}

// SetLogger routes this package's log output to l. Pass nil to silence.
func (p *Platform) SetLogger(l *slog.Logger) { setLogger(l) }

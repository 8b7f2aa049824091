package filament

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gofilament/filament/backend"
	"github.com/gofilament/filament/driver"
)

// ErrDestroyed is returned by operations on an engine after Destroy.
var ErrDestroyed = errors.New("filament: engine destroyed")

// Engine ties a platform and its driver together and drives the frame
// loop. Create one with New, render with RenderFrame, and release
// everything with Destroy.
//
// An Engine is safe for use from a single goroutine; guard it yourself
// if several goroutines share one.
type Engine struct {
	mu            sync.Mutex
	platform      backend.Platform
	ownedPlatform bool
	drv           driver.Driver
	swapChain     driver.SwapChainHandle
	frameWidth    uint32
	frameHeight   uint32
	frame         uint64
	destroyed     bool
}

// New selects a platform, creates its driver, and returns an engine
// ready to render. Platform resolution order: WithPlatform, then
// WithBackend, then the best registered platform. Errors from platform
// selection wrap backend.ErrBackendUnavailable.
func New(opts ...Option) (*Engine, error) {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger != nil {
		SetLogger(options.logger)
	}

	platform := options.platform
	owned := false
	switch {
	case platform != nil:
		// Caller keeps ownership of an explicit platform.
	case options.backendName != "":
		platform = backend.Get(options.backendName)
		if platform == nil {
			return nil, fmt.Errorf("%w: no %q platform registered", backend.ErrBackendUnavailable, options.backendName)
		}
		owned = true
	default:
		platform = backend.Default()
		if platform == nil {
			return nil, fmt.Errorf("%w: no platform registered", backend.ErrBackendUnavailable)
		}
		owned = true
	}

	propagateLogger(platform, Logger())
	Logger().Info("platform selected",
		"backend", platform.Name(),
		"osVersion", platform.OSVersion())

	drv, err := platform.CreateDriver(options.sharedContext)
	if err != nil {
		if owned {
			platform.Destroy()
		}
		return nil, fmt.Errorf("filament: create driver: %w", err)
	}

	return &Engine{
		platform:      platform,
		ownedPlatform: owned,
		drv:           drv,
		frameWidth:    options.frameWidth,
		frameHeight:   options.frameHeight,
	}, nil
}

// Platform returns the platform the engine runs on.
func (e *Engine) Platform() backend.Platform { return e.platform }

// Driver returns the engine's driver. Callers may create and destroy
// resources on it directly alongside the frame loop.
func (e *Engine) Driver() driver.Driver { return e.drv }

// Frame returns the number of frames rendered so far.
func (e *Engine) Frame() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// RenderFrame runs one frame through the driver: begin, flush, commit
// the default swap chain, end. The swap chain is created lazily on the
// first frame with the dimensions from WithFrameSize.
func (e *Engine) RenderFrame() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}

	if e.swapChain == driver.InvalidHandle {
		sc, err := e.drv.CreateSwapChain(driver.DefaultSwapChainDescriptor(e.frameWidth, e.frameHeight))
		if err != nil {
			return fmt.Errorf("filament: create default swap chain: %w", err)
		}
		e.swapChain = sc
	}

	frame := e.frame + 1
	if err := e.drv.BeginFrame(frame); err != nil {
		return err
	}
	if err := e.drv.Flush(); err != nil {
		return err
	}
	if err := e.drv.Commit(e.swapChain); err != nil {
		return err
	}
	if err := e.drv.EndFrame(frame); err != nil {
		return err
	}
	e.frame = frame
	Logger().Debug("frame rendered", "frame", frame)
	return nil
}

// Destroy terminates the driver and, when the engine selected the
// platform itself, destroys the platform as well. Safe to call more
// than once; calls after the first return nil.
func (e *Engine) Destroy() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return nil
	}
	e.destroyed = true

	var firstErr error
	if e.swapChain != driver.InvalidHandle {
		if err := e.drv.DestroySwapChain(e.swapChain); err != nil {
			Logger().Warn("destroy default swap chain", "error", err)
			firstErr = err
		}
		e.swapChain = driver.InvalidHandle
	}
	if err := e.drv.Terminate(); err != nil && firstErr == nil {
		firstErr = err
	}
	if e.ownedPlatform {
		e.platform.Destroy()
	}
	Logger().Info("engine destroyed", "frames", e.frame)
	return firstErr
}

package filament

import (
	"log/slog"

	"github.com/gofilament/filament/backend"
)

// engineOptions collects the settings accepted by New.
type engineOptions struct {
	platform      backend.Platform
	backendName   string
	sharedContext any
	logger        *slog.Logger
	frameWidth    uint32
	frameHeight   uint32
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		frameWidth:  640,
		frameHeight: 480,
	}
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithPlatform runs the engine on a caller-constructed platform. The
// caller keeps ownership: Destroy terminates the driver but leaves the
// platform for the caller to destroy. Takes precedence over WithBackend.
func WithPlatform(p backend.Platform) Option {
	return func(o *engineOptions) { o.platform = p }
}

// WithBackend selects a registered platform by name (see backend.Register
// and backend.Available). Without this the engine takes the best
// registered platform.
func WithBackend(name string) Option {
	return func(o *engineOptions) { o.backendName = name }
}

// WithSharedContext passes an opaque graphics context to the platform's
// CreateDriver. Which shapes a platform adopts is its own affair; the
// noop platform ignores the value entirely.
func WithSharedContext(ctx any) Option {
	return func(o *engineOptions) { o.sharedContext = ctx }
}

// WithLogger configures logging before the engine comes up, equivalent
// to calling SetLogger first.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// WithFrameSize sets the dimensions of the engine's default swap chain.
// The default is 640x480.
func WithFrameSize(width, height uint32) Option {
	return func(o *engineOptions) {
		o.frameWidth = width
		o.frameHeight = height
	}
}

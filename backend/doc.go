// Package backend provides a pluggable platform abstraction for filament.
//
// A Platform ties the engine to a concrete graphics stack on the host.
// Each platform knows how to probe the operating system and how to create
// the single Driver that executes resource and frame operations.
//
// # Platform Registration
//
// Platforms are registered via init() functions and selected at runtime.
// Importing a platform package registers it:
//
//	import _ "github.com/gofilament/filament/backend/noop"
//
// # Platform Selection
//
// Use Default() to get the best available platform, or Get() to request
// a specific platform by name:
//
//	// Get the default (best available) platform
//	p := backend.Default()
//
//	// Or request a specific platform
//	p := backend.Get(backend.BackendHeadless)
//
// # Usage
//
// A platform creates at most one driver; the caller owns both:
//
//	p := backend.MustDefault()
//	defer p.Destroy()
//
//	drv, err := p.CreateDriver(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer drv.Terminate()
//
// # Available Platforms
//
// - "headless": drives a software HAL device with full resource tracking
// - "noop": accepts every operation and touches no GPU (always available)
package backend

// Package filament is a small rendering engine core built around
// swappable driver backends.
//
// # Overview
//
// filament separates engine logic from graphics API specifics with two
// contracts: Platform, which brings a backend up and tears it down, and
// Driver, which carries the backend's operations. Platforms register
// themselves by name; an Engine selects one, asks it for a driver
// exactly once, and drives all frames and resources through that driver.
//
// # Quick Start
//
//	import (
//		"github.com/gofilament/filament"
//		_ "github.com/gofilament/filament/backend/noop"
//	)
//
//	engine, err := filament.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer engine.Destroy()
//
//	if err := engine.RenderFrame(); err != nil {
//		log.Fatal(err)
//	}
//
// # Backends
//
// Two platforms ship with the module:
//   - headless: opens a software HAL device; real resource tables, no display
//   - noop: accepts every operation and touches nothing; runs anywhere
//
// Backend packages register themselves on blank import, in the manner of
// database/sql drivers. Hosts that already own a graphics context can
// hand it to the engine with WithSharedContext; each platform documents
// the context shapes it adopts.
//
// # Logging
//
// filament produces no log output by default. Call SetLogger (or pass
// WithLogger) before creating an engine to enable it.
package filament

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

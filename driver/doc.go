// Package driver defines the command-execution interface that rendering
// backends implement.
//
// A [Driver] is the live, backend-bound execution engine: it owns resource
// creation and destruction, frame sequencing, and presentation. Upper layers
// never construct one directly; they obtain exactly one from a
// backend.Platform and drive it for the remainder of the process.
//
// # Resource Management
//
// Resources are addressed by opaque uint64 handles ([BufferHandle],
// [TextureHandle], etc.). Each driver maintains the mapping between handles
// and whatever its backend uses underneath; handles are minted by a
// [HandleAllocator] and are never reused within a process. The zero value
// ([InvalidHandle]) is never a live resource.
//
// # Lifecycle
//
// All operations are synchronous from the caller's point of view. After
// [Driver.Terminate], every operation fails with [ErrTerminated], a repeat
// Terminate included. The bundled drivers are safe for concurrent use;
// implementations define their own failure conditions beyond these.
//
// # Shaders
//
// [Program] carries WGSL source. Compile validates and lowers it to SPIR-V
// before any driver sees it, so malformed shaders fail at build time rather
// than inside a backend.
package driver

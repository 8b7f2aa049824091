package backend

import (
	"errors"

	"github.com/gofilament/filament/driver"
)

// Common platform errors.
var (
	// ErrBackendUnavailable is returned when a backend cannot be
	// initialized (missing native library, no usable device).
	ErrBackendUnavailable = errors.New("backend: not available")

	// ErrContextIncompatible is returned when a supplied shared context
	// cannot be adopted by the backend.
	ErrContextIncompatible = errors.New("backend: shared context incompatible")

	// ErrDriverAlreadyCreated is returned when CreateDriver is invoked
	// more than once on the same platform instance.
	ErrDriverAlreadyCreated = errors.New("backend: driver already created")
)

// Backend name constants.
const (
	// BackendNoop is the name of the no-op platform. Always available;
	// its driver accepts every operation and performs no GPU work.
	BackendNoop = "noop"

	// BackendHeadless is the name of the headless platform, which drives
	// a software HAL device (gogpu/wgpu hal/noop).
	BackendHeadless = "headless"
)

// Platform is the interface for backend platforms: the factory and
// capability-query object that negotiates which backend a process uses
// and manufactures the corresponding driver.
//
// One platform instance exists per process. The concrete variant is
// selected once at startup (via Get, Default, or direct construction)
// and never switched at runtime; callers hold only this interface.
//
// Platforms must be registered via Register() and are selected via
// Get() or Default().
type Platform interface {
	// Name returns the platform identifier (e.g., "noop", "headless").
	Name() string

	// OSVersion returns a host-OS version identifier used by upper
	// layers for capability gating. Idempotent and side-effect-free;
	// callable any number of times, before or after driver creation.
	// 0 means "no version information available", never a real version.
	OSVersion() int

	// CreateDriver constructs and returns a fully initialized driver
	// bound to this platform's backend. sharedContext, when non-nil, is
	// a caller-supplied native graphics context the backend should adopt
	// instead of allocating its own; it is borrowed for the duration of
	// the call and never retained. When nil, the backend initializes its
	// own context.
	//
	// CreateDriver is called at most once per platform instance; a
	// second call fails with ErrDriverAlreadyCreated. Ownership of the
	// returned driver transfers to the caller; the platform keeps no
	// reference to it.
	CreateDriver(sharedContext any) (driver.Driver, error)

	// Destroy releases platform-level resources acquired outside of
	// CreateDriver. Safe to call before CreateDriver was ever called,
	// after the produced driver has been terminated, and repeatedly.
	Destroy()
}

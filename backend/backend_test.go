package backend

import (
	"testing"

	"github.com/gofilament/filament/driver"
)

// stubPlatform is a minimal Platform for registry tests.
type stubPlatform struct {
	name string
}

func (p *stubPlatform) Name() string   { return p.name }
func (p *stubPlatform) OSVersion() int { return 0 }
func (p *stubPlatform) CreateDriver(sharedContext any) (driver.Driver, error) {
	return nil, ErrBackendUnavailable
}
func (p *stubPlatform) Destroy() {}

// registerStub registers a stub platform under name and removes it when
// the test finishes.
func registerStub(t *testing.T, name string) {
	t.Helper()
	Register(name, func() Platform {
		return &stubPlatform{name: name}
	})
	t.Cleanup(func() { Unregister(name) })
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registerStub(t, "stub")

	if !IsRegistered("stub") {
		t.Error("stub platform should be registered")
	}

	p := Get("stub")
	if p == nil {
		t.Fatal("Get(stub) returned nil")
	}
	if p.Name() != "stub" {
		t.Errorf("Get(stub).Name() = %q, want %q", p.Name(), "stub")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	p := Get("nonexistent")
	if p != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	registerStub(t, "dup")
	replacement := &stubPlatform{name: "replacement"}
	Register("dup", func() Platform { return replacement })

	p := Get("dup")
	if p != replacement {
		t.Error("second Register did not replace the first factory")
	}
}

func TestRegistryAvailable(t *testing.T) {
	registerStub(t, "listed")

	found := false
	for _, name := range Available() {
		if name == "listed" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'listed'")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	registerStub(t, "known")

	if !IsRegistered("known") {
		t.Error("known should be registered")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("temp", func() Platform {
		return &stubPlatform{name: "temp"}
	})

	if !IsRegistered("temp") {
		t.Error("temp should be registered")
	}

	Unregister("temp")

	if IsRegistered("temp") {
		t.Error("temp should be unregistered")
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	registerStub(t, BackendNoop)
	registerStub(t, BackendHeadless)

	p := Default()
	if p == nil {
		t.Fatal("Default() returned nil")
	}
	if p.Name() != BackendHeadless {
		t.Errorf("Default().Name() = %q, want %q", p.Name(), BackendHeadless)
	}

	Unregister(BackendHeadless)

	p = Default()
	if p == nil {
		t.Fatal("Default() returned nil after unregistering headless")
	}
	if p.Name() != BackendNoop {
		t.Errorf("Default().Name() = %q, want %q", p.Name(), BackendNoop)
	}
}

func TestRegistryDefaultFallsBackToAny(t *testing.T) {
	registerStub(t, "custom")

	p := Default()
	if p == nil {
		t.Fatal("Default() returned nil with a registered platform")
	}
	if p.Name() != "custom" {
		t.Errorf("Default().Name() = %q, want %q", p.Name(), "custom")
	}
}

func TestRegistryDefaultEmpty(t *testing.T) {
	if p := Default(); p != nil {
		t.Errorf("Default() on empty registry = %v, want nil", p)
	}
}

func TestMustDefault(t *testing.T) {
	registerStub(t, "present")

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if p := MustDefault(); p == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestMustDefaultPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustDefault() should panic on an empty registry")
		}
	}()
	MustDefault()
}

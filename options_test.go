package filament

import (
	"log/slog"
	"testing"

	"github.com/gofilament/filament/backend"
)

func TestDefaultEngineOptions(t *testing.T) {
	o := defaultEngineOptions()
	if o.frameWidth != 640 || o.frameHeight != 480 {
		t.Errorf("default frame size = %dx%d, want 640x480", o.frameWidth, o.frameHeight)
	}
	if o.platform != nil || o.backendName != "" || o.sharedContext != nil || o.logger != nil {
		t.Error("default options should not carry a platform, backend, context, or logger")
	}
}

func TestOptionsApply(t *testing.T) {
	p := &fakePlatform{}
	ctx := &struct{ handle uintptr }{handle: 42}
	l := slog.Default()

	o := defaultEngineOptions()
	for _, opt := range []Option{
		WithPlatform(p),
		WithBackend("headless"),
		WithSharedContext(ctx),
		WithLogger(l),
		WithFrameSize(1920, 1080),
	} {
		opt(&o)
	}

	if o.platform != backend.Platform(p) {
		t.Error("WithPlatform did not set the platform")
	}
	if o.backendName != "headless" {
		t.Errorf("backendName = %q, want %q", o.backendName, "headless")
	}
	if o.sharedContext != any(ctx) {
		t.Error("WithSharedContext did not set the shared context")
	}
	if o.logger != l {
		t.Error("WithLogger did not set the logger")
	}
	if o.frameWidth != 1920 || o.frameHeight != 1080 {
		t.Errorf("frame size = %dx%d, want 1920x1080", o.frameWidth, o.frameHeight)
	}
}

// TestWithPlatformTakesPrecedence verifies that an explicit platform wins
// over a backend name; the name is not even resolved.
func TestWithPlatformTakesPrecedence(t *testing.T) {
	p := &fakePlatform{}

	e, err := New(WithPlatform(p), WithBackend("no-such-backend"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Destroy()

	if e.Platform() != backend.Platform(p) {
		t.Error("engine did not prefer the explicit platform")
	}
}

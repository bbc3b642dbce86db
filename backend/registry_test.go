package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/shadertest"
)

// fakeBackend is a ShaderBackend built on shadertest.Context.
type fakeBackend struct {
	*shadertest.Context
	name    string
	initErr error
	inited  bool
	closed  bool
}

func (f *fakeBackend) Name() string { return f.name }
func (f *fakeBackend) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	f.inited = true
	return nil
}
func (f *fakeBackend) Close() { f.closed = true }

// withRegistry swaps in an empty registry for the duration of the test.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]BackendFactory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func register(name string, initErr error) {
	Register(name, func() ShaderBackend {
		return &fakeBackend{Context: shadertest.New(), name: name, initErr: initErr}
	})
}

func TestRegisterAndGet(t *testing.T) {
	withRegistry(t)

	if Get("fake") != nil {
		t.Fatal("Get() on empty registry returned a backend")
	}
	register("fake", nil)
	if !IsRegistered("fake") {
		t.Error("IsRegistered(fake) = false")
	}
	b := Get("fake")
	if b == nil || b.Name() != "fake" {
		t.Fatalf("Get(fake) = %v", b)
	}

	Unregister("fake")
	if IsRegistered("fake") {
		t.Error("IsRegistered(fake) after Unregister = true")
	}
}

func TestAvailableSorted(t *testing.T) {
	withRegistry(t)
	for _, n := range []string{"zeta", BackendWGSL, "alpha"} {
		register(n, nil)
	}
	got := Available()
	want := []string{"alpha", BackendWGSL, "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", got, want)
		}
	}
}

func TestDefaultPriority(t *testing.T) {
	withRegistry(t)

	if Default() != nil {
		t.Fatal("Default() on empty registry returned a backend")
	}

	register("custom", nil)
	if b := Default(); b == nil || b.Name() != "custom" {
		t.Errorf("Default() with only custom = %v", b)
	}

	register(BackendWGSL, nil)
	if b := Default(); b.Name() != BackendWGSL {
		t.Errorf("Default() = %q, want %q", b.Name(), BackendWGSL)
	}

	register(BackendOpenGL, nil)
	if b := Default(); b.Name() != BackendOpenGL {
		t.Errorf("Default() = %q, want %q", b.Name(), BackendOpenGL)
	}

	register(BackendWebGL, nil)
	if b := Default(); b.Name() != BackendWebGL {
		t.Errorf("Default() = %q, want %q", b.Name(), BackendWebGL)
	}
}

func TestMustDefaultPanics(t *testing.T) {
	withRegistry(t)
	defer func() {
		if recover() == nil {
			t.Error("MustDefault() on empty registry did not panic")
		}
	}()
	MustDefault()
}

func TestOpen(t *testing.T) {
	withRegistry(t)

	if _, err := Open("missing"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(missing) error = %v, want ErrBackendNotAvailable", err)
	}
	if _, err := InitDefault(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("InitDefault() error = %v, want ErrBackendNotAvailable", err)
	}

	initErr := errors.New("no display")
	register("broken", initErr)
	if _, err := Open("broken"); !errors.Is(err, initErr) {
		t.Errorf("Open(broken) error = %v, want %v", err, initErr)
	}

	register(BackendWGSL, nil)
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()
	if !b.(*fakeBackend).inited {
		t.Error("InitDefault() did not call Init")
	}

	sh, err := glshader.Compile(b, glshader.StageVertex, "void main() {}")
	if err != nil {
		t.Fatalf("Compile() through backend error = %v", err)
	}
	sh.Release()
}

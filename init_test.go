package beryl

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

// newTestSession initializes the library for one test, skipping the test on
// machines where SDL cannot come up at all. The token closes with the test.
func newTestSession(t *testing.T, flags InitFlags) *Sdl {
	t.Helper()
	s, err := Init(flags)
	if err != nil {
		t.Skipf("SDL unavailable here: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInitRejectsSecondToken(t *testing.T) {
	s := newTestSession(t, InitEvents)

	if _, err := Init(InitEvents); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Init: err = %v, want ErrAlreadyInitialized", err)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	// The slot frees once the token closes.
	s2, err := Init(InitEvents)
	if err != nil {
		t.Fatalf("Init after Close: %v", err)
	}
	s2.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestSession(t, InitEvents)
	for i := 0; i < 3; i++ {
		if err := s.Close(); err != nil {
			t.Fatalf("Close #%d: %v", i+1, err)
		}
	}
}

func TestQuitWaitsForDerivedResources(t *testing.T) {
	s := newTestSession(t, InitEvents)

	pal, err := s.AllocPalette(16)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// The palette outlives the token's Close and stays usable.
	if got := pal.Len(); got != 16 {
		t.Errorf("Len() = %d, want 16", got)
	}
	if err := pal.SetColor(3, Color{R: 1, G: 2, B: 3, A: 4}); err != nil {
		t.Errorf("SetColor after token Close: %v", err)
	}
	pal.Close()

	// Only now has the library actually shut down; a fresh Init proves the
	// initialized slot was released.
	s2, err := Init(InitEvents)
	if err != nil {
		t.Fatalf("Init after deferred quit: %v", err)
	}
	s2.Close()
}

func TestTicksAndDelay(t *testing.T) {
	s := newTestSession(t, InitTimer|InitEvents)

	before := s.Ticks()
	start := time.Now()
	s.Delay(15 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Delay returned after %v, want >= 15ms", elapsed)
	}
	if after := s.Ticks(); after < before {
		t.Errorf("Ticks went backwards: %d then %d", before, after)
	}

	// Non-positive delays return immediately.
	s.Delay(0)
	s.Delay(-time.Second)
}

func TestContractViolationsSkipNativeCalls(t *testing.T) {
	s := newTestSession(t, InitEvents)

	if _, err := s.AllocPalette(1); !errors.Is(err, ErrContractViolation) {
		t.Errorf("AllocPalette(1): err = %v, want ErrContractViolation", err)
	}
	if _, err := s.AllocPalette(-4); !errors.Is(err, ErrContractViolation) {
		t.Errorf("AllocPalette(-4): err = %v, want ErrContractViolation", err)
	}
	if _, err := s.CreateSurface(-1, 10, PixelFormatARGB8888); !errors.Is(err, ErrContractViolation) {
		t.Errorf("CreateSurface(-1, 10): err = %v, want ErrContractViolation", err)
	}
	if _, err := s.CreateVkWindow(WindowOptions{Flags: WindowOpenGL}); !errors.Is(err, ErrContractViolation) {
		t.Errorf("CreateVkWindow with OpenGL flag: err = %v, want ErrContractViolation", err)
	}
	if _, err := s.OpenAudioCallback(AudioQueueRequest{}, nil); !errors.Is(err, ErrContractViolation) {
		t.Errorf("OpenAudioCallback(nil): err = %v, want ErrContractViolation", err)
	}
}

func TestPaletteReadsAndWrites(t *testing.T) {
	s := newTestSession(t, InitEvents)

	pal, err := s.AllocPalette(4)
	if err != nil {
		t.Fatal(err)
	}
	defer pal.Close()

	want := []Color{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 40, G: 50, B: 60, A: 255},
	}
	if err := pal.SetColors(1, want); err != nil {
		t.Fatal(err)
	}
	for i, w := range want {
		got, ok := pal.Color(1 + i)
		if !ok || got != w {
			t.Errorf("Color(%d) = %+v, %v, want %+v", 1+i, got, ok, w)
		}
	}
	if _, ok := pal.Color(4); ok {
		t.Error("Color(4) reported ok for an out-of-range index")
	}
	if err := pal.SetColors(3, want); !errors.Is(err, ErrContractViolation) {
		t.Errorf("overflowing SetColors: err = %v, want ErrContractViolation", err)
	}

	dup, err := pal.Clone()
	if err != nil {
		t.Fatal(err)
	}
	defer dup.Close()
	if dup.Len() != pal.Len() {
		t.Fatalf("clone length %d, want %d", dup.Len(), pal.Len())
	}
	// Clones are independent.
	if err := dup.SetColor(0, Color{R: 99}); err != nil {
		t.Fatal(err)
	}
	orig, _ := pal.Color(0)
	if orig.R == 99 {
		t.Error("writing the clone changed the original")
	}
}

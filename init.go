package beryl

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// InitFlags selects which SDL subsystems to initialize.
type InitFlags uint32

const (
	// InitTimer is the timer subsystem.
	InitTimer InitFlags = sdl.INIT_TIMER
	// InitAudio is the audio subsystem.
	InitAudio InitFlags = sdl.INIT_AUDIO
	// InitVideo is the video subsystem. Implies InitEvents.
	InitVideo InitFlags = sdl.INIT_VIDEO
	// InitJoystick is the joystick subsystem. Implies InitEvents.
	InitJoystick InitFlags = sdl.INIT_JOYSTICK
	// InitHaptic is the force-feedback subsystem.
	InitHaptic InitFlags = sdl.INIT_HAPTIC
	// InitGameController is the controller API on top of the joysticks.
	// Implies InitJoystick.
	InitGameController InitFlags = sdl.INIT_GAMECONTROLLER
	// InitEvents is the event subsystem.
	InitEvents InitFlags = sdl.INIT_EVENTS
	// InitEverything is all of the above.
	InitEverything InitFlags = sdl.INIT_EVERYTHING
)

// sdlActive is the process-wide "I think that SDL is active" flag. The
// constructor swaps it false->true; losing the swap means a double init.
var sdlActive atomic.Bool

var (
	mainMu    sync.Mutex
	mainCalls chan func() // non-nil while Main is running
)

// Main runs app while servicing beryl's native calls on the calling OS
// thread. Call it from your main function, before Init, on platforms that
// require the process main thread (macOS, iOS). On other platforms it is
// optional: Init will lock a dedicated OS thread by itself.
//
// Main returns when app returns.
func Main(app func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	calls := make(chan func())
	mainMu.Lock()
	mainCalls = calls
	mainMu.Unlock()
	defer func() {
		mainMu.Lock()
		mainCalls = nil
		mainMu.Unlock()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		app()
	}()
	for {
		select {
		case fn := <-calls:
			fn()
		case <-done:
			return
		}
	}
}

// Sdl is the init token: holding one is the proof that SDL_Init succeeded.
//
// The token is intended for single-goroutine use. Every restricted native
// call made through it is routed to the OS thread that performed the
// initialization, so the token's methods may not be mixed across goroutines
// with any expectation of ordering.
//
// Derived resources (windows, surfaces, audio devices, input devices) hold
// a reference to the token; SDL_Quit runs only after Close has been called
// AND the last derived resource has been closed.
type Sdl struct {
	calls   chan func()
	stop    chan struct{} // closes the private loop; nil when Main's loop is used
	ownLoop bool

	children atomic.Int32
	closed   atomic.Bool
}

// Init initializes SDL with the given subsystem flags.
//
// Failure cases:
//   - another token is alive: ErrAlreadyInitialized
//   - the platform requires the main thread and Main is not running:
//     ErrWrongThread
//   - the native call failed: *NativeError
func Init(flags InitFlags) (*Sdl, error) {
	if sdlActive.Swap(true) {
		// true came back, so SDL was on, so this is a double init.
		return nil, ErrAlreadyInitialized
	}

	s := &Sdl{}
	mainMu.Lock()
	calls := mainCalls
	mainMu.Unlock()
	if calls != nil {
		s.calls = calls
	} else {
		if needsMainThread() {
			sdlActive.Store(false)
			return nil, ErrWrongThread
		}
		s.calls = make(chan func())
		s.stop = make(chan struct{})
		s.ownLoop = true
		go s.run()
	}

	var initErr error
	s.do(func() {
		if err := sdl.Init(uint32(flags)); err != nil {
			initErr = nativeErr("SDL_Init", err)
		}
	})
	if initErr != nil {
		if s.ownLoop {
			close(s.stop)
		}
		sdlActive.Store(false)
		return nil, initErr
	}
	logger().Info("SDL initialized", "flags", uint32(flags))
	return s, nil
}

func needsMainThread() bool {
	return runtime.GOOS == "darwin" || runtime.GOOS == "ios"
}

// run is the token's private dispatch loop. It pins an OS thread for the
// whole initialized lifetime; that thread is where SDL_Init, all window and
// GL calls, the event queue reads, and finally SDL_Quit happen.
func (s *Sdl) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		select {
		case fn := <-s.calls:
			fn()
		case <-s.stop:
			return
		}
	}
}

// do runs fn on the init-owning thread and waits for it to finish.
func (s *Sdl) do(fn func()) {
	done := make(chan struct{})
	s.calls <- func() {
		defer close(done)
		fn()
	}
	<-done
}

// retain records a newly created derived resource.
func (s *Sdl) retain() {
	s.children.Add(1)
}

// release records a closed derived resource. If the token itself is already
// closed and this was the last child, SDL quits now.
func (s *Sdl) release() {
	if s.children.Add(-1) == 0 && s.closed.Load() {
		s.quit()
	}
}

// Close ends the library's initialized lifetime. If derived resources are
// still alive the shutdown is delayed until the last of them closes.
// Close is idempotent.
func (s *Sdl) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.children.Load() == 0 {
		s.quit()
	}
	return nil
}

func (s *Sdl) quit() {
	s.do(func() {
		sdl.Quit()
	})
	if s.ownLoop {
		close(s.stop)
	}
	sdlActive.Store(false)
	logger().Info("SDL quit")
}

// GetError snapshots the current native error string. The snapshot is taken
// on the init-owning thread, so it cannot race with a failing call made
// through this token.
func (s *Sdl) GetError() string {
	var msg string
	s.do(func() {
		if err := sdl.GetError(); err != nil {
			msg = err.Error()
		}
	})
	return msg
}

// Ticks is the number of milliseconds since SDL initialization.
func (s *Sdl) Ticks() uint32 {
	return sdl.GetTicks()
}

// Delay sleeps for at least d. The native delay has millisecond resolution
// and a 32-bit range, so d is rounded up to whole milliseconds and sliced
// into chunks as needed.
func (s *Sdl) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	ms := int64((d + time.Millisecond - 1) / time.Millisecond)
	for ms > 0 {
		chunk := ms
		if chunk > math.MaxUint32 {
			chunk = math.MaxUint32
		}
		sdl.Delay(uint32(chunk))
		ms -= chunk
	}
}

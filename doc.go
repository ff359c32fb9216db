// Package beryl is a safe layer over the SDL2 library.
//
// The bindings themselves come from github.com/veandco/go-sdl2; beryl's job
// is making them safe and pleasant to use from Go. The central idea is the
// init token: calling [Init] proves that SDL is initialized and gives you a
// [*Sdl] value from which every other resource (windows, renderers,
// surfaces, audio devices, controllers) is derived. Derived resources keep
// the token alive, so SDL_Quit never runs while anything still needs it.
//
// SDL is not thread-safe and on some platforms its video subsystem only
// works from the thread that performed initialization. beryl handles this by
// locking an OS thread at Init and routing every restricted native call to
// it. On macOS that thread must be the actual process main thread: wrap your
// program in [Main] there.
//
// Events come out of [Sdl.PollEvent] as a closed set of typed values; native
// records that beryl does not model are silently skipped, so exhaustive type
// switches over [Event] stay meaningful.
package beryl

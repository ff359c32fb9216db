package beryl

import "github.com/veandco/go-sdl2/sdl"

// MessageBoxKind selects the icon of a simple message box.
type MessageBoxKind uint32

const (
	MessageBoxError       MessageBoxKind = sdl.MESSAGEBOX_ERROR
	MessageBoxWarning     MessageBoxKind = sdl.MESSAGEBOX_WARNING
	MessageBoxInformation MessageBoxKind = sdl.MESSAGEBOX_INFORMATION
)

// ShowMessageBox blocks on a modal message box with one OK button. It works
// before any window exists, which makes it usable for reporting startup
// failures.
func (s *Sdl) ShowMessageBox(kind MessageBoxKind, title, message string) error {
	var err error
	s.do(func() {
		err = sdl.ShowSimpleMessageBox(uint32(kind), title, message, nil)
	})
	if err != nil {
		return nativeErr("SDL_ShowSimpleMessageBox", err)
	}
	return nil
}

// ShowMessageBox anchors a modal message box to this window.
func (w *window) ShowMessageBox(kind MessageBoxKind, title, message string) error {
	var err error
	w.sdl.do(func() {
		err = sdl.ShowSimpleMessageBox(uint32(kind), title, message, w.win)
	})
	if err != nil {
		return nativeErr("SDL_ShowSimpleMessageBox", err)
	}
	return nil
}

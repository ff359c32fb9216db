package beryl

// typedef unsigned char Uint8;
// void berylAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/veandco/go-sdl2/sdl"
)

// AudioCallbackDevice is an open playback device that pulls sample data on
// demand instead of draining a queue. The device thread calls fill whenever
// the hardware wants another buffer. It holds the init token alive until
// Close.
type AudioCallbackDevice struct {
	sdl    *Sdl
	dev    sdl.AudioDeviceID
	fill   func(out []byte)
	cookie unsafe.Pointer
	closed bool

	Frequency   int32
	Format      AudioFormat
	Channels    AudioChannels
	SampleCount uint16
	Silence     uint8
	BufferSize  uint32
}

// OpenAudioCallback opens the default playback device in pull mode. fill
// runs on the native audio thread and must write every byte of out each
// call (use the device's Silence value for quiet), returning promptly:
// the hardware does not wait. The device opens paused.
func (s *Sdl) OpenAudioCallback(req AudioQueueRequest, fill func(out []byte)) (*AudioCallbackDevice, error) {
	if fill == nil {
		return nil, violation("audio callback device needs a fill function")
	}
	d := &AudioCallbackDevice{sdl: s, fill: fill}
	d.cookie = pointer.Save(d)
	desired := sdl.AudioSpec{
		Freq:     req.Frequency,
		Format:   sdl.AudioFormat(req.Format),
		Channels: uint8(req.Channels),
		Samples:  nextPow2u16(req.SampleCount),
		Callback: sdl.AudioCallback(C.berylAudioPlayback),
		UserData: d.cookie,
	}
	var (
		dev      sdl.AudioDeviceID
		obtained sdl.AudioSpec
		err      error
	)
	s.do(func() {
		dev, err = sdl.OpenAudioDevice("", false, &desired, &obtained, req.allowedChanges())
	})
	if err != nil {
		pointer.Unref(d.cookie)
		return nil, nativeErr("SDL_OpenAudioDevice", err)
	}
	s.retain()
	d.dev = dev
	d.Frequency = obtained.Freq
	d.Format = AudioFormat(obtained.Format)
	d.Channels = AudioChannels(obtained.Channels)
	d.SampleCount = obtained.Samples
	d.Silence = obtained.Silence
	d.BufferSize = obtained.Size
	return d, nil
}

//export berylAudioPlayback
func berylAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	d := pointer.Restore(userdata).(*AudioCallbackDevice)
	out := unsafe.Slice((*byte)(unsafe.Pointer(stream)), int(length))
	d.fill(out)
}

// Resume starts pulling from the fill function.
func (d *AudioCallbackDevice) Resume() {
	sdl.PauseAudioDevice(d.dev, false)
}

// Pause stops pulling; the hardware plays silence meanwhile.
func (d *AudioCallbackDevice) Pause() {
	sdl.PauseAudioDevice(d.dev, true)
}

// Status is the device's play state.
func (d *AudioCallbackDevice) Status() AudioStatus {
	return AudioStatus(sdl.GetAudioDeviceStatus(d.dev))
}

// Lock keeps the fill function from running while held, for updating state
// it reads. Pair every Lock with Unlock quickly: audio stalls while held.
func (d *AudioCallbackDevice) Lock() {
	sdl.LockAudioDevice(d.dev)
}

// Unlock releases Lock.
func (d *AudioCallbackDevice) Unlock() {
	sdl.UnlockAudioDevice(d.dev)
}

// Close stops the device and drops its hold on the init token. The fill
// function is never called again once Close returns. Further calls do
// nothing.
func (d *AudioCallbackDevice) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.sdl.do(func() {
		sdl.CloseAudioDevice(d.dev)
	})
	pointer.Unref(d.cookie)
	d.sdl.release()
}

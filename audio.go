package beryl

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// AudioFormat encodes sample width, signedness, endianness, and integer or
// float, in one value. The query methods decode it without native calls.
type AudioFormat uint16

const (
	AudioU8     AudioFormat = sdl.AUDIO_U8
	AudioS8     AudioFormat = sdl.AUDIO_S8
	AudioU16LSB AudioFormat = sdl.AUDIO_U16LSB
	AudioS16LSB AudioFormat = sdl.AUDIO_S16LSB
	AudioU16MSB AudioFormat = sdl.AUDIO_U16MSB
	AudioS16MSB AudioFormat = sdl.AUDIO_S16MSB
	AudioS32LSB AudioFormat = sdl.AUDIO_S32LSB
	AudioS32MSB AudioFormat = sdl.AUDIO_S32MSB
	AudioF32LSB AudioFormat = sdl.AUDIO_F32LSB
	AudioF32MSB AudioFormat = sdl.AUDIO_F32MSB

	// Native-endian spellings of the common formats.
	AudioU16Sys AudioFormat = sdl.AUDIO_U16SYS
	AudioS16Sys AudioFormat = sdl.AUDIO_S16SYS
	AudioS32Sys AudioFormat = sdl.AUDIO_S32SYS
	AudioF32Sys AudioFormat = sdl.AUDIO_F32SYS
)

// BitSize is the width of one sample in bits.
func (f AudioFormat) BitSize() uint8 { return uint8(f & 0xFF) }

// IsFloat reports whether samples are floating point.
func (f AudioFormat) IsFloat() bool { return f&(1<<8) != 0 }

// IsBigEndian reports whether multi-byte samples are big endian.
func (f AudioFormat) IsBigEndian() bool { return f&(1<<12) != 0 }

// IsSigned reports whether integer samples are signed. Float formats are
// always signed.
func (f AudioFormat) IsSigned() bool { return f&(1<<15) != 0 }

// AudioChannels is the channel count of a stream.
type AudioChannels uint8

const (
	AudioMono    AudioChannels = 1
	AudioStereo  AudioChannels = 2
	AudioQuad    AudioChannels = 4
	AudioFiveOne AudioChannels = 6
)

// AudioStatus is the play state of an open device.
type AudioStatus uint32

const (
	AudioStopped AudioStatus = sdl.AUDIO_STOPPED
	AudioPaused  AudioStatus = sdl.AUDIO_PAUSED
	AudioPlaying AudioStatus = sdl.AUDIO_PLAYING
)

// AudioQueueRequest is what to ask the device for. The Allow fields let the
// driver substitute a nearby value instead of converting behind the scenes;
// check the AudioQueue's obtained fields for what was granted.
type AudioQueueRequest struct {
	Frequency int32
	Format    AudioFormat
	Channels  AudioChannels
	// SampleCount is the device buffer length in sample frames. It is
	// rounded up to a power of two, which some backends require.
	SampleCount uint16

	AllowFrequencyChange bool
	AllowFormatChange    bool
	AllowChannelsChange  bool
}

// nextPow2u16 rounds up to a power of two, saturating at the largest one a
// uint16 can hold.
func nextPow2u16(v uint16) uint16 {
	if v == 0 {
		return 1
	}
	if v > 1<<15 {
		return 1 << 15
	}
	p := uint16(1)
	for p < v {
		p <<= 1
	}
	return p
}

func (r AudioQueueRequest) allowedChanges() int {
	var allowed int
	if r.AllowFrequencyChange {
		allowed |= sdl.AUDIO_ALLOW_FREQUENCY_CHANGE
	}
	if r.AllowFormatChange {
		allowed |= sdl.AUDIO_ALLOW_FORMAT_CHANGE
	}
	if r.AllowChannelsChange {
		allowed |= sdl.AUDIO_ALLOW_CHANNELS_CHANGE
	}
	return allowed
}

// AudioQueue is an open playback device fed by queueing sample data. It
// opens paused; call Resume once some audio is queued. It holds the init
// token alive until Close.
type AudioQueue struct {
	sdl    *Sdl
	dev    sdl.AudioDeviceID
	closed bool

	// What the device actually granted.
	Frequency   int32
	Format      AudioFormat
	Channels    AudioChannels
	SampleCount uint16
	// Silence is the sample byte value that plays as silence.
	Silence uint8
	// BufferSize is the device buffer length in bytes.
	BufferSize uint32
}

// OpenAudioQueue opens the default playback device in queue mode.
func (s *Sdl) OpenAudioQueue(req AudioQueueRequest) (*AudioQueue, error) {
	desired := sdl.AudioSpec{
		Freq:     req.Frequency,
		Format:   sdl.AudioFormat(req.Format),
		Channels: uint8(req.Channels),
		Samples:  nextPow2u16(req.SampleCount),
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
		return nil, nativeErr("SDL_OpenAudioDevice", err)
	}
	s.retain()
	logger().Debug("audio queue opened",
		"frequency", obtained.Freq, "channels", obtained.Channels, "samples", obtained.Samples)
	return &AudioQueue{
		sdl:         s,
		dev:         dev,
		Frequency:   obtained.Freq,
		Format:      AudioFormat(obtained.Format),
		Channels:    AudioChannels(obtained.Channels),
		SampleCount: obtained.Samples,
		Silence:     obtained.Silence,
		BufferSize:  obtained.Size,
	}, nil
}

// Queue appends sample bytes, in the obtained format, to the device's
// backlog. Data longer than a uint32 can count is ErrContractViolation and
// nothing is queued. Queueing is thread-safe natively, so this does not
// occupy the init-owning thread.
func (q *AudioQueue) Queue(data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return violation("audio chunk of %d bytes exceeds the native limit", len(data))
	}
	if err := sdl.QueueAudio(q.dev, data); err != nil {
		return nativeErr("SDL_QueueAudio", err)
	}
	return nil
}

// QueuedByteCount is the number of queued bytes not yet handed to the
// hardware. It is an estimate in motion: audio keeps draining while you
// look.
func (q *AudioQueue) QueuedByteCount() uint32 {
	return sdl.GetQueuedAudioSize(q.dev)
}

// ClearQueue drops all queued data that has not reached the hardware.
func (q *AudioQueue) ClearQueue() {
	sdl.ClearQueuedAudio(q.dev)
}

// Resume starts or restarts playback. An empty queue plays silence.
func (q *AudioQueue) Resume() {
	sdl.PauseAudioDevice(q.dev, false)
}

// Pause stops consuming the queue, leaving its contents in place.
func (q *AudioQueue) Pause() {
	sdl.PauseAudioDevice(q.dev, true)
}

// Status is the device's play state.
func (q *AudioQueue) Status() AudioStatus {
	return AudioStatus(sdl.GetAudioDeviceStatus(q.dev))
}

// Close stops the device, discards queued data, and drops the hold on the
// init token. Further calls do nothing.
func (q *AudioQueue) Close() {
	if q.closed {
		return
	}
	q.closed = true
	q.sdl.do(func() {
		sdl.CloseAudioDevice(q.dev)
	})
	q.sdl.release()
}

// PlaybackDeviceNames lists the playback devices the OS reports, usable
// while nothing rebuilds the device list concurrently.
func (s *Sdl) PlaybackDeviceNames() []string {
	var names []string
	s.do(func() {
		n := sdl.GetNumAudioDevices(false)
		names = make([]string, 0, n)
		for i := 0; i < n; i++ {
			names = append(names, sdl.GetAudioDeviceName(i, false))
		}
	})
	return names
}

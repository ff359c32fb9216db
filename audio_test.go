package beryl

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestAudioFormatPredicates(t *testing.T) {
	tests := []struct {
		name      string
		format    AudioFormat
		bits      uint8
		signed    bool
		bigEndian bool
		float     bool
	}{
		{"U8", AudioU8, 8, false, false, false},
		{"S8", AudioS8, 8, true, false, false},
		{"U16LSB", AudioU16LSB, 16, false, false, false},
		{"S16LSB", AudioS16LSB, 16, true, false, false},
		{"S16MSB", AudioS16MSB, 16, true, true, false},
		{"S32LSB", AudioS32LSB, 32, true, false, false},
		{"S32MSB", AudioS32MSB, 32, true, true, false},
		{"F32LSB", AudioF32LSB, 32, true, false, true},
		{"F32MSB", AudioF32MSB, 32, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.format
			if got := f.BitSize(); got != tt.bits {
				t.Errorf("BitSize() = %d, want %d", got, tt.bits)
			}
			if got := f.IsSigned(); got != tt.signed {
				t.Errorf("IsSigned() = %v, want %v", got, tt.signed)
			}
			if got := f.IsBigEndian(); got != tt.bigEndian {
				t.Errorf("IsBigEndian() = %v, want %v", got, tt.bigEndian)
			}
			if got := f.IsFloat(); got != tt.float {
				t.Errorf("IsFloat() = %v, want %v", got, tt.float)
			}
		})
	}
}

func TestNextPow2u16(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint16
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{800, 1024},
		{1024, 1024},
		{4095, 4096},
		{4096, 4096},
		{40000, 32768},
		{65535, 32768},
	}
	for _, tt := range tests {
		if got := nextPow2u16(tt.in); got != tt.want {
			t.Errorf("nextPow2u16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAudioQueueRequestAllowedChanges(t *testing.T) {
	tests := []struct {
		name string
		req  AudioQueueRequest
		want int
	}{
		{"nothing", AudioQueueRequest{}, 0},
		{"frequency", AudioQueueRequest{AllowFrequencyChange: true}, sdl.AUDIO_ALLOW_FREQUENCY_CHANGE},
		{"format", AudioQueueRequest{AllowFormatChange: true}, sdl.AUDIO_ALLOW_FORMAT_CHANGE},
		{"channels", AudioQueueRequest{AllowChannelsChange: true}, sdl.AUDIO_ALLOW_CHANNELS_CHANGE},
		{
			"all",
			AudioQueueRequest{AllowFrequencyChange: true, AllowFormatChange: true, AllowChannelsChange: true},
			sdl.AUDIO_ALLOW_FREQUENCY_CHANGE | sdl.AUDIO_ALLOW_FORMAT_CHANGE | sdl.AUDIO_ALLOW_CHANNELS_CHANGE,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.allowedChanges(); got != tt.want {
				t.Errorf("allowedChanges() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

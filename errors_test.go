package beryl

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestNativeErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  *NativeError
		want string
	}{
		{
			"with message",
			&NativeError{Op: "SDL_CreateWindow", Msg: "No available video device"},
			"beryl: SDL_CreateWindow: No available video device",
		},
		{
			"without message",
			&NativeError{Op: "SDL_Init"},
			"beryl: SDL_Init failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViolationWrapping(t *testing.T) {
	err := violation("palette length %d outside %d..=%d", 1, 2, 100)
	if !errors.Is(err, ErrContractViolation) {
		t.Fatalf("violation does not match ErrContractViolation: %v", err)
	}
	if !strings.Contains(err.Error(), "palette length 1") {
		t.Errorf("detail text missing: %q", err.Error())
	}

	if errors.Is(err, ErrUnrepresented) {
		t.Error("violation matched an unrelated sentinel")
	}
}

func TestUnrepresentedWrapping(t *testing.T) {
	err := errUnrepresentedf("window event %#x", 0xEE)
	if !errors.Is(err, ErrUnrepresented) {
		t.Fatalf("errUnrepresentedf does not match ErrUnrepresented: %v", err)
	}
	if !strings.Contains(err.Error(), "0xee") {
		t.Errorf("detail text missing: %q", err.Error())
	}
}

func TestSetLogger(t *testing.T) {
	// The default logger discards everything without crashing.
	logger().Info("dropped")

	var sb strings.Builder
	SetLogger(slog.New(slog.NewTextHandler(&sb, nil)))
	defer SetLogger(nil)
	logger().Info("captured", "k", "v")
	if !strings.Contains(sb.String(), "captured") {
		t.Errorf("configured logger saw nothing, buffer = %q", sb.String())
	}

	// Resetting to nil restores the silent default.
	SetLogger(nil)
	logger().Info("dropped again")
}

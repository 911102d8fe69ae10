package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/detector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, detector.ModePlain, detector.Detect(f))
	assert.Equal(t, detector.ModePlain, detector.Detect(nil))
}

func TestDetect_CI(t *testing.T) {
	for _, ci := range []string{"true", "1"} {
		t.Run("CI="+ci, func(t *testing.T) {
			t.Setenv("CI", ci)
			assert.Equal(t, detector.ModePlain, detector.Detect(os.Stdout))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.Mode
		flag     string
		expected detector.Mode
	}{
		{name: "empty flag keeps interactive", detected: detector.ModeInteractive, flag: "", expected: detector.ModeInteractive},
		{name: "auto keeps plain", detected: detector.ModePlain, flag: "auto", expected: detector.ModePlain},
		{name: "interactive overrides", detected: detector.ModePlain, flag: "interactive", expected: detector.ModeInteractive},
		{name: "tui is alias for interactive", detected: detector.ModePlain, flag: "TUI", expected: detector.ModeInteractive},
		{name: "plain overrides", detected: detector.ModeInteractive, flag: "plain", expected: detector.ModePlain},
		{name: "ci is alias for plain", detected: detector.ModeInteractive, flag: "ci", expected: detector.ModePlain},
		{name: "unknown falls back", detected: detector.ModeInteractive, flag: "fancy", expected: detector.ModeInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Resolve(tt.detected, tt.flag))
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "interactive", detector.ModeInteractive.String())
	assert.Equal(t, "plain", detector.ModePlain.String())
}

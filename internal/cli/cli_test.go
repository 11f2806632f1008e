package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_RunnerOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Runner
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.ch8"},
			want: options.Runner{Frequency: options.DefaultFrequency},
		},
		{
			name: "cycles and seed",
			args: []string{"prog", "-cycles", "500", "-seed", "42", "game.ch8"},
			want: options.Runner{Cycles: 500, Seed: 42, Frequency: options.DefaultFrequency},
		},
		{
			name: "fast display",
			args: []string{"prog", "-fast", "-display", "-hz", "1200", "game.ch8"},
			want: options.Runner{Frequency: 1200, Unthrottled: true, Display: true},
		},
		{
			name: "trace",
			args: []string{"prog", "-trace", "game.ch8"},
			want: options.Runner{Frequency: options.DefaultFrequency, Trace: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, "game.ch8", opts.Input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{
			name:       "missing program file",
			args:       []string{"prog"},
			usageError: true,
		},
		{
			name:       "unknown flag",
			args:       []string{"prog", "-unknown", "game.ch8"},
			usageError: true,
		},
		{
			name:       "flag after program file",
			args:       []string{"prog", "game.ch8", "-fast"},
			usageError: true,
		},
		{
			name:       "zero frequency",
			args:       []string{"prog", "-hz", "0", "game.ch8"},
			usageError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, _, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlags_InputFlag(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-i", "pong.ch8"}

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "pong.ch8", opts.Input)
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"program file only", []string{"game.ch8"}, false},
		{"empty argument after program file", []string{"game.ch8", ""}, false},
		{"flag after program file", []string{"game.ch8", "-q"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

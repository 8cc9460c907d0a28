package options

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaults(t *testing.T) {
	fs := flag.NewFlagSet("glscene", flag.ContinueOnError)
	opts := Register(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 1280, *opts.Width)
	assert.Equal(t, 720, *opts.Height)
	assert.Equal(t, ModeWindow, *opts.Mode)
	assert.Equal(t, "", *opts.Scene)
	assert.True(t, *opts.Vsync)
	assert.False(t, *opts.Translate)
}

func TestRegisterParses(t *testing.T) {
	fs := flag.NewFlagSet("glscene", flag.ContinueOnError)
	opts := Register(fs)
	require.NoError(t, fs.Parse([]string{
		"-mode", "record", "-frames", "30", "-fps", "24",
		"-output", "clip.mkv", "-codec", "hevc", "-translate", "-vsync=false",
	}))

	assert.Equal(t, ModeRecord, *opts.Mode)
	assert.Equal(t, 30, *opts.RecordFrames)
	assert.Equal(t, 24, *opts.FPS)
	assert.Equal(t, "clip.mkv", *opts.Output)
	assert.Equal(t, "hevc", *opts.Codec)
	assert.True(t, *opts.Translate)
	assert.False(t, *opts.Vsync)
}

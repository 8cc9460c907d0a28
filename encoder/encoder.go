// Package encoder pipes raw RGBA frames into an ffmpeg process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ErrClosed is returned when writing to a recorder that has been closed.
var ErrClosed = errors.New("recorder is closed")

// Config describes the video being produced.
type Config struct {
	Width, Height int
	FPS           int
	Output        string
	// FFmpegPath overrides the ffmpeg executable found on PATH.
	FFmpegPath string
	// Codec is "h264" (default) or "hevc".
	Codec string
}

// Frame is one bottom-up RGBA image as read back from the framebuffer.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// FrameSize is the byte size of one frame.
func (c Config) FrameSize() int { return c.Width * c.Height * 4 }

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FPS)
	}
	if c.Output == "" {
		return errors.New("no output file")
	}
	return nil
}

// Args returns the ffmpeg input and output arguments for c. Frames arrive
// bottom-up, so the output is flipped vertically.
func Args(c Config) (inputArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", c.Width, c.Height),
		"r":       c.FPS,
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	if c.Codec == "hevc" {
		outputArgs["c:v"] = "libx265"
		if strings.EqualFold(filepath.Ext(c.Output), ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	} else {
		outputArgs["c:v"] = "libx264"
	}
	return inputArgs, outputArgs
}

// Command builds the ffmpeg invocation reading frames from input.
func Command(c Config, input io.Reader) *ffmpeg.Stream {
	inputArgs, outputArgs := Args(c)
	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(c.Output, outputArgs).
		OverWriteOutput().WithInput(input).ErrorToStdOut()
	if c.FFmpegPath != "" {
		cmd = cmd.SetFfmpegPath(c.FFmpegPath)
	}
	return cmd
}

// Runner consumes the frame stream until it is closed.
type Runner func(c Config, input io.Reader) error

// FFmpeg runs the real ffmpeg process.
func FFmpeg(c Config, input io.Reader) error {
	return Command(c, input).Run()
}

// Recorder hands frames to a Runner on a separate goroutine.
type Recorder struct {
	cfg    Config
	frames chan *Frame
	done   chan error
	closed bool
	count  int64
}

// Start launches run and returns a recorder feeding it.
func Start(c Config, run Runner) (*Recorder, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	r := &Recorder{
		cfg:    c,
		frames: make(chan *Frame, 3),
		done:   make(chan error, 1),
	}
	pr, pw := io.Pipe()
	go func() {
		err := run(c, pr)
		// unblock the writer if the runner stopped reading early
		pr.CloseWithError(io.ErrClosedPipe)
		r.done <- err
	}()
	go r.consume(pw)
	log.Printf("Recording %dx%d at %d fps to %s", c.Width, c.Height, c.FPS, c.Output)
	return r, nil
}

func (r *Recorder) consume(pw *io.PipeWriter) {
	for frame := range r.frames {
		if _, err := pw.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to ffmpeg: %v", frame.PTS, err)
			// drain so producers never block
			for range r.frames {
			}
			break
		}
	}
	pw.Close()
}

// WriteFrame queues a copy of pixels, which must hold exactly one frame.
func (r *Recorder) WriteFrame(pixels []byte) error {
	if r.closed {
		return ErrClosed
	}
	if len(pixels) != r.cfg.FrameSize() {
		return fmt.Errorf("frame has %d bytes, want %d", len(pixels), r.cfg.FrameSize())
	}
	r.frames <- &Frame{Pixels: append([]byte(nil), pixels...), PTS: r.count}
	r.count++
	return nil
}

// Frames reports how many frames were queued.
func (r *Recorder) Frames() int64 { return r.count }

// Close flushes the queued frames and waits for the runner to exit.
func (r *Recorder) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	close(r.frames)
	if err := <-r.done; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	log.Printf("Recorded %d frames to %s", r.count, r.cfg.Output)
	return nil
}

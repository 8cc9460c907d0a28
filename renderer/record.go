package renderer

import (
	"fmt"

	"github.com/richinsley/glscene/glapi"
)

// RecordFrequency is the counter rate Record advances the game with. Games
// that are recorded must be created with it.
const RecordFrequency = 1_000_000

// FrameSink receives read back RGBA frames.
type FrameSink interface {
	WriteFrame(pixels []byte) error
}

// Record renders frames images at a fixed rate of fps, independent of wall
// time, and hands each one to sink.
func (r *Renderer) Record(sink FrameSink, frames, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("invalid frame rate %d", fps)
	}
	pixels := make([]byte, r.width*r.height*4)
	for i := range frames {
		r.game.Process(uint64(i) * RecordFrequency / uint64(fps))
		r.RenderFrame()
		r.gl.ReadPixels(0, 0, int32(r.width), int32(r.height), glapi.RGBA, glapi.UnsignedByte, pixels)
		if err := sink.WriteFrame(pixels); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
	}
	return nil
}

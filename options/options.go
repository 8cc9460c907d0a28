package options

import "flag"

// Modes accepted by -mode.
const (
	ModeWindow    = "window"
	ModeTriangles = "triangles"
	ModeRecord    = "record"
)

type Options struct {
	Width        *int
	Height       *int
	Assets       *string // Directory holding shaders/, relative to the executable. Empty uses the embedded copy.
	Scene        *string // Optional YAML scene file
	Mode         *string
	RecordFrames *int
	FPS          *int
	Output       *string
	FFmpeg       *string
	Codec        *string
	Translate    *bool // Compile the GLSL ES sources through the shader translator
	Vsync        *bool
	Headless     *bool // Record through an EGL pbuffer instead of a hidden window
	Help         *bool
}

// Register defines every option on fs.
func Register(fs *flag.FlagSet) *Options {
	return &Options{
		Width:        fs.Int("width", 1280, "Width of the window or video"),
		Height:       fs.Int("height", 720, "Height of the window or video"),
		Assets:       fs.String("assets", "", "Asset directory relative to the executable (default: embedded)"),
		Scene:        fs.String("scene", "", "YAML scene file (default: built-in scene)"),
		Mode:         fs.String("mode", ModeWindow, "Mode: window, triangles or record"),
		RecordFrames: fs.Int("frames", 600, "Number of frames to record"),
		FPS:          fs.Int("fps", 60, "Frames per second for recording"),
		Output:       fs.String("output", "output.mp4", "Output file name for recording"),
		FFmpeg:       fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:        fs.String("codec", "h264", "Video codec: h264 or hevc"),
		Translate:    fs.Bool("translate", false, "Translate GLSL ES shaders before compiling"),
		Vsync:        fs.Bool("vsync", true, "Start with vsync enabled (toggle with V)"),
		Headless:     fs.Bool("headless", false, "Record without a window using EGL (linux only)"),
		Help:         fs.Bool("help", false, "Show help message"),
	}
}

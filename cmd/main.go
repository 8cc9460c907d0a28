package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glscene/assets"
	"github.com/richinsley/glscene/draw"
	"github.com/richinsley/glscene/encoder"
	"github.com/richinsley/glscene/game"
	"github.com/richinsley/glscene/glcore"
	"github.com/richinsley/glscene/glfwcontext"
	"github.com/richinsley/glscene/graphics"
	"github.com/richinsley/glscene/headless"
	"github.com/richinsley/glscene/options"
	"github.com/richinsley/glscene/renderer"
	"github.com/richinsley/glscene/resources"
	"github.com/richinsley/glscene/shader"
	"github.com/richinsley/glscene/translator"
)

var keyMap = map[glfw.Key]game.GameKey{
	glfw.KeyA:          game.Left,
	glfw.KeyLeft:       game.Left,
	glfw.KeyD:          game.Right,
	glfw.KeyRight:      game.Right,
	glfw.KeyW:          game.Up,
	glfw.KeyUp:         game.Up,
	glfw.KeyS:          game.Down,
	glfw.KeyDown:       game.Down,
	glfw.KeyLeftShift:  game.RollModifier,
	glfw.KeyRightShift: game.RollModifier,
}

// describe renders err one layer per line. A layer that ends with its
// cause's text contributes only its own prefix.
func describe(err error) string {
	var lines []string
	for err != nil {
		msg := err.Error()
		cause := errors.Unwrap(err)
		if cause != nil {
			if own, ok := strings.CutSuffix(msg, ": "+cause.Error()); ok {
				msg = own
			}
		}
		lines = append(lines, msg)
		err = cause
	}
	return strings.Join(lines, "\n  caused by: ")
}

func loadShaders(opts *options.Options) (draw.Shaders, error) {
	shaders := draw.Shaders{Loader: resources.FromFS(assets.FS), Dir: "shaders"}
	if *opts.Assets != "" {
		res, err := resources.FromRelativeExePath(*opts.Assets)
		if err != nil {
			return shaders, err
		}
		shaders.Loader = res
	}
	if *opts.Translate {
		t, err := translator.New(context.Background())
		if err != nil {
			return shaders, fmt.Errorf("failed to create shader translator: %w", err)
		}
		shaders.Dir = "shaders/es"
		shaders.Options = []shader.Option{shader.WithTranslator(t)}
	}
	return shaders, nil
}

func loadScene(path string) (*game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	log.Printf("Loading scene %s", path)
	return game.LoadConfigFile(path)
}

func bindControls(ctx *glfwcontext.Context, g *game.Game) {
	for key, gk := range keyMap {
		ctx.RegisterKeyCallback(key, func() { g.KeyDown(gk) }, func() { g.KeyUp(gk) })
	}
	ctx.RegisterKeyCallback(glfw.KeyV, nil, func() { ctx.SetVsync(g.ToggleVsync()) })
	ctx.SetInput(g)
}

func run(opts *options.Options) error {
	mode := *opts.Mode
	switch mode {
	case options.ModeWindow, options.ModeTriangles, options.ModeRecord:
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	record := mode == options.ModeRecord

	cfg, err := loadScene(*opts.Scene)
	if err != nil {
		return err
	}
	shaders, err := loadShaders(opts)
	if err != nil {
		return err
	}

	var ctx graphics.Context
	var win *glfwcontext.Context
	if record && *opts.Headless {
		ctx, err = headless.New(*opts.Width, *opts.Height)
		if err != nil {
			return fmt.Errorf("failed to create headless context: %w", err)
		}
	} else {
		if err := glfwcontext.InitGraphics(); err != nil {
			return fmt.Errorf("failed to initialize glfw: %w", err)
		}
		defer glfwcontext.TerminateGraphics()

		// If recording, the window will be hidden
		win, err = glfwcontext.New(*opts.Width, *opts.Height, "glscene", !record)
		if err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}
		ctx = win
	}
	defer ctx.Shutdown()
	ctx.MakeCurrent()

	gl, err := glcore.Init()
	if err != nil {
		return err
	}

	now, frequency := ctx.Timer()
	if record {
		now, frequency = 0, renderer.RecordFrequency
	}
	g, err := game.New(cfg, now, frequency)
	if err != nil {
		return err
	}
	g.SetVsync(*opts.Vsync)
	ctx.SetVsync(g.Vsync())
	if win != nil {
		bindControls(win, g)
	}

	width, height := ctx.GetFramebufferSize()

	if mode == options.ModeTriangles {
		t, err := renderer.NewTriangles(gl, shaders, g, renderer.DemoTriangles(2))
		if err != nil {
			return err
		}
		defer t.Delete()
		t.Resize(width, height)
		win.OnResize(t.Resize)
		log.Println("Starting triangle demo...")
		t.Run(ctx)
		return nil
	}

	r, err := renderer.New(gl, shaders, g, width, height)
	if err != nil {
		return err
	}
	defer r.Delete()
	if win != nil {
		win.OnResize(r.Resize)
	}

	if !record {
		log.Println("Starting interactive render loop...")
		r.Run(ctx)
		return nil
	}

	w, h := r.Size()
	rec, err := encoder.Start(encoder.Config{
		Width:      w,
		Height:     h,
		FPS:        *opts.FPS,
		Output:     *opts.Output,
		FFmpegPath: *opts.FFmpeg,
		Codec:      *opts.Codec,
	}, encoder.FFmpeg)
	if err != nil {
		return err
	}
	if err := r.Record(rec, *opts.RecordFrames, *opts.FPS); err != nil {
		rec.Close()
		return err
	}
	if err := rec.Close(); err != nil {
		return err
	}
	log.Printf("Successfully rendered to %s", *opts.Output)
	return nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("glscene: retained-mode OpenGL scene viewer/recorder")
		flag.PrintDefaults()
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("Error: %s", describe(err))
	}
}

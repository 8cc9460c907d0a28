package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// Timer returns a monotonic counter and its rate in Hz.
	Timer() (value, frequency uint64)
	SetVsync(on bool)
}

// Input receives abstract input events from a Context.
type Input interface {
	MouseButton(down bool)
	MouseMoved(dx, dy float64)
}

package shader

import "fmt"

// ResourceLoadError reports a shader source that could not be read.
type ResourceLoadError struct {
	Name string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("failed to load resource %s: %v", e.Name, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// UnknownStageKindError reports a shader file name without a recognized suffix.
type UnknownStageKindError struct {
	Name string
}

func (e *UnknownStageKindError) Error() string {
	return fmt.Sprintf("cannot determine shader type for resource %s", e.Name)
}

// CompileError carries the complete compiler log of a failed stage.
type CompileError struct {
	Name  string
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader %s: %s", e.Stage, e.Name, e.Log)
}

// LinkError carries the complete linker log of a failed program.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program %s: %s", e.Name, e.Log)
}

// UniformNotFoundError reports a name with no active uniform in the program.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform with name %q not found", e.Name)
}

package shader

// Translation is a stage source rewritten for the running context.
type Translation struct {
	Code string
	// Uniforms maps each declared uniform name to its name in Code.
	Uniforms map[string]string
}

// Translator rewrites stage sources from one GLSL dialect to another.
type Translator interface {
	Translate(source string, stage Stage) (*Translation, error)
}

// Option configures resource loading.
type Option func(*config)

type config struct {
	translator Translator
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithTranslator passes every source through t before compiling it.
func WithTranslator(t Translator) Option {
	return func(c *config) { c.translator = t }
}

package render

// Renderer writes a use case result to the command output. Renderers that
// handle more than one result type expose named methods instead.
type Renderer[T any] interface {
	Render(result T) error
}

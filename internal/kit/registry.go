package kit

// Widget is a rendered component instance.
type Widget interface {
	View() string
}

// Factory builds a component instance from the owning kit and the
// already-merged props for that instance.
type Factory func(k *Kit, props Props) Widget

// Directive is a named behavioral transform applied to rendered
// output. Props carry the directive's own arguments.
type Directive func(content string, props Props) string

// Package options implements the generic functional-option plumbing shared by
// the histo configuration surfaces (reader, builder, renderer and facade).
//
// Packages alias Option[T] to their own option type and build concrete
// options with New (fallible) or NoError (infallible):
//
//	type ReadOption = options.Option[*ReadConfig]
//
//	func WithMaxLines(n int) ReadOption {
//	    return options.New(func(cfg *ReadConfig) error { ... })
//	}
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option[T].
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that can fail validation.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies options to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

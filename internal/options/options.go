// Package options provides a small generic functional-option helper shared
// by the codec's configuration surface.
package options

// Option mutates a target of type T, returning an error if the requested
// setting is invalid. It is a plain function type rather than a wrapper
// struct: any func(T) error value already is an Option, so callers never
// need to box one up just to satisfy the type.
type Option[T any] func(target T) error

// New builds an Option from a function that can reject its input.
func New[T any](fn func(T) error) Option[T] {
	return Option[T](fn)
}

// NoError builds an Option from a function that always succeeds.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)

		return nil
	}
}

// Apply runs every non-nil opt against target in order, stopping at the
// first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

package reactive

import "errors"

var (
	// ErrInvalidListener is returned when a nil function is supplied to
	// EffectRegistry.Add or AddGlobal.
	ErrInvalidListener = errors.New("reactive: listener is not callable")

	// ErrNilTemplate is returned when a component is constructed without a
	// template function.
	ErrNilTemplate = errors.New("reactive: component template is nil")
)

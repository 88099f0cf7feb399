package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrSurfaceUnavailable is returned when the game is started without a
// usable rendering surface.
var ErrSurfaceUnavailable = errors.New("rendering surface unavailable")

// InputError describes a pointer event the game refused to handle.
// The event is dropped and the tick continues.
type InputError struct {
	Event  core.PointerEvent
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s event at (%g, %g): %s", e.Event.Kind, e.Event.X, e.Event.Y, e.Reason)
}

// RenderError reports a failure of the rendering surface or a frontend.
// It is fatal.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

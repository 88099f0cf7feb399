package breakout

import (
	"github.com/charmbracelet/log"
)

// Phase is the Director's state.
type Phase int

const (
	PhaseReady           Phase = iota // Waiting for the first click
	PhasePlaying                      // Ball in play
	PhaseAwaitingRestart              // Life lost, waiting for a click
	PhaseWon                          // All bricks destroyed
	PhaseLost                         // No lives left
	PhaseClosed                       // Final click received
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseAwaitingRestart:
		return "awaiting-restart"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Director sequences the game between waiting for clicks, playing and the
// end screens. Transitions not listed for the current phase are ignored.
type Director struct {
	phase  Phase
	logger *log.Logger
}

// NewDirector starts in PhaseReady.
func NewDirector(logger *log.Logger) *Director {
	return &Director{phase: PhaseReady, logger: logger}
}

// Phase returns the current phase.
func (d *Director) Phase() Phase {
	return d.phase
}

// AwaitingClick reports whether the game is paused until the next click.
func (d *Director) AwaitingClick() bool {
	switch d.phase {
	case PhaseReady, PhaseAwaitingRestart, PhaseWon, PhaseLost:
		return true
	}
	return false
}

// Terminal reports whether play has ended, won or lost.
func (d *Director) Terminal() bool {
	return d.phase == PhaseWon || d.phase == PhaseLost || d.phase == PhaseClosed
}

// Done reports whether the final click has been received.
func (d *Director) Done() bool {
	return d.phase == PhaseClosed
}

// Click advances out of a waiting phase. It reports whether anything changed.
func (d *Director) Click() bool {
	switch d.phase {
	case PhaseReady, PhaseAwaitingRestart:
		d.transition(PhasePlaying)
	case PhaseWon, PhaseLost:
		d.transition(PhaseClosed)
	default:
		return false
	}
	return true
}

// LifeLost moves to PhaseAwaitingRestart, or PhaseLost when no lives remain.
func (d *Director) LifeLost(lives int) {
	if d.phase != PhasePlaying {
		return
	}
	if lives > 0 {
		d.transition(PhaseAwaitingRestart)
		return
	}
	d.transition(PhaseLost)
}

// Cleared moves to PhaseWon.
func (d *Director) Cleared() {
	if d.phase != PhasePlaying {
		return
	}
	d.transition(PhaseWon)
}

func (d *Director) transition(next Phase) {
	d.logger.Info("phase changed", "from", d.phase, "to", next)
	d.phase = next
}

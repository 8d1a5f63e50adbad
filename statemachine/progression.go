package statemachine

import (
	"fmt"

	"cafe-admin-api/models"
)

// Progression is a linear status sequence that may only move forward.
// Steps can be skipped; the last step is terminal.
type Progression[S ~string] struct {
	name  string
	steps []S
}

var (
	TicketProgression = Progression[models.TicketStatus]{
		name:  "ticket",
		steps: []models.TicketStatus{models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketClosed},
	}
	FeedbackProgression = Progression[models.FeedbackStatus]{
		name:  "feedback",
		steps: []models.FeedbackStatus{models.FeedbackNew, models.FeedbackReviewed, models.FeedbackResponded, models.FeedbackArchived},
	}
)

func (p Progression[S]) index(s S) int {
	for i, step := range p.steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the states reachable from s
func (p Progression[S]) Next(s S) []S {
	i := p.index(s)
	if i < 0 {
		return nil
	}
	out := make([]S, len(p.steps[i+1:]))
	copy(out, p.steps[i+1:])
	return out
}

// Terminal returns the final step
func (p Progression[S]) Terminal() S {
	return p.steps[len(p.steps)-1]
}

// Check reports whether from → to moves forward
func (p Progression[S]) Check(from, to S) error {
	fi, ti := p.index(from), p.index(to)
	if ti < 0 {
		return fmt.Errorf("%w: unknown %s status %q", ErrInvalidTransition, p.name, to)
	}
	if fi >= 0 && ti > fi {
		return nil
	}
	return fmt.Errorf("%w: %s %s → %s is not allowed. Valid transitions from %s are: %s",
		ErrInvalidTransition, p.name, from, to, from, describe(p.Next(from)))
}

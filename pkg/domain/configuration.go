package domain

import (
	"fmt"
	"unicode/utf8"
)

// Configuration is the atomic state of one computation branch: the tape to
// the left of the head (oldest cell first), the control state, and the tape
// from the head rightward. The first symbol of Right is the cell under the
// head; when Right is empty the head is over untouched tape, which reads as
// the blank symbol.
//
// The tape is conceptually infinite. Only cells that were written or read
// are materialized; everything beyond Left and Right is implicitly blank.
// Configurations are values and are never mutated: stepping one produces a
// brand-new Configuration.
type Configuration struct {
	Left  string `json:"left"`
	State string `json:"state"`
	Right string `json:"right"`
}

// InitialConfiguration places the head on the first symbol of input with an
// empty left tape.
func InitialConfiguration(start, input string) Configuration {
	return Configuration{State: start, Right: input}
}

// Head returns the symbol under the head, synthesizing blank when the head
// sits on tape that was never materialized.
func (c Configuration) Head(blank string) string {
	if c.Right == "" {
		return blank
	}
	_, size := utf8.DecodeRuneInString(c.Right)
	return c.Right[:size]
}

// Apply produces the successor configuration for one transition: the
// transition's write symbol is appended to the left tape, the head cell is
// consumed from the right tape (a blank is appended so the right tape keeps
// covering explored ground), and a Left move shifts the freshly written cell
// back onto the right tape.
func (c Configuration) Apply(t Transition, blank string) Configuration {
	left := c.Left + t.Write

	right := blank
	if c.Right != "" {
		_, size := utf8.DecodeRuneInString(c.Right)
		right = c.Right[size:] + blank
	}

	if t.Move == MoveLeft {
		// The write above guarantees left is non-empty here.
		r, size := utf8.DecodeLastRuneInString(left)
		left = left[:len(left)-size]
		right = string(r) + right
	}

	return Configuration{Left: left, State: t.To, Right: right}
}

// String renders the configuration in the canonical trace form, for example
// "(aa, q1, a_)".
func (c Configuration) String() string {
	return fmt.Sprintf("(%s, %s, %s)", c.Left, c.State, c.Right)
}

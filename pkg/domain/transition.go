package domain

// Move is the head shift performed after a transition writes its symbol.
type Move string

const (
	MoveLeft  Move = "L"
	MoveRight Move = "R"
)

// ParseMove maps a raw direction field to a Move. Only "L" selects a leftward
// shift; every other value collapses to MoveRight.
func ParseMove(s string) Move {
	if s == string(MoveLeft) {
		return MoveLeft
	}
	return MoveRight
}

// Transition defines one rewrite rule: in state From, reading Read under the
// head, write Write, shift the head by Move and enter state To.
//
// The machine keeps its transitions as an ordered list. Several transitions
// may share the same (From, Read) pair; when that happens every one of them
// fires, each spawning an independent computation branch.
type Transition struct {
	From  string `json:"from" yaml:"from"`
	Read  string `json:"read" yaml:"read"`
	To    string `json:"to" yaml:"to"`
	Write string `json:"write" yaml:"write"`
	Move  Move   `json:"move" yaml:"move"`
}

package game

import "slices"

// GameKey is an abstract control, independent of the physical key bound
// to it.
type GameKey int

const (
	RollModifier GameKey = iota
	Right
	Left
	Up
	Down
)

func (k GameKey) String() string {
	switch k {
	case RollModifier:
		return "RollModifier"
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return "GameKey(?)"
}

type keyGroup int

const (
	horizontal keyGroup = iota
	vertical
	modifiers
)

func (k GameKey) group() keyGroup {
	switch k {
	case Right, Left:
		return horizontal
	case Up, Down:
		return vertical
	default:
		return modifiers
	}
}

// KeyStack is the set of held keys in press order. Values are immutable;
// every operation returns a new stack.
type KeyStack struct {
	stack []GameKey
}

// Press pushes k unless it is already held.
func (s KeyStack) Press(k GameKey) KeyStack {
	if s.IsPressed(k) {
		return s
	}
	return KeyStack{stack: append(slices.Clone(s.stack), k)}
}

// Depress removes k wherever it is in the stack.
func (s KeyStack) Depress(k GameKey) KeyStack {
	return KeyStack{stack: slices.DeleteFunc(slices.Clone(s.stack), func(o GameKey) bool { return o == k })}
}

// Normalize keeps only the most recently pressed key of each group, in
// their original order. Holding Left then Right yields Right alone.
func (s KeyStack) Normalize() KeyStack {
	seen := make(map[keyGroup]bool)
	var kept []GameKey
	for i := len(s.stack) - 1; i >= 0; i-- {
		k := s.stack[i]
		if seen[k.group()] {
			continue
		}
		seen[k.group()] = true
		kept = append(kept, k)
	}
	slices.Reverse(kept)
	return KeyStack{stack: kept}
}

func (s KeyStack) IsPressed(k GameKey) bool { return slices.Contains(s.stack, k) }

// Keys returns the held keys, oldest first.
func (s KeyStack) Keys() []GameKey { return slices.Clone(s.stack) }

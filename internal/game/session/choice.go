package session

import "strings"

// Choice identifies what the player intends to do on their turn.
// The zero value (ChoiceUnknown) is intentionally invalid.
type Choice int

const (
	ChoiceUnknown Choice = iota // zero value; intentionally invalid
	ChoiceAttack
	ChoiceSpecial
	ChoiceRest
)

// String returns the human-readable name of the Choice.
func (c Choice) String() string {
	switch c {
	case ChoiceAttack:
		return "attack"
	case ChoiceSpecial:
		return "special"
	case ChoiceRest:
		return "rest"
	default:
		return "unknown"
	}
}

// ParseChoice maps raw player input to a Choice. Both menu numbers and
// action words are accepted. Unrecognized input maps to ChoiceUnknown,
// which consumes the turn with no effect.
func ParseChoice(input string) Choice {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "a", "attack":
		return ChoiceAttack
	case "2", "s", "special":
		return ChoiceSpecial
	case "3", "r", "rest":
		return ChoiceRest
	default:
		return ChoiceUnknown
	}
}

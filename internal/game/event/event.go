// Package event defines the structured narration events emitted by the combat
// engine. Core operations never print; they return events and a presentation
// adapter renders them.
package event

// Kind identifies what happened in a single combat event.
// The zero value (KindUnknown) is intentionally invalid.
type Kind int

const (
	KindUnknown       Kind = iota // zero value; intentionally invalid
	KindAttack                    // a standard attack was made
	KindAbility                   // a special ability was invoked
	KindDamage                    // a combatant's health was reduced
	KindDefeat                    // a combatant's health reached 0
	KindHeal                      // a combatant's health was restored
	KindNoEffect                  // a heal on a full-health combatant
	KindRest                      // the player rested
	KindInvalidChoice             // an unrecognized menu choice consumed the turn
	KindInvalidTarget             // a bad target index consumed the turn
	KindRoundStart                // a new round began
	KindOutcome                   // the session reached a terminal state
)

// String returns the human-readable name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAttack:
		return "attack"
	case KindAbility:
		return "ability"
	case KindDamage:
		return "damage"
	case KindDefeat:
		return "defeat"
	case KindHeal:
		return "heal"
	case KindNoEffect:
		return "no_effect"
	case KindRest:
		return "rest"
	case KindInvalidChoice:
		return "invalid_choice"
	case KindInvalidTarget:
		return "invalid_target"
	case KindRoundStart:
		return "round_start"
	case KindOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Event records one thing that happened during combat resolution.
//
// Amount carries the damage dealt or the actual health restored (post-clamp).
// Health and MaxHealth describe the subject's state after the event where
// that is meaningful (damage, defeat, heal).
type Event struct {
	Kind      Kind
	Actor     string // who acted; empty for session-level events
	Action    string // ability or action name, e.g. "Power Strike"
	Target    string // who was affected; empty when not targeted
	Amount    int
	Health    int
	MaxHealth int
	Crit      bool // the ability roll came up critical
	Failed    bool // the ability fizzled and fell back to a standard attack
	Narrative string
}

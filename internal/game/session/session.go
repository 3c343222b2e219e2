// Package session implements the combat session state machine: roster, turn
// order, target selection, and victory/defeat detection.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/duskhall/arena/internal/game/character"
	"github.com/duskhall/arena/internal/game/event"
	"github.com/duskhall/arena/internal/game/roll"
)

// State is the session lifecycle state.
type State int

const (
	InProgress State = iota
	Victory
	Defeat
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the session.
func (s State) Terminal() bool { return s == Victory || s == Defeat }

// Default tuning for session rules.
const (
	// DefaultRestHeal is the fixed amount the rest action restores.
	DefaultRestHeal = 15
	// DefaultSpecialOdds is the probability an enemy uses its special
	// ability instead of a standard attack on its turn.
	DefaultSpecialOdds = 1.0 / 3.0
)

// Session drives one combat from start to a terminal state.
//
// The player is never removed from the session, even at 0 HP; a dead player
// is the defeat signal. Defeated enemies are removed from the roster between
// turns and never reappear.
type Session struct {
	player      *character.Character
	enemies     []*character.Character
	state       State
	src         roll.Source
	logger      *zap.Logger
	restHeal    int
	specialOdds float64
	round       int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session's logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRestHeal overrides the fixed rest heal amount.
func WithRestHeal(amount int) Option {
	return func(s *Session) { s.restHeal = amount }
}

// WithSpecialOdds overrides the probability that an enemy uses its special
// ability on its turn.
func WithSpecialOdds(p float64) Option {
	return func(s *Session) { s.specialOdds = p }
}

// NewSession creates a combat session in the InProgress state.
//
// Precondition: player and src must be non-nil; enemies is the initial roster
// in turn order.
func NewSession(player *character.Character, enemies []*character.Character, src roll.Source, opts ...Option) *Session {
	s := &Session{
		player:      player,
		enemies:     enemies,
		state:       InProgress,
		src:         src,
		logger:      zap.NewNop(),
		restHeal:    DefaultRestHeal,
		specialOdds: DefaultSpecialOdds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Player returns the player character.
func (s *Session) Player() *character.Character { return s.player }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Round returns the current round number, starting at 0 before the first
// BeginRound call.
func (s *Session) Round() int { return s.round }

// LivingEnemies returns the living enemies in stable roster order. The
// returned slice is a snapshot; mutating it does not affect the roster.
//
// Postcondition: Every returned enemy has IsAlive() == true.
func (s *Session) LivingEnemies() []*character.Character {
	alive := make([]*character.Character, 0, len(s.enemies))
	for _, e := range s.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// BeginRound advances the round counter and emits the round banner event.
// Returns nil once the session is terminal.
func (s *Session) BeginRound() []event.Event {
	if s.state.Terminal() {
		return nil
	}
	s.round++
	s.logger.Debug("round started",
		zap.Int("round", s.round),
		zap.Int("living_enemies", len(s.LivingEnemies())),
	)
	return []event.Event{{
		Kind:      event.KindRoundStart,
		Amount:    s.round,
		Narrative: fmt.Sprintf("--- Round %d ---", s.round),
	}}
}

// PlayerAction resolves the player's turn. targetIndex is a 1-based index
// into LivingEnemies() and is ignored for ChoiceRest.
//
// Invalid input never fails hard: an unrecognized choice or a bad target
// index consumes the turn and yields a single informational event.
// After the action, defeated enemies are removed from the roster and the
// victory condition is re-checked, so a winning blow transitions the session
// before any enemy acts.
//
// Postcondition: Returns nil iff the session was already terminal.
func (s *Session) PlayerAction(choice Choice, targetIndex int) []event.Event {
	if s.state.Terminal() {
		return nil
	}

	var events []event.Event
	switch choice {
	case ChoiceAttack, ChoiceSpecial:
		living := s.LivingEnemies()
		target, ev := s.selectTarget(living, targetIndex)
		if target == nil {
			events = []event.Event{ev}
			break
		}
		if choice == ChoiceAttack {
			events = s.player.Attack(target)
		} else {
			events = s.player.UseSpecial(target, s.src)
		}
	case ChoiceRest:
		events = []event.Event{{
			Kind:      event.KindRest,
			Actor:     s.player.Name(),
			Amount:    s.restHeal,
			Narrative: fmt.Sprintf("%s takes a moment to rest.", s.player.Name()),
		}}
		events = append(events, s.player.Heal(s.restHeal)...)
	default:
		events = []event.Event{{
			Kind:      event.KindInvalidChoice,
			Actor:     s.player.Name(),
			Narrative: fmt.Sprintf("%s hesitates, unsure what to do. The turn is wasted.", s.player.Name()),
		}}
	}

	s.removeDefeated()
	s.CheckOutcome()
	return events
}

// selectTarget resolves a 1-based index into living. On failure it returns a
// nil target and the invalid-target event to emit.
func (s *Session) selectTarget(living []*character.Character, targetIndex int) (*character.Character, event.Event) {
	if len(living) == 0 {
		return nil, event.Event{
			Kind:      event.KindInvalidTarget,
			Actor:     s.player.Name(),
			Narrative: "There is nothing left to fight.",
		}
	}
	if targetIndex < 1 || targetIndex > len(living) {
		return nil, event.Event{
			Kind:      event.KindInvalidTarget,
			Actor:     s.player.Name(),
			Narrative: fmt.Sprintf("%s swings at empty air. The turn is wasted.", s.player.Name()),
		}
	}
	return living[targetIndex-1], event.Event{}
}

// EnemyRound resolves the enemy turn. A snapshot of living enemies is taken
// at the start; each acts once in roster order, using its special with
// probability specialOdds and a standard attack otherwise. If the player dies
// mid-sequence the remaining enemies are skipped.
//
// Postcondition: Returns nil iff the session was already terminal.
func (s *Session) EnemyRound() []event.Event {
	if s.state.Terminal() {
		return nil
	}

	var events []event.Event
	for _, enemy := range s.LivingEnemies() {
		if !s.player.IsAlive() {
			break
		}
		if roll.Chance(s.src, s.specialOdds) {
			events = append(events, enemy.UseSpecial(s.player, s.src)...)
		} else {
			events = append(events, enemy.Attack(s.player)...)
		}
	}

	s.CheckOutcome()
	return events
}

// CheckOutcome evaluates and returns the session state. Defeat wins over
// victory: a dead player ends the session regardless of the roster. Terminal
// states are sticky.
func (s *Session) CheckOutcome() State {
	if s.state.Terminal() {
		return s.state
	}
	switch {
	case !s.player.IsAlive():
		s.state = Defeat
	case len(s.LivingEnemies()) == 0:
		s.state = Victory
	}
	if s.state.Terminal() {
		s.logger.Info("combat resolved",
			zap.Stringer("outcome", s.state),
			zap.Int("rounds", s.round),
			zap.Int("player_hp", s.player.CurrentHealth()),
		)
	}
	return s.state
}

// OutcomeEvent returns the terminal narration event for the current state,
// or a zero event while the session is still in progress.
func (s *Session) OutcomeEvent() event.Event {
	switch s.state {
	case Victory:
		return event.Event{
			Kind:      event.KindOutcome,
			Actor:     s.player.Name(),
			Narrative: fmt.Sprintf("%s stands victorious over the arena!", s.player.Name()),
		}
	case Defeat:
		return event.Event{
			Kind:      event.KindOutcome,
			Actor:     s.player.Name(),
			Failed:    true,
			Narrative: fmt.Sprintf("%s has fallen. The arena claims another soul.", s.player.Name()),
		}
	default:
		return event.Event{}
	}
}

// removeDefeated drops dead enemies from the roster, preserving order.
// Idempotent; a removed enemy never reappears.
func (s *Session) removeDefeated() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.IsAlive() {
			kept = append(kept, e)
		} else {
			s.logger.Debug("enemy removed from roster", zap.String("name", e.Name()), zap.String("id", e.ID()))
		}
	}
	s.enemies = kept
}

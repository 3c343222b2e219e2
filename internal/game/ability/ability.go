// Package ability implements the special-ability strategies used in combat.
// Each ability is stateless per invocation: it computes a damage value from
// the attacker's stats and applies it to the target.
package ability

import (
	"fmt"

	"github.com/duskhall/arena/internal/game/event"
	"github.com/duskhall/arena/internal/game/roll"
)

// Tuning constants for the stock abilities.
const (
	PowerStrikeBonus    = 12
	SneakStabBonus      = 8
	SmashCritChance     = 0.25
	SmashCritMultiplier = 2
)

// Combatant is the subset of the character model an ability needs.
// Using a local interface avoids a circular import with the character package.
type Combatant interface {
	// Name returns the combatant's display name.
	Name() string
	// BaseDamage returns the combatant's base damage stat.
	BaseDamage() int
	// TakeDamage applies amount to the combatant and returns the resulting events.
	TakeDamage(amount int) []event.Event
}

// Ability computes and applies a damage effect from an attacker to a target.
// Parameters are fixed at construction time and immutable.
type Ability interface {
	// Name returns the ability's display name.
	Name() string
	// Invoke applies the ability from attacker to target, drawing any rolls
	// from src, and returns the narration events in order.
	//
	// Precondition: attacker, target, and src must be non-nil.
	Invoke(attacker, target Combatant, src roll.Source) []event.Event
}

// PowerStrike deals the attacker's base damage plus a flat bonus.
// It always triggers when invoked.
type PowerStrike struct {
	Bonus int
}

// NewPowerStrike returns a PowerStrike with the stock bonus.
func NewPowerStrike() *PowerStrike {
	return &PowerStrike{Bonus: PowerStrikeBonus}
}

// Name returns "Power Strike".
func (a *PowerStrike) Name() string { return "Power Strike" }

// Invoke deals attacker.BaseDamage() + Bonus to target.
//
// Postcondition: The first event is the ability narration; the target's
// damage events follow.
func (a *PowerStrike) Invoke(attacker, target Combatant, _ roll.Source) []event.Event {
	dmg := attacker.BaseDamage() + a.Bonus
	events := []event.Event{{
		Kind:      event.KindAbility,
		Actor:     attacker.Name(),
		Action:    a.Name(),
		Target:    target.Name(),
		Amount:    dmg,
		Narrative: fmt.Sprintf("%s unleashes a %s on %s!", attacker.Name(), a.Name(), target.Name()),
	}}
	return append(events, target.TakeDamage(dmg)...)
}

// SneakStab deals the attacker's base damage plus a flat bonus.
type SneakStab struct {
	Bonus int
}

// NewSneakStab returns a SneakStab with the stock bonus.
func NewSneakStab() *SneakStab {
	return &SneakStab{Bonus: SneakStabBonus}
}

// Name returns "Sneaky Stab".
func (a *SneakStab) Name() string { return "Sneaky Stab" }

// Invoke deals attacker.BaseDamage() + Bonus to target.
func (a *SneakStab) Invoke(attacker, target Combatant, _ roll.Source) []event.Event {
	dmg := attacker.BaseDamage() + a.Bonus
	events := []event.Event{{
		Kind:      event.KindAbility,
		Actor:     attacker.Name(),
		Action:    a.Name(),
		Target:    target.Name(),
		Amount:    dmg,
		Narrative: fmt.Sprintf("%s lands a %s on %s!", attacker.Name(), a.Name(), target.Name()),
	}}
	return append(events, target.TakeDamage(dmg)...)
}

// Smash deals the attacker's base damage, multiplied on a critical roll.
type Smash struct {
	CritChance     float64
	CritMultiplier int
}

// NewSmash returns a Smash with the stock crit chance and multiplier.
func NewSmash() *Smash {
	return &Smash{CritChance: SmashCritChance, CritMultiplier: SmashCritMultiplier}
}

// Name returns "Smash".
func (a *Smash) Name() string { return "Smash" }

// Invoke rolls CritChance: on a crit, damage is BaseDamage() * CritMultiplier
// and the narration carries the Crit flag; otherwise damage is plain
// BaseDamage().
func (a *Smash) Invoke(attacker, target Combatant, src roll.Source) []event.Event {
	dmg := attacker.BaseDamage()
	crit := roll.Chance(src, a.CritChance)
	narrative := fmt.Sprintf("%s smashes %s!", attacker.Name(), target.Name())
	if crit {
		dmg *= a.CritMultiplier
		narrative = fmt.Sprintf("%s lands a CRITICAL %s on %s!", attacker.Name(), a.Name(), target.Name())
	}
	events := []event.Event{{
		Kind:      event.KindAbility,
		Actor:     attacker.Name(),
		Action:    a.Name(),
		Target:    target.Name(),
		Amount:    dmg,
		Crit:      crit,
		Narrative: narrative,
	}}
	return append(events, target.TakeDamage(dmg)...)
}

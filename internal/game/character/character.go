// Package character defines the combat unit model: health, damage stat,
// alive/dead status, and the universal operations plus a variant-specific
// special ability bound at construction time.
package character

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/duskhall/arena/internal/game/ability"
	"github.com/duskhall/arena/internal/game/event"
	"github.com/duskhall/arena/internal/game/roll"
)

// Character is one combat unit.
//
// Invariant: 0 <= currentHealth <= maxHealth at all times; every mutation
// clamps to this range. A Character is created at full health.
type Character struct {
	id            string
	name          string
	maxHealth     int
	currentHealth int
	damage        int
	special       ability.Ability
	specialChance float64
}

// Config describes a Character to create. Special ability parameters are
// fixed per variant and immutable after construction.
type Config struct {
	Name string
	// MaxHealth is the unit's health ceiling. Must be >= 1.
	MaxHealth int
	// Damage is the unit's base damage stat. Must be >= 0.
	Damage int
	// Special is the bound special ability. Must be non-nil.
	Special ability.Ability
	// SpecialChance is the probability in [0, 1] that UseSpecial executes the
	// bound ability rather than falling back to a standard attack.
	SpecialChance float64
}

// New creates a Character from cfg at full health.
//
// Postcondition: CurrentHealth() == MaxHealth(); IsAlive() is true.
func New(cfg Config) (*Character, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("character: name must not be empty")
	}
	if cfg.MaxHealth < 1 {
		return nil, fmt.Errorf("character %q: max health must be >= 1, got %d", cfg.Name, cfg.MaxHealth)
	}
	if cfg.Damage < 0 {
		return nil, fmt.Errorf("character %q: damage must be >= 0, got %d", cfg.Name, cfg.Damage)
	}
	if cfg.Special == nil {
		return nil, fmt.Errorf("character %q: special ability must not be nil", cfg.Name)
	}
	if cfg.SpecialChance < 0 || cfg.SpecialChance > 1 {
		return nil, fmt.Errorf("character %q: special chance must be in [0, 1], got %g", cfg.Name, cfg.SpecialChance)
	}
	return &Character{
		id:            uuid.New().String(),
		name:          cfg.Name,
		maxHealth:     cfg.MaxHealth,
		currentHealth: cfg.MaxHealth,
		damage:        cfg.Damage,
		special:       cfg.Special,
		specialChance: cfg.SpecialChance,
	}, nil
}

// ID returns the unique instance identifier.
func (c *Character) ID() string { return c.id }

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// MaxHealth returns the health ceiling.
func (c *Character) MaxHealth() int { return c.maxHealth }

// CurrentHealth returns the current health.
//
// Postcondition: 0 <= result <= MaxHealth().
func (c *Character) CurrentHealth() int { return c.currentHealth }

// BaseDamage returns the base damage stat.
func (c *Character) BaseDamage() int { return c.damage }

// SpecialName returns the display name of the bound special ability.
func (c *Character) SpecialName() string { return c.special.Name() }

// IsAlive reports whether the character can still act.
//
// Postcondition: Returns true iff CurrentHealth() > 0.
func (c *Character) IsAlive() bool { return c.currentHealth > 0 }

// TakeDamage reduces current health by amount, flooring at zero.
// Negative amounts are clamped to 0. No-op (returns nil) when not alive.
//
// Postcondition: 0 <= CurrentHealth() <= MaxHealth(). Emits a damage event
// with the resulting health, followed by a defeat event if health reached 0.
func (c *Character) TakeDamage(amount int) []event.Event {
	if !c.IsAlive() {
		return nil
	}
	if amount < 0 {
		amount = 0
	}
	c.currentHealth -= amount
	if c.currentHealth < 0 {
		c.currentHealth = 0
	}
	events := []event.Event{{
		Kind:      event.KindDamage,
		Actor:     c.name,
		Amount:    amount,
		Health:    c.currentHealth,
		MaxHealth: c.maxHealth,
		Narrative: fmt.Sprintf("%s takes %d damage. (%d/%d HP)", c.name, amount, c.currentHealth, c.maxHealth),
	}}
	if c.currentHealth == 0 {
		events = append(events, event.Event{
			Kind:      event.KindDefeat,
			Actor:     c.name,
			Health:    0,
			MaxHealth: c.maxHealth,
			Narrative: fmt.Sprintf("%s has been defeated!", c.name),
		})
	}
	return events
}

// Heal restores up to amount health, capping at MaxHealth().
// Negative amounts are clamped to 0. No-op (returns nil) when not alive.
//
// Postcondition: 0 <= CurrentHealth() <= MaxHealth(). The heal event carries
// the actual amount restored after clamping; a character already at full
// health gets a no-effect event instead.
func (c *Character) Heal(amount int) []event.Event {
	if !c.IsAlive() {
		return nil
	}
	if amount < 0 {
		amount = 0
	}
	healed := amount
	if c.currentHealth+healed > c.maxHealth {
		healed = c.maxHealth - c.currentHealth
	}
	if healed == 0 {
		narrative := fmt.Sprintf("%s feels no better.", c.name)
		if c.currentHealth == c.maxHealth {
			narrative = fmt.Sprintf("%s is already at full health.", c.name)
		}
		return []event.Event{{
			Kind:      event.KindNoEffect,
			Actor:     c.name,
			Health:    c.currentHealth,
			MaxHealth: c.maxHealth,
			Narrative: narrative,
		}}
	}
	c.currentHealth += healed
	return []event.Event{{
		Kind:      event.KindHeal,
		Actor:     c.name,
		Amount:    healed,
		Health:    c.currentHealth,
		MaxHealth: c.maxHealth,
		Narrative: fmt.Sprintf("%s recovers %d HP. (%d/%d HP)", c.name, healed, c.currentHealth, c.maxHealth),
	}}
}

// Attack performs a standard attack, applying this character's base damage
// to target.
//
// Precondition: target must be non-nil.
// Postcondition: The first event is the attack narration; the target's damage
// events follow.
func (c *Character) Attack(target *Character) []event.Event {
	events := []event.Event{{
		Kind:      event.KindAttack,
		Actor:     c.name,
		Target:    target.name,
		Amount:    c.damage,
		Narrative: fmt.Sprintf("%s attacks %s!", c.name, target.name),
	}}
	return append(events, target.TakeDamage(c.damage)...)
}

// UseSpecial attempts the bound special ability against target.
// With probability specialChance the ability executes; otherwise the attempt
// fizzles and the character falls back to a standard attack, preceded by a
// failure narration.
//
// Precondition: target and src must be non-nil.
func (c *Character) UseSpecial(target *Character, src roll.Source) []event.Event {
	if !roll.Chance(src, c.specialChance) {
		events := []event.Event{{
			Kind:      event.KindAbility,
			Actor:     c.name,
			Action:    c.special.Name(),
			Target:    target.name,
			Failed:    true,
			Narrative: fmt.Sprintf("%s botches the %s and swings wildly instead!", c.name, c.special.Name()),
		}}
		return append(events, c.Attack(target)...)
	}
	return c.special.Invoke(c, target, src)
}

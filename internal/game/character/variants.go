package character

import "github.com/duskhall/arena/internal/game/ability"

// Base stats for the stock character variants.
const (
	PlayerMaxHealth = 120
	PlayerDamage    = 18

	GoblinMaxHealth     = 60
	GoblinDamage        = 10
	GoblinSpecialChance = 0.5

	TrollMaxHealth = 110
	TrollDamage    = 16
)

// NewPlayer creates the player character: 120 HP, 18 damage, Power Strike.
// The special always triggers.
//
// Precondition: name must be non-empty.
func NewPlayer(name string) (*Character, error) {
	return New(Config{
		Name:          name,
		MaxHealth:     PlayerMaxHealth,
		Damage:        PlayerDamage,
		Special:       ability.NewPowerStrike(),
		SpecialChance: 1,
	})
}

// NewGoblin creates a goblin: 60 HP, 10 damage, Sneaky Stab.
// The special triggers half the time; otherwise the goblin falls back to a
// standard attack.
func NewGoblin(name string) (*Character, error) {
	return New(Config{
		Name:          name,
		MaxHealth:     GoblinMaxHealth,
		Damage:        GoblinDamage,
		Special:       ability.NewSneakStab(),
		SpecialChance: GoblinSpecialChance,
	})
}

// NewTroll creates a troll: 110 HP, 16 damage, Smash.
// The special always triggers; Smash rolls for its own crit internally.
func NewTroll(name string) (*Character, error) {
	return New(Config{
		Name:          name,
		MaxHealth:     TrollMaxHealth,
		Damage:        TrollDamage,
		Special:       ability.NewSmash(),
		SpecialChance: 1,
	})
}

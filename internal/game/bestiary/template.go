// Package bestiary provides enemy archetype definitions loaded from YAML and
// the spawning of live characters from them.
package bestiary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duskhall/arena/internal/game/ability"
	"github.com/duskhall/arena/internal/game/character"
)

// Ability identifiers accepted in templates.
const (
	AbilityPowerStrike = "power_strike"
	AbilitySneakStab   = "sneak_stab"
	AbilitySmash       = "smash"
)

// Template defines a reusable enemy archetype loaded from YAML.
type Template struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MaxHP       int    `yaml:"max_hp"`
	Damage      int    `yaml:"damage"`
	// Ability is the special ability identifier: power_strike, sneak_stab,
	// or smash.
	Ability string `yaml:"ability"`
	// SpecialChance is the probability the special triggers on use; nil
	// means it always triggers.
	SpecialChance *float64 `yaml:"special_chance"`
	// Count is how many instances of this archetype join the roster.
	// Zero defaults to 1.
	Count int `yaml:"count"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, MaxHP >= 1,
// Damage >= 0, Ability is a known identifier, SpecialChance (when set) is in
// [0, 1], and Count >= 1; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("bestiary template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("bestiary template %q: name must not be empty", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("bestiary template %q: max_hp must be >= 1, got %d", t.ID, t.MaxHP)
	}
	if t.Damage < 0 {
		return fmt.Errorf("bestiary template %q: damage must be >= 0, got %d", t.ID, t.Damage)
	}
	if _, err := abilityFor(t.Ability); err != nil {
		return fmt.Errorf("bestiary template %q: %w", t.ID, err)
	}
	if t.SpecialChance != nil && (*t.SpecialChance < 0 || *t.SpecialChance > 1) {
		return fmt.Errorf("bestiary template %q: special_chance must be in [0, 1], got %g", t.ID, *t.SpecialChance)
	}
	if t.Count < 1 {
		return fmt.Errorf("bestiary template %q: count must be >= 1, got %d", t.ID, t.Count)
	}
	return nil
}

// abilityFor maps an ability identifier to a fresh strategy instance.
func abilityFor(id string) (ability.Ability, error) {
	switch id {
	case AbilityPowerStrike:
		return ability.NewPowerStrike(), nil
	case AbilitySneakStab:
		return ability.NewSneakStab(), nil
	case AbilitySmash:
		return ability.NewSmash(), nil
	default:
		return nil, fmt.Errorf("unknown ability %q", id)
	}
}

// specialChance returns the effective trigger probability: 1 when unset.
func (t *Template) specialChance() float64 {
	if t.SpecialChance == nil {
		return 1
	}
	return *t.SpecialChance
}

// Spawn creates one live character from the template, named name.
//
// Precondition: t must have passed Validate.
// Postcondition: The character starts at full health with the named ability
// bound.
func (t *Template) Spawn(name string) (*character.Character, error) {
	special, err := abilityFor(t.Ability)
	if err != nil {
		return nil, fmt.Errorf("spawning %q: %w", t.ID, err)
	}
	return character.New(character.Config{
		Name:          name,
		MaxHealth:     t.MaxHP,
		Damage:        t.Damage,
		Special:       special,
		SpecialChance: t.specialChance(),
	})
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template with Count >= 1, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if tmpl.Count == 0 {
		tmpl.Count = 1
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// templates sorted by file name, so roster order is stable across runs.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bestiary dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// SpawnRoster flattens templates into live characters in template order.
// Instances of a template with Count > 1 get numbered names ("Goblin 1").
//
// Postcondition: The returned slice preserves template order; every
// character starts at full health.
func SpawnRoster(templates []*Template) ([]*character.Character, error) {
	var roster []*character.Character
	for _, tmpl := range templates {
		for i := 0; i < tmpl.Count; i++ {
			name := tmpl.Name
			if tmpl.Count > 1 {
				name = fmt.Sprintf("%s %d", tmpl.Name, i+1)
			}
			c, err := tmpl.Spawn(name)
			if err != nil {
				return nil, err
			}
			roster = append(roster, c)
		}
	}
	return roster, nil
}

// DefaultRoster returns the stock arena lineup — one goblin and one troll —
// used when no bestiary directory is configured.
func DefaultRoster() ([]*character.Character, error) {
	goblin, err := character.NewGoblin("Goblin")
	if err != nil {
		return nil, err
	}
	troll, err := character.NewTroll("Troll")
	if err != nil {
		return nil, err
	}
	return []*character.Character{goblin, troll}, nil
}

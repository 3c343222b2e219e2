package console

import (
	"fmt"
	"strings"

	"github.com/duskhall/arena/internal/game/character"
	"github.com/duskhall/arena/internal/game/event"
)

// barWidth is the cell count of rendered health bars.
const barWidth = 20

// Renderer formats engine state and events as terminal text.
// With color disabled every method returns plain text.
type Renderer struct {
	color bool
}

// NewRenderer creates a Renderer. color toggles ANSI styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// paint wraps text in color when styling is enabled.
func (r *Renderer) paint(color, text string) string {
	if !r.color {
		return text
	}
	return Colorize(color, text)
}

// Status renders the player and all living enemies with health bars.
// Enemies are numbered to match the 1-based target selection order.
func (r *Renderer) Status(player *character.Character, enemies []*character.Character) string {
	var b strings.Builder
	b.WriteString(r.paint(Bold, player.Name()))
	b.WriteString("  ")
	b.WriteString(r.bar(player))
	b.WriteString("\n")
	for i, e := range enemies {
		b.WriteString(fmt.Sprintf("  %d) %-12s %s\n", i+1, e.Name(), r.bar(e)))
	}
	return b.String()
}

func (r *Renderer) bar(c *character.Character) string {
	bar := HealthBar(c.CurrentHealth(), c.MaxHealth(), barWidth)
	if !r.color {
		return bar
	}
	return Colorize(healthColor(c.CurrentHealth(), c.MaxHealth()), bar)
}

// Menu renders the player's action menu.
func (r *Renderer) Menu(player *character.Character) string {
	return fmt.Sprintf("%s\n  1) Attack  2) %s  3) Rest\n%s",
		r.paint(Cyan, "Choose your action:"),
		player.SpecialName(),
		r.paint(Cyan, "> "),
	)
}

// TargetPrompt renders the target selection prompt.
func (r *Renderer) TargetPrompt() string {
	return r.paint(Cyan, "Target? > ")
}

// Event renders one combat event as a colored line.
func (r *Renderer) Event(ev event.Event) string {
	switch ev.Kind {
	case event.KindRoundStart:
		return r.paint(BrightWhite, ev.Narrative)
	case event.KindAttack:
		return r.paint(White, ev.Narrative)
	case event.KindAbility:
		if ev.Failed {
			return r.paint(Dim, ev.Narrative)
		}
		if ev.Crit {
			return r.paint(BrightYellow, ev.Narrative)
		}
		return r.paint(Magenta, ev.Narrative)
	case event.KindDamage:
		return r.paint(Red, ev.Narrative)
	case event.KindDefeat:
		return r.paint(BrightRed, ev.Narrative)
	case event.KindHeal, event.KindRest:
		return r.paint(Green, ev.Narrative)
	case event.KindNoEffect, event.KindInvalidChoice, event.KindInvalidTarget:
		return r.paint(Dim, ev.Narrative)
	case event.KindOutcome:
		if ev.Failed {
			return r.paint(BrightRed, ev.Narrative)
		}
		return r.paint(BrightGreen, ev.Narrative)
	default:
		return ev.Narrative
	}
}

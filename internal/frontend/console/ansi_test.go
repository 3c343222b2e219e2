package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/duskhall/arena/internal/frontend/console"
)

func TestColorize(t *testing.T) {
	got := console.Colorize(console.Red, "ouch")
	assert.Equal(t, "\033[31mouch\033[0m", got)
}

func TestColorf(t *testing.T) {
	got := console.Colorf(console.Green, "%d HP", 15)
	assert.Equal(t, "\033[32m15 HP\033[0m", got)
}

func TestStripANSI(t *testing.T) {
	styled := console.Colorize(console.BrightYellow, "crit!") + " " + console.Colorize(console.Dim, "meh")
	assert.Equal(t, "crit! meh", console.StripANSI(styled))
}

func TestStripANSI_PlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "no codes here", console.StripANSI("no codes here"))
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		current, max int
		want         string
	}{
		{60, 60, "[####################] 60/60"},
		{30, 60, "[##########----------] 30/60"},
		{0, 60, "[--------------------] 0/60"},
		{1, 120, "[#-------------------] 1/120"}, // alive always shows a sliver
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, console.HealthBar(tc.current, tc.max, 20), "%d/%d", tc.current, tc.max)
	}
}

func TestHealthBar_Property_WidthStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		max := rapid.IntRange(1, 500).Draw(rt, "max")
		current := rapid.IntRange(0, max).Draw(rt, "current")
		width := rapid.IntRange(1, 60).Draw(rt, "width")

		bar := console.HealthBar(current, max, width)
		// The bracketed section is always exactly width cells.
		assert.Equal(rt, width, len(bar[1:width+1]))
		assert.Equal(rt, byte('['), bar[0])
		assert.Equal(rt, byte(']'), bar[width+1])
	})
}

func TestColorize_Property_StripInverts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 !.]*`).Draw(rt, "text")
		styled := console.Colorize(console.Magenta, text)
		assert.Equal(rt, text, console.StripANSI(styled))
	})
}

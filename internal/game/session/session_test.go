package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskhall/arena/internal/game/character"
	"github.com/duskhall/arena/internal/game/event"
	"github.com/duskhall/arena/internal/game/session"
)

// fixedSrc is a deterministic Source for testing. It returns val for every
// Intn call regardless of the bound. A val of 0 forces every probability
// roll to succeed; a val of 999_999 forces every roll to fail.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(_ int) int { return f.val }

const (
	alwaysRoll = 0
	neverRoll  = 999_999
)

func mustPlayer(t *testing.T) *character.Character {
	t.Helper()
	p, err := character.NewPlayer("Hero")
	require.NoError(t, err)
	return p
}

func mustGoblin(t *testing.T, name string) *character.Character {
	t.Helper()
	g, err := character.NewGoblin(name)
	require.NoError(t, err)
	return g
}

func mustTroll(t *testing.T) *character.Character {
	t.Helper()
	tr, err := character.NewTroll("Troll")
	require.NoError(t, err)
	return tr
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  session.Choice
	}{
		{"1", session.ChoiceAttack},
		{"a", session.ChoiceAttack},
		{"Attack", session.ChoiceAttack},
		{"2", session.ChoiceSpecial},
		{" special ", session.ChoiceSpecial},
		{"3", session.ChoiceRest},
		{"REST", session.ChoiceRest},
		{"", session.ChoiceUnknown},
		{"fireball", session.ChoiceUnknown},
		{"0", session.ChoiceUnknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, session.ParseChoice(tc.input), "input %q", tc.input)
	}
}

func TestState_Strings(t *testing.T) {
	assert.Equal(t, "in progress", session.InProgress.String())
	assert.Equal(t, "victory", session.Victory.String())
	assert.Equal(t, "defeat", session.Defeat.String())
	assert.False(t, session.InProgress.Terminal())
	assert.True(t, session.Victory.Terminal())
	assert.True(t, session.Defeat.Terminal())
}

func TestNewSession_StartsInProgress(t *testing.T) {
	s := session.NewSession(mustPlayer(t), []*character.Character{mustGoblin(t, "Goblin")}, fixedSrc{})
	assert.Equal(t, session.InProgress, s.State())
	assert.Equal(t, 0, s.Round())
	assert.Len(t, s.LivingEnemies(), 1)
}

func TestBeginRound_IncrementsAndNarrates(t *testing.T) {
	s := session.NewSession(mustPlayer(t), []*character.Character{mustGoblin(t, "Goblin")}, fixedSrc{})
	events := s.BeginRound()
	require.Len(t, events, 1)
	assert.Equal(t, event.KindRoundStart, events[0].Kind)
	assert.Equal(t, 1, events[0].Amount)
	assert.Equal(t, 1, s.Round())
}

func TestPlayerAction_InvalidChoiceConsumesTurn(t *testing.T) {
	g := mustGoblin(t, "Goblin")
	s := session.NewSession(mustPlayer(t), []*character.Character{g}, fixedSrc{val: neverRoll})

	events := s.PlayerAction(session.ChoiceUnknown, 1)
	require.Len(t, events, 1)
	assert.Equal(t, event.KindInvalidChoice, events[0].Kind)
	assert.Equal(t, 60, g.CurrentHealth(), "a wasted turn must not deal damage")
	assert.Equal(t, session.InProgress, s.State())
}

func TestPlayerAction_OutOfRangeTargetConsumesTurn(t *testing.T) {
	g := mustGoblin(t, "Goblin")
	s := session.NewSession(mustPlayer(t), []*character.Character{g}, fixedSrc{val: neverRoll})

	for _, idx := range []int{0, -1, 2, 99} {
		events := s.PlayerAction(session.ChoiceAttack, idx)
		require.Len(t, events, 1, "index %d", idx)
		assert.Equal(t, event.KindInvalidTarget, events[0].Kind)
	}
	assert.Equal(t, 60, g.CurrentHealth())
}

func TestPlayerAction_AttackHitsSelectedTarget(t *testing.T) {
	g1 := mustGoblin(t, "Grik")
	g2 := mustGoblin(t, "Snag")
	s := session.NewSession(mustPlayer(t), []*character.Character{g1, g2}, fixedSrc{val: neverRoll})

	s.PlayerAction(session.ChoiceAttack, 2)
	assert.Equal(t, 60, g1.CurrentHealth())
	assert.Equal(t, 42, g2.CurrentHealth(), "1-based index 2 must hit the second living enemy")
}

func TestPlayerAction_SpecialUsesPowerStrike(t *testing.T) {
	g := mustGoblin(t, "Goblin")
	s := session.NewSession(mustPlayer(t), []*character.Character{g}, fixedSrc{val: neverRoll})

	s.PlayerAction(session.ChoiceSpecial, 1)
	assert.Equal(t, 60-30, g.CurrentHealth(), "Power Strike deals 18+12")
}

func TestPlayerAction_RestHealsFixedAmount(t *testing.T) {
	p := mustPlayer(t)
	p.TakeDamage(40)
	s := session.NewSession(p, []*character.Character{mustGoblin(t, "Goblin")}, fixedSrc{val: neverRoll})

	events := s.PlayerAction(session.ChoiceRest, 0)
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, event.KindRest, events[0].Kind)
	assert.Equal(t, event.KindHeal, events[1].Kind)
	assert.Equal(t, 15, events[1].Amount)
	assert.Equal(t, 95, p.CurrentHealth())
}

func TestPlayerAction_RestAtFullHealthNoEffect(t *testing.T) {
	s := session.NewSession(mustPlayer(t), []*character.Character{mustGoblin(t, "Goblin")}, fixedSrc{val: neverRoll})

	events := s.PlayerAction(session.ChoiceRest, 0)
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, event.KindNoEffect, events[1].Kind)
}

func TestVictory_DetectedBeforeEnemyTurn(t *testing.T) {
	g := mustGoblin(t, "Goblin")
	g.TakeDamage(59) // one hit from death
	p := mustPlayer(t)
	s := session.NewSession(p, []*character.Character{g}, fixedSrc{val: neverRoll})

	s.PlayerAction(session.ChoiceAttack, 1)
	assert.Equal(t, session.Victory, s.State())
	assert.Empty(t, s.LivingEnemies())

	// The enemy round must not run once the session is terminal.
	assert.Nil(t, s.EnemyRound())
	assert.Equal(t, 120, p.CurrentHealth())
}

func TestEnemyRound_StandardAttack(t *testing.T) {
	p := mustPlayer(t)
	s := session.NewSession(p, []*character.Character{mustGoblin(t, "Goblin")}, fixedSrc{val: neverRoll})

	events := s.EnemyRound()
	require.NotEmpty(t, events)
	assert.Equal(t, event.KindAttack, events[0].Kind)
	assert.Equal(t, 110, p.CurrentHealth(), "goblin standard attack deals 10")
}

func TestEnemyRound_SpecialWhenRollSucceeds(t *testing.T) {
	p := mustPlayer(t)
	s := session.NewSession(p, []*character.Character{mustGoblin(t, "Goblin")}, fixedSrc{val: alwaysRoll})

	events := s.EnemyRound()
	require.NotEmpty(t, events)
	assert.Equal(t, event.KindAbility, events[0].Kind)
	assert.Equal(t, 120-18, p.CurrentHealth(), "goblin Sneaky Stab deals 10+8")
}

func TestEnemyRound_EarlyExitWhenPlayerDies(t *testing.T) {
	p := mustPlayer(t)
	p.TakeDamage(115) // 5 HP left; any hit is lethal
	t1 := mustTroll(t)
	g2 := mustGoblin(t, "Goblin")
	s := session.NewSession(p, []*character.Character{t1, g2}, fixedSrc{val: neverRoll})

	events := s.EnemyRound()
	assert.Equal(t, session.Defeat, s.State())
	assert.False(t, p.IsAlive())
	for _, ev := range events {
		assert.NotEqual(t, "Goblin", ev.Actor, "the goblin must be skipped after the player falls")
	}
}

func TestTerminalState_IsSticky(t *testing.T) {
	g := mustGoblin(t, "Goblin")
	g.TakeDamage(60)
	s := session.NewSession(mustPlayer(t), []*character.Character{g}, fixedSrc{val: neverRoll})

	require.Equal(t, session.Victory, s.CheckOutcome())
	assert.Nil(t, s.PlayerAction(session.ChoiceAttack, 1))
	assert.Nil(t, s.EnemyRound())
	assert.Nil(t, s.BeginRound())
	assert.Equal(t, session.Victory, s.State())
}

func TestRosterCleanup_DefeatedEnemyNeverReturns(t *testing.T) {
	g1 := mustGoblin(t, "Grik")
	g2 := mustGoblin(t, "Snag")
	p := mustPlayer(t)
	s := session.NewSession(p, []*character.Character{g1, g2}, fixedSrc{val: neverRoll})

	// Two Power Strikes kill Grik.
	s.PlayerAction(session.ChoiceSpecial, 1)
	s.PlayerAction(session.ChoiceSpecial, 1)
	require.False(t, g1.IsAlive())

	living := s.LivingEnemies()
	require.Len(t, living, 1)
	assert.Equal(t, "Snag", living[0].Name())

	// Grik takes no further turns.
	events := s.EnemyRound()
	for _, ev := range events {
		assert.NotEqual(t, "Grik", ev.Actor)
	}
}

func TestEndToEnd_PlayerDefeatsGoblinByAttackAlone(t *testing.T) {
	p := mustPlayer(t)
	g := mustGoblin(t, "Goblin")
	// All probability rolls fail: no goblin specials, deterministic attacks only.
	s := session.NewSession(p, []*character.Character{g}, fixedSrc{val: neverRoll})

	rounds := 0
	for s.State() == session.InProgress {
		rounds++
		require.LessOrEqual(t, rounds, 10, "combat must resolve")
		s.BeginRound()
		s.PlayerAction(session.ChoiceAttack, 1)
		if s.CheckOutcome().Terminal() {
			break
		}
		s.EnemyRound()
	}

	assert.Equal(t, session.Victory, s.State())
	assert.Equal(t, 4, rounds, "four 18-damage attacks fell a 60 HP goblin")
	assert.Equal(t, 120-3*10, p.CurrentHealth(), "the goblin got three standard attacks in")
	assert.True(t, p.IsAlive())
}

func TestEndToEnd_PlayerFallsToCumulativeDamage(t *testing.T) {
	p := mustPlayer(t)
	tr := mustTroll(t)
	// Trolls always attack plainly here: 16 damage per round, no healing.
	s := session.NewSession(p, []*character.Character{tr}, fixedSrc{val: neverRoll})

	dealt := 0
	for s.State() == session.InProgress && dealt < 130 {
		s.BeginRound()
		s.PlayerAction(session.ChoiceUnknown, 0) // the player never fights back
		s.EnemyRound()
		dealt += 16
	}

	assert.Equal(t, session.Defeat, s.State())
	assert.Equal(t, 0, p.CurrentHealth())
	assert.False(t, p.IsAlive())
}

func TestOutcomeEvent(t *testing.T) {
	g := mustGoblin(t, "Goblin")
	g.TakeDamage(60)
	s := session.NewSession(mustPlayer(t), []*character.Character{g}, fixedSrc{val: neverRoll})
	s.CheckOutcome()

	ev := s.OutcomeEvent()
	assert.Equal(t, event.KindOutcome, ev.Kind)
	assert.False(t, ev.Failed)

	p := mustPlayer(t)
	p.TakeDamage(120)
	s2 := session.NewSession(p, nil, fixedSrc{val: neverRoll})
	s2.CheckOutcome()
	ev2 := s2.OutcomeEvent()
	assert.Equal(t, event.KindOutcome, ev2.Kind)
	assert.True(t, ev2.Failed)
}

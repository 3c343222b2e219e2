package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/duskhall/arena/internal/game/event"
	"github.com/duskhall/arena/internal/game/session"
)

// Console drives a combat session interactively: it renders status and
// events, prompts for choices, and paces output for dramatic effect.
// Pacing and prompting never affect combat-state transitions.
type Console struct {
	sess     *session.Session
	in       *bufio.Reader
	out      io.Writer
	renderer *Renderer
	pace     time.Duration
	logger   *zap.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithPace sets the cosmetic delay between rendered events. Zero disables
// pacing.
func WithPace(d time.Duration) Option {
	return func(c *Console) { c.pace = d }
}

// WithColor toggles ANSI color output.
func WithColor(color bool) Option {
	return func(c *Console) { c.renderer = NewRenderer(color) }
}

// WithLogger sets the console's logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// New creates a Console for sess reading from in and writing to out.
//
// Precondition: sess, in, and out must be non-nil.
func New(sess *session.Session, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		sess:     sess,
		in:       bufio.NewReader(in),
		out:      out,
		renderer: NewRenderer(true),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives the session to a terminal state and returns it.
// A read failure (e.g. EOF on stdin) aborts the run with an error; the
// session keeps whatever state it had reached.
func (c *Console) Run() (session.State, error) {
	for c.sess.State() == session.InProgress {
		c.emit(c.sess.BeginRound())
		fmt.Fprint(c.out, c.renderer.Status(c.sess.Player(), c.sess.LivingEnemies()))

		choice, targetIndex, err := c.promptAction()
		if err != nil {
			return c.sess.State(), fmt.Errorf("reading player input: %w", err)
		}
		c.logger.Debug("player input",
			zap.Stringer("choice", choice),
			zap.Int("target", targetIndex),
		)

		c.emit(c.sess.PlayerAction(choice, targetIndex))
		if c.sess.CheckOutcome().Terminal() {
			break
		}
		c.emit(c.sess.EnemyRound())
	}

	c.emitOne(c.sess.OutcomeEvent())
	return c.sess.State(), nil
}

// promptAction reads the menu choice and, for targeted actions, the target
// index. Unparseable input is returned as-is (ChoiceUnknown or index 0) so
// the session can consume the turn.
func (c *Console) promptAction() (session.Choice, int, error) {
	fmt.Fprint(c.out, c.renderer.Menu(c.sess.Player()))
	line, err := c.readLine()
	if err != nil {
		return session.ChoiceUnknown, 0, err
	}
	choice := session.ParseChoice(line)

	targetIndex := 0
	if choice == session.ChoiceAttack || choice == session.ChoiceSpecial {
		fmt.Fprint(c.out, c.renderer.TargetPrompt())
		raw, err := c.readLine()
		if err != nil {
			return session.ChoiceUnknown, 0, err
		}
		// A bad number stays 0 and the session wastes the turn.
		if n, convErr := strconv.Atoi(strings.TrimSpace(raw)); convErr == nil {
			targetIndex = n
		}
	}
	return choice, targetIndex, nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// emit renders each event on its own line, pacing between them.
func (c *Console) emit(events []event.Event) {
	for _, ev := range events {
		c.emitOne(ev)
	}
}

func (c *Console) emitOne(ev event.Event) {
	if ev.Kind == event.KindUnknown {
		return
	}
	fmt.Fprintln(c.out, c.renderer.Event(ev))
	if c.pace > 0 {
		time.Sleep(c.pace)
	}
}

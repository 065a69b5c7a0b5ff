package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/uikit/internal/core/logging"
	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/internal/core/snackbar"
	"github.com/colonyops/uikit/internal/tui"
	"github.com/colonyops/uikit/pkg/clock"
)

type NotifyCmd struct {
	flags    *Flags
	duration time.Duration
}

// NewNotifyCmd creates a new notify command
func NewNotifyCmd(flags *Flags) *NotifyCmd {
	return &NotifyCmd{flags: flags}
}

// Register adds the notify command to the application
func (cmd *NotifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "notify",
		Usage:     "Play notifications through the snackbar sequencer",
		UsageText: "uikit notify [--duration 2s] [severity:]message...",
		Description: `Shows each message through the snackbar sequencer, one at a time and in
order. Prefix a message with info:, success:, warning: or error: to set its
severity.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "duration",
				Aliases:     []string{"d"},
				Usage:       "how long each notification stays visible (defaults to snackbar.auto_hide)",
				Destination: &cmd.duration,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NotifyCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("at least one message is required")
	}

	cfg := cmd.flags.loaded().Snackbar
	duration := cmd.duration
	if duration == 0 {
		duration = cfg.AutoHide
	}
	if duration <= 0 {
		return errors.New("duration must be positive")
	}

	reqs := make([]notify.Request, 0, c.Args().Len())
	for _, arg := range c.Args().Slice() {
		reqs = append(reqs, parseNotification(arg))
	}

	p := player{
		clock:      clock.Real{},
		autoHide:   duration,
		transition: cfg.Transition,
		view:       tui.NewSnackbarView(cfg.Width, cfg.Position),
		log:        logging.Component("notify"),
	}
	return p.play(ctx, c.Root().Writer, reqs)
}

// parseNotification reads "severity:message". Text without a known
// severity prefix is an info message.
func parseNotification(arg string) notify.Request {
	if prefix, rest, ok := strings.Cut(arg, ":"); ok {
		if sev, err := notify.ParseSeverity(prefix); err == nil {
			return notify.Request{Message: strings.TrimSpace(rest), Severity: sev}
		}
	}
	return notify.Request{Message: arg, Severity: notify.SeverityInfo}
}

// player drives a sequencer without a terminal UI. Requests are fed one at a
// time: each is printed when it becomes visible, released after the
// transition delay, and followed by the next once the slot is empty.
type player struct {
	clock      clock.Clock
	autoHide   time.Duration
	transition time.Duration
	view       *tui.SnackbarView
	log        zerolog.Logger
}

func (p player) play(ctx context.Context, w io.Writer, reqs []notify.Request) error {
	seq := snackbar.New(
		snackbar.WithClock(p.clock),
		snackbar.WithDefaultAutoHide(p.autoHide),
		snackbar.WithLogger(logging.ComponentOf(p.log, "snackbar")),
	)
	defer seq.Close()

	var (
		mu       sync.Mutex
		next     int
		shown    uint64
		closing  uint64
		drained  = make(chan struct{})
		drainOne sync.Once
		writeErr error
	)

	// feed enqueues the next request and reports whether there was one.
	feed := func() bool {
		if next >= len(reqs) {
			drainOne.Do(func() { close(drained) })
			return false
		}
		req := reqs[next]
		next++
		key := seq.Enqueue(req)
		p.log.Debug().Uint64("key", key).Str("severity", string(req.Severity)).Msg("queued")
		return true
	}

	unsubscribe := seq.Subscribe(func(st snackbar.State) {
		mu.Lock()
		defer mu.Unlock()

		switch {
		case st.Current == nil:
			if st.Pending == 0 {
				feed()
			}
		case st.Visible && st.Current.Key != shown:
			shown = st.Current.Key
			if _, err := fmt.Fprintln(w, p.view.Render(st)); err != nil && writeErr == nil {
				writeErr = err
			}
		case !st.Visible && st.Current.Key != closing:
			closing = st.Current.Key
			p.clock.AfterFunc(p.transition, seq.NotifyTransitionComplete)
		}
	})
	defer unsubscribe()

	// The first Enqueue publishes synchronously, so mu must not be held.
	feed()

	select {
	case <-drained:
	case <-ctx.Done():
		return ctx.Err()
	}

	mu.Lock()
	defer mu.Unlock()
	return writeErr
}

// Package tui implements the interactive demo: a sortable, paginated table
// with a snackbar that reports what happened.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/uikit/internal/core/config"
	"github.com/colonyops/uikit/internal/core/dataset"
	"github.com/colonyops/uikit/internal/core/logging"
	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/internal/core/snackbar"
	"github.com/colonyops/uikit/internal/core/styles"
	"github.com/colonyops/uikit/pkg/tabular"
)

const (
	defaultWidth = 80
	// header, pager, footer, help and a bordered snackbar.
	chromeHeight = 9
)

// transitionDoneMsg reports that the exit transition of a notification ended.
type transitionDoneMsg struct {
	key uint64
}

// undoDelete is the payload of the Undo action offered after a delete.
type undoDelete struct {
	removed Removed
}

// Options configures the TUI.
type Options struct {
	Config  config.Config
	Records []dataset.Record
	// Columns defaults to Config.Table.Columns, then to the record keys.
	Columns []string
	// Sequencer is created from Config when nil.
	Sequencer *snackbar.Sequencer
	Logger    zerolog.Logger
}

// Model is the demo's Bubble Tea model.
type Model struct {
	cfg      config.Config
	seq      *snackbar.Sequencer
	signal   *StateSignal
	notifier *snackbar.Notifier
	table    *TableView
	snack    *SnackbarView
	keys     keyMap
	help     help.Model
	log      zerolog.Logger

	width      int
	height     int
	closingKey uint64
	demoCount  int
}

// New creates the demo model.
func New(opts Options) Model {
	logger := logging.ComponentOf(opts.Logger, "tui")

	seq := opts.Sequencer
	if seq == nil {
		seq = snackbar.New(
			snackbar.WithDefaultAutoHide(opts.Config.Snackbar.AutoHide),
			snackbar.WithLogger(logging.ComponentOf(opts.Logger, "snackbar")),
		)
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = opts.Config.Table.Columns
	}
	if len(columns) == 0 {
		columns = dataset.Columns(opts.Records)
	}

	return Model{
		cfg:      opts.Config,
		seq:      seq,
		signal:   NewStateSignal(seq),
		notifier: snackbar.NewNotifier(seq, opts.Config.Snackbar.Position, logger),
		table:    NewTableView(opts.Records, columns, opts.Config.Table.Sort(), opts.Config.Table.PageSize),
		snack:    NewSnackbarView(opts.Config.Snackbar.Width, opts.Config.Snackbar.Position),
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      logger,
		width:    defaultWidth,
	}
}

// Init starts listening for snackbar changes.
func (m Model) Init() tea.Cmd {
	return m.signal.Wait()
}

// Close detaches the model from its sequencer and shuts the sequencer down.
func (m Model) Close() {
	m.signal.Close()
	m.seq.Close()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetSize(msg.Width, msg.Height-chromeHeight)
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.seq.RequestClose(snackbar.ReasonClickAway)
		}
		return m, nil

	case snackbarChangedMsg:
		cmd := m.syncSnackbar()
		return m, tea.Batch(cmd, m.signal.Wait())

	case transitionDoneMsg:
		st := m.seq.State()
		if st.Key() == msg.key && !st.Visible {
			m.seq.NotifyTransitionComplete()
		}
		cmd := m.syncSnackbar()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// syncSnackbar schedules the end of the exit transition the first time a
// notification is seen closing.
func (m *Model) syncSnackbar() tea.Cmd {
	st := m.seq.State()
	if st.Current == nil || st.Visible || st.Current.Key == m.closingKey {
		return nil
	}

	key := st.Current.Key
	m.closingKey = key
	m.log.Debug().Uint64("key", key).Msg("transition started")

	done := func(time.Time) tea.Msg { return transitionDoneMsg{key: key} }
	if m.cfg.Snackbar.Transition <= 0 {
		return func() tea.Msg { return done(time.Time{}) }
	}
	return tea.Tick(m.cfg.Snackbar.Transition, done)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled := m.handleAction(msg); handled {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Info):
		m.demo(notify.SeverityInfo, 0)
	case key.Matches(msg, m.keys.Success):
		m.demo(notify.SeveritySuccess, 0)
	case key.Matches(msg, m.keys.Warning):
		m.demo(notify.SeverityWarning, 0)
	case key.Matches(msg, m.keys.Error):
		// Errors stay until dismissed.
		m.demo(notify.SeverityError, -1)
	case key.Matches(msg, m.keys.Dismiss):
		m.seq.RequestClose(snackbar.ReasonDismiss)
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Sort):
		m.table.CycleSort()
	case key.Matches(msg, m.keys.Reverse):
		m.table.ToggleDirection()
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown()
	case key.Matches(msg, m.keys.Prev):
		m.table.PrevPage()
	case key.Matches(msg, m.keys.Next):
		m.table.NextPage()
	}

	return m, nil
}

// handleAction runs the action of the visible notification when its key is
// pressed.
func (m *Model) handleAction(msg tea.KeyMsg) bool {
	st := m.seq.State()
	if st.Current == nil || !st.Visible || st.Current.Action == nil {
		return false
	}
	action := st.Current.Action
	if msg.String() != action.Key {
		return false
	}

	m.log.Debug().Uint64("key", st.Current.Key).Str("action", action.Label).Msg("action invoked")
	m.seq.RequestClose(snackbar.ReasonAction)

	switch p := action.Payload.(type) {
	case undoDelete:
		if err := m.table.Restore(p.removed); err != nil {
			m.notifier.Error(fmt.Errorf("undo: %w", err))
			return true
		}
		m.notifier.Infof("Restored %s", recordLabel(p.removed.Record()))
	default:
		m.notifier.Error(fmt.Errorf("action %q is not supported", action.Label))
	}
	return true
}

func (m *Model) demo(sev notify.Severity, autoHide time.Duration) {
	m.demoCount++
	m.notifier.Publish(notify.Request{
		Message:  fmt.Sprintf("%s notification #%d", sev, m.demoCount),
		Severity: sev,
		AutoHide: autoHide,
	})
}

func (m *Model) deleteSelected() {
	removed, ok := m.table.RemoveSelected()
	if !ok {
		m.notifier.Warnf("Nothing to delete")
		return
	}

	m.notifier.Publish(notify.Request{
		Message:  "Deleted " + recordLabel(removed.Record()),
		Severity: notify.SeveritySuccess,
		Action:   &notify.Action{Label: "Undo", Key: "u", Payload: undoDelete{removed: removed}},
	})
}

// View renders the model.
func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("uikit demo"),
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
	return m.snack.Place(body, m.seq.State(), m.width)
}

// recordLabel names a record in notifications.
func recordLabel(rec dataset.Record) string {
	for _, field := range []string{"title", "name", "id"} {
		if v := tabular.Lookup(rec, field); !tabular.IsMissing(v) {
			return fmt.Sprintf("%q", tabular.Format(v))
		}
	}
	return "record"
}

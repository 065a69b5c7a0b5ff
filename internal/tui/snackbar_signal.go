package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/uikit/internal/core/snackbar"
)

type snackbarChangedMsg struct{}

// StateSignal turns sequencer state changes into Bubble Tea messages.
// Changes are coalesced into a single pending signal; the model reads the
// latest State when it handles the message.
type StateSignal struct {
	signal      chan struct{}
	done        chan struct{}
	once        sync.Once
	unsubscribe func()
}

// NewStateSignal subscribes to seq.
func NewStateSignal(seq *snackbar.Sequencer) *StateSignal {
	s := &StateSignal{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.unsubscribe = seq.Subscribe(func(snackbar.State) { s.Notify() })
	return s
}

// Notify emits a non-blocking signal.
func (s *StateSignal) Notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Wait blocks until the sequencer state changes. After Close it returns nil.
func (s *StateSignal) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.signal:
			return snackbarChangedMsg{}
		case <-s.done:
			return nil
		}
	}
}

// Close unsubscribes from the sequencer and releases pending waits.
func (s *StateSignal) Close() {
	s.once.Do(func() {
		s.unsubscribe()
		close(s.done)
	})
}

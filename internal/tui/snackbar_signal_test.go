package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/internal/core/snackbar"
)

func TestStateSignal_WaitReturnsChangedMsg(t *testing.T) {
	seq := snackbar.New()
	sig := NewStateSignal(seq)
	t.Cleanup(sig.Close)

	seq.Enqueue(notify.Request{Message: "hello"})

	cmd := sig.Wait()
	require.NotNil(t, cmd)
	assert.Equal(t, snackbarChangedMsg{}, cmd())
}

func TestStateSignal_CoalescesChanges(t *testing.T) {
	seq := snackbar.New()
	sig := NewStateSignal(seq)
	t.Cleanup(sig.Close)

	seq.Enqueue(notify.Request{Message: "one"})
	seq.Enqueue(notify.Request{Message: "two"})
	seq.RequestClose(snackbar.ReasonDismiss)

	assert.Len(t, sig.signal, 1)
}

func TestStateSignal_CloseReleasesWait(t *testing.T) {
	seq := snackbar.New()
	sig := NewStateSignal(seq)

	sig.Close()
	sig.Close()

	assert.Nil(t, sig.Wait()())

	seq.Enqueue(notify.Request{Message: "after close"})
	assert.Empty(t, sig.signal, "unsubscribed signal should not fire")
}

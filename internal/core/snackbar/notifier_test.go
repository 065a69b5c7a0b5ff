package snackbar

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/uikit/internal/core/notify"
)

type recordingEnqueuer struct {
	reqs []notify.Request
}

func (r *recordingEnqueuer) Enqueue(req notify.Request) uint64 {
	r.reqs = append(r.reqs, req)
	return uint64(len(r.reqs))
}

func TestNotifier_Helpers(t *testing.T) {
	rec := &recordingEnqueuer{}
	n := NewNotifier(rec, notify.Position{}, zerolog.Nop())

	n.Infof("hello %s", "world")
	n.Successf("saved %d", 3)
	n.Warnf("careful")
	n.Errorf("failed: %v", "disk")

	require.Len(t, rec.reqs, 4)
	assert.Equal(t, "hello world", rec.reqs[0].Message)
	assert.Equal(t, notify.SeverityInfo, rec.reqs[0].Severity)
	assert.Equal(t, "saved 3", rec.reqs[1].Message)
	assert.Equal(t, notify.SeveritySuccess, rec.reqs[1].Severity)
	assert.Equal(t, notify.SeverityWarning, rec.reqs[2].Severity)
	assert.Equal(t, "failed: disk", rec.reqs[3].Message)
	assert.Equal(t, notify.SeverityError, rec.reqs[3].Severity)
}

func TestNotifier_Error(t *testing.T) {
	rec := &recordingEnqueuer{}
	n := NewNotifier(rec, notify.Position{}, zerolog.Nop())

	assert.Zero(t, n.Error(nil))
	assert.Empty(t, rec.reqs)

	key := n.Error(errors.New("undo failed"))
	assert.Equal(t, uint64(1), key)
	require.Len(t, rec.reqs, 1)
	assert.Equal(t, "undo failed", notify.Text(rec.reqs[0].Message))
	assert.Equal(t, notify.SeverityError, rec.reqs[0].Severity)
}

func TestNotifier_DefaultPosition(t *testing.T) {
	rec := &recordingEnqueuer{}
	pos := notify.Position{Vertical: notify.Top, Horizontal: notify.Right}
	n := NewNotifier(rec, pos, zerolog.Nop())

	n.Infof("inherits")
	own := notify.Position{Vertical: notify.Bottom, Horizontal: notify.Center}
	n.Publish(notify.Request{Message: "keeps", Position: own})

	require.Len(t, rec.reqs, 2)
	assert.Equal(t, pos, rec.reqs[0].Position)
	assert.Equal(t, own, rec.reqs[1].Position)
}

func TestNotifier_FeedsSequencer(t *testing.T) {
	seq := New()
	n := NewNotifier(seq, notify.Position{}, zerolog.Nop())

	key := n.Successf("saved")

	st := seq.State()
	require.NotNil(t, st.Current)
	assert.Equal(t, key, st.Current.Key)
	assert.True(t, st.Visible)
}

package commands

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/internal/tui"
	"github.com/colonyops/uikit/pkg/clock"
	"github.com/colonyops/uikit/pkg/tuitest"
)

func TestParseNotification(t *testing.T) {
	tests := []struct {
		arg  string
		want notify.Request
	}{
		{"Saved", notify.Request{Message: "Saved", Severity: notify.SeverityInfo}},
		{"error: Network failure", notify.Request{Message: "Network failure", Severity: notify.SeverityError}},
		{"SUCCESS:done", notify.Request{Message: "done", Severity: notify.SeveritySuccess}},
		{"note: not a severity", notify.Request{Message: "note: not a severity", Severity: notify.SeverityInfo}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNotification(tt.arg))
		})
	}
}

// syncBuffer is a bytes.Buffer safe for writes from timer goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testPlayer() player {
	return player{
		clock:      clock.Real{},
		autoHide:   5 * time.Millisecond,
		transition: time.Millisecond,
		view:       tui.NewSnackbarView(30, notify.Position{}),
		log:        zerolog.Nop(),
	}
}

func TestPlayer_PrintsInOrder(t *testing.T) {
	var out syncBuffer
	reqs := []notify.Request{
		{Message: "first"},
		{Message: "second", Severity: notify.SeverityError},
		{Message: "third", Severity: notify.SeveritySuccess},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, testPlayer().play(ctx, &out, reqs))

	text := tuitest.StripANSI(out.String())
	first := strings.Index(text, "first")
	second := strings.Index(text, "second")
	third := strings.Index(text, "third")

	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestPlayer_NothingToPlay(t *testing.T) {
	var out syncBuffer
	require.NoError(t, testPlayer().play(context.Background(), &out, nil))
	assert.Empty(t, out.String())
}

func TestPlayer_ContextCancelled(t *testing.T) {
	var out syncBuffer
	p := testPlayer()
	p.autoHide = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.play(ctx, &out, []notify.Request{{Message: "stuck"}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, tuitest.StripANSI(out.String()), "stuck")
}

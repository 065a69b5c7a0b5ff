package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_AdvanceFiresDueTimersInOrder(t *testing.T) {
	f := NewFake(epoch)

	var fired []string
	f.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })
	f.AfterFunc(1*time.Second, func() { fired = append(fired, "a") })
	f.AfterFunc(1*time.Second, func() { fired = append(fired, "b") })
	f.AfterFunc(10*time.Second, func() { fired = append(fired, "late") })

	f.Advance(5 * time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, epoch.Add(5*time.Second), f.Now())
	assert.Equal(t, 1, f.Active())
}

func TestFake_StopPreventsFire(t *testing.T) {
	f := NewFake(epoch)

	called := false
	timer := f.AfterFunc(time.Second, func() { called = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	f.Advance(2 * time.Second)
	assert.False(t, called)
	assert.Zero(t, f.Active())
}

func TestFake_StopAfterFireReturnsFalse(t *testing.T) {
	f := NewFake(epoch)
	timer := f.AfterFunc(time.Second, func() {})

	f.Advance(time.Second)
	assert.False(t, timer.Stop())
}

func TestFake_CallbackMayArmTimers(t *testing.T) {
	f := NewFake(epoch)

	var at []time.Time
	f.AfterFunc(time.Second, func() {
		at = append(at, f.Now())
		f.AfterFunc(time.Second, func() { at = append(at, f.Now()) })
	})

	f.Advance(3 * time.Second)

	require.Len(t, at, 2)
	assert.Equal(t, epoch.Add(1*time.Second), at[0])
	assert.Equal(t, epoch.Add(2*time.Second), at[1])
}

package notification

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestToasterExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	toaster := NewToaster(time.Second)
	toaster.now = clock.now

	toaster.Success("ok")
	clock.t = clock.t.Add(500 * time.Millisecond)
	toaster.Error("nope")

	active := toaster.Active()
	require.Len(t, active, 2)
	assert.Equal(t, KindSuccess, active[0].Kind)
	assert.Equal(t, KindError, active[1].Kind)

	clock.t = clock.t.Add(600 * time.Millisecond)
	active = toaster.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "nope", active[0].Message)

	assert.Len(t, toaster.History(), 2)
}

func TestToasterDismiss(t *testing.T) {
	toaster := NewToaster(0)
	toaster.Success("hello")

	active := toaster.Active()
	require.Len(t, active, 1)
	assert.True(t, toaster.Dismiss(active[0].ID))
	assert.False(t, toaster.Dismiss(active[0].ID))
	assert.Empty(t, toaster.Active())
}

func TestToasterHistoryIsBounded(t *testing.T) {
	toaster := NewToaster(0)
	for i := 0; i < HistoryLimit+10; i++ {
		toaster.Success(fmt.Sprintf("toast %d", i))
	}

	history := toaster.History()
	require.Len(t, history, HistoryLimit)
	assert.Equal(t, "toast 10", history[0].Message)
	assert.Equal(t, fmt.Sprintf("toast %d", HistoryLimit+9), history[HistoryLimit-1].Message)
}

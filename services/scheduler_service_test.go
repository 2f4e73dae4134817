package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromoter struct {
	calls atomic.Int32
	last  atomic.Value
	err   error
	count int
}

func (f *fakePromoter) PromoteScheduled(_ context.Context, now time.Time) (int, error) {
	f.calls.Add(1)
	f.last.Store(now)
	return f.count, f.err
}

func TestSweepCallsPromoterWithClock(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &fakePromoter{count: 3}
	s, err := NewSchedulerService(p, time.Minute)
	require.NoError(t, err)
	s.now = func() time.Time { return fixed }

	s.sweep()

	assert.Equal(t, int32(1), p.calls.Load())
	assert.Equal(t, fixed, p.last.Load().(time.Time))
}

func TestSweepSwallowsPromoterError(t *testing.T) {
	p := &fakePromoter{err: errors.New("store down")}
	s, err := NewSchedulerService(p, time.Minute)
	require.NoError(t, err)

	s.sweep()
	s.sweep()

	assert.Equal(t, int32(2), p.calls.Load(), "a failed sweep does not wedge the next one")
}

func TestSweepSkipsWhileRunning(t *testing.T) {
	p := &fakePromoter{}
	s, err := NewSchedulerService(p, time.Minute)
	require.NoError(t, err)

	s.running.Store(true)
	s.sweep()
	assert.Equal(t, int32(0), p.calls.Load())

	s.running.Store(false)
	s.sweep()
	assert.Equal(t, int32(1), p.calls.Load())
}

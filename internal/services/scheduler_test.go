package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerFiresOnce(t *testing.T) {
	sched := NewConfirmScheduler(10 * time.Millisecond)
	defer sched.Stop()

	var fired atomic.Int32
	sched.Schedule("booking-1", func() { fired.Add(1) })

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestSchedulerCancelDisarms(t *testing.T) {
	sched := NewConfirmScheduler(20 * time.Millisecond)
	defer sched.Stop()

	var fired atomic.Int32
	sched.Schedule("booking-1", func() { fired.Add(1) })
	sched.Cancel("booking-1")

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestSchedulerRescheduleReplacesTimer(t *testing.T) {
	sched := NewConfirmScheduler(15 * time.Millisecond)
	defer sched.Stop()

	var first, second atomic.Int32
	sched.Schedule("booking-1", func() { first.Add(1) })
	sched.Schedule("booking-1", func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestSchedulerStopRefusesNewWork(t *testing.T) {
	sched := NewConfirmScheduler(5 * time.Millisecond)
	sched.Stop()

	var fired atomic.Int32
	sched.Schedule("booking-1", func() { fired.Add(1) })

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

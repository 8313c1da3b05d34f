package app

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("room-abc123", 10*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.False(t, s.Pending("room-abc123"))
}

func TestSchedulerReplacesPending(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var first, second atomic.Int32
	s.Schedule("room-abc123", 50*time.Millisecond, func() { first.Add(1) })
	s.Schedule("room-abc123", 10*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 },
		time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load(), "replaced callback must never fire")
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("room-abc123", 20*time.Millisecond, func() { fired.Add(1) })
	s.Cancel("room-abc123")

	assert.False(t, s.Pending("room-abc123"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestSchedulerKeysAreIndependent(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var a, b atomic.Int32
	s.Schedule("room-abc123", 10*time.Millisecond, func() { a.Add(1) })
	s.Schedule("room-def456", 10*time.Millisecond, func() { b.Add(1) })
	s.Cancel("room-abc123")

	assert.Eventually(t, func() bool { return b.Load() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), a.Load())
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler()

	var fired atomic.Int32
	s.Schedule("room-abc123", 20*time.Millisecond, func() { fired.Add(1) })
	s.Schedule("room-def456", 20*time.Millisecond, func() { fired.Add(1) })
	s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

package layout

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutosaverFiresAfterQuietPeriod(t *testing.T) {
	var fired atomic.Int32
	a := NewAutosaver(20*time.Millisecond, func() { fired.Add(1) })
	defer a.Close()

	a.Touch()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), fired.Load())
}

func TestAutosaverCoalescesBursts(t *testing.T) {
	var fired atomic.Int32
	a := NewAutosaver(50*time.Millisecond, func() { fired.Add(1) })
	defer a.Close()

	for i := 0; i < 5; i++ {
		a.Touch()
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(1), fired.Load())
}

func TestAutosaverCancel(t *testing.T) {
	var fired atomic.Int32
	a := NewAutosaver(20*time.Millisecond, func() { fired.Add(1) })
	defer a.Close()

	a.Touch()
	a.Cancel()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load())
}

func TestAutosaverCloseIsFinal(t *testing.T) {
	var fired atomic.Int32
	a := NewAutosaver(20*time.Millisecond, func() { fired.Add(1) })

	a.Touch()
	a.Close()
	a.Touch()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load())
}

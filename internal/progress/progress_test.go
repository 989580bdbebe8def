package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_FractionUnknownTotal(t *testing.T) {
	p := New(nil)
	assert.Equal(t, int64(-1), p.Total())
	assert.Equal(t, -1.0, p.Fraction())
}

func TestProgress_FractionTracksCompleted(t *testing.T) {
	p := New(nil)
	p.SetTotal(200)
	p.Add(50)
	assert.InDelta(t, 0.25, p.Fraction(), 1e-9)
	p.Add(150)
	assert.InDelta(t, 1.0, p.Fraction(), 1e-9)

	// Overshoot clamps to 1.
	p.Add(10)
	assert.InDelta(t, 1.0, p.Fraction(), 1e-9)
}

func TestProgress_ZeroTotalIsComplete(t *testing.T) {
	p := New(nil)
	p.SetTotal(0)
	assert.Equal(t, 1.0, p.Fraction())
}

func TestProgress_CancelCallsCancelFuncOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	p := New(func() {
		calls++
		cancel()
	})

	require.False(t, p.Cancelled())
	p.Cancel()
	p.Cancel()

	assert.True(t, p.Cancelled())
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestProgress_FinishClosesDone(t *testing.T) {
	p := New(nil)
	assert.False(t, p.Finished())

	p.Finish()
	p.Finish()

	select {
	case <-p.Done():
	default:
		t.Fatal("Done channel should be closed after Finish")
	}
	assert.True(t, p.Finished())
}

func TestProgress_ConcurrentAdd(t *testing.T) {
	p := New(nil)
	p.SetTotal(1000)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				p.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), p.Completed())
}

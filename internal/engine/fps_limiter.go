package engine

import "time"

const spinWindow = 200 * time.Microsecond

// FPSLimiter caps the frame rate and measures frame time.
type FPSLimiter struct {
	target time.Duration
	next   time.Time
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a limiter for fps frames per second. A
// non-positive fps disables the cap, Tick then only measures.
func NewFPSLimiter(fps int) *FPSLimiter {
	f := &FPSLimiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		f.target = time.Second / time.Duration(fps)
	}
	f.last = f.now()
	return f
}

// Tick blocks until the current frame has lasted at least the target
// duration and returns the milliseconds elapsed since the previous Tick.
// It sleeps most of the wait and spins for the last few microseconds.
func (f *FPSLimiter) Tick() float32 {
	if f.target > 0 {
		f.wait()
	}
	now := f.now()
	elapsed := now.Sub(f.last)
	f.last = now
	return float32(elapsed) / float32(time.Millisecond)
}

func (f *FPSLimiter) wait() {
	if f.next.IsZero() {
		f.next = f.last.Add(f.target)
	} else {
		f.next = f.next.Add(f.target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			f.sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rushing frames to catch up.
	if late := f.now().Sub(f.next); late > f.target {
		f.next = f.now()
	}
}

// Package clock paces a frame loop to a target framerate and measures the
// real time between frames.
package clock

import "time"

// Source is the time source a Timer reads. Tests substitute a fake.
type Source interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemSource struct{}

func (systemSource) Now() time.Time        { return time.Now() }
func (systemSource) Sleep(d time.Duration) { time.Sleep(d) }

// Timer tracks the start of the current frame. It is not safe for concurrent use.
type Timer struct {
	src        Source
	frameStart time.Time
	waitTime   time.Duration
	delta      time.Duration
}

// NewTimer starts a timer targeting framerate frames per second.
func NewTimer(framerate float64) *Timer {
	return NewTimerWithSource(framerate, systemSource{})
}

func NewTimerWithSource(framerate float64, src Source) *Timer {
	t := &Timer{src: src}
	t.SetFramerate(framerate)
	t.delta = t.waitTime
	t.frameStart = src.Now()
	return t
}

// SetFramerate changes the target. A non-positive framerate disables pacing.
func (t *Timer) SetFramerate(framerate float64) {
	if framerate <= 0 {
		t.waitTime = 0
		return
	}
	t.waitTime = time.Duration(float64(time.Second) / framerate)
}

// Wait sleeps out the rest of the current frame, then starts the next one.
// The delta is the real time between the two frame starts, so an overrunning
// frame is not slept for and shows up as a longer delta.
func (t *Timer) Wait() {
	if remaining := t.waitTime - t.src.Now().Sub(t.frameStart); remaining > 0 {
		t.src.Sleep(remaining)
	}
	t.Mark()
}

// Mark starts the next frame without sleeping, for hosts that pace frames themselves.
func (t *Timer) Mark() {
	prev := t.frameStart
	t.frameStart = t.src.Now()
	t.delta = t.frameStart.Sub(prev)
}

// Delta is the length of the previous frame in seconds.
func (t *Timer) Delta() float64 {
	return t.delta.Seconds()
}

// Framerate is the measured frames per second, or 0 before any time has passed.
func (t *Timer) Framerate() float64 {
	if t.delta <= 0 {
		return 0
	}
	return 1.0 / t.delta.Seconds()
}

// Target is the configured frame length.
func (t *Timer) Target() time.Duration {
	return t.waitTime
}

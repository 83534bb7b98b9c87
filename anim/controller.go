package anim

import (
	"math/rand"

	"lunie/parameter"
	"lunie/vmath"
)

// BlinkState is the four-phase eye cycle
type BlinkState int

const (
	Open BlinkState = iota
	Closing
	Closed
	Opening
)

func (s BlinkState) String() string {
	switch s {
	case Open:
		return "open"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	}
	return "unknown"
}

// State is the controller's per-tick snapshot. Read-only to everyone but
// the controller itself; never persisted.
type State struct {
	PointerTarget  vmath.Vec2
	ParallaxOffset vmath.Vec2
	Blink          BlinkState
	BlinkTimer     float64 // seconds accumulated in the current blink state
	NextBlinkAt    float64 // seconds of Open before the next blink starts
}

// BlinkScale returns the vertical presentation scale implied by the blink
// state: 1.0 open, MinBlinkScale fully closed, linear in between
func (s State) BlinkScale() float64 {
	const min = parameter.MinBlinkScale
	switch s.Blink {
	case Closing:
		return vmath.Lerp(1, min, vmath.Clamp(s.BlinkTimer/parameter.BlinkClosingDuration, 0, 1))
	case Closed:
		return min
	case Opening:
		return vmath.Lerp(min, 1, vmath.Clamp(s.BlinkTimer/parameter.BlinkOpeningDuration, 0, 1))
	default:
		return 1
	}
}

// Controller advances the ambient animation: smoothed cursor parallax and
// the blink state machine. Single writer; Tick is the only place state
// advances, so bursty pointer delivery cannot corrupt it. Tick never fails.
type Controller struct {
	state  State
	center vmath.Vec2
	rng    *rand.Rand
}

// NewController creates a controller with an injected random source for
// the blink interval, so tests can fix the sequence
func NewController(rng *rand.Rand) *Controller {
	c := &Controller{rng: rng}
	c.state.NextBlinkAt = c.drawBlinkInterval()
	return c
}

// SetCenter updates the widget-center reference that pointer positions
// are measured against
func (c *Controller) SetCenter(center vmath.Vec2) {
	c.center = center
}

// State returns the current snapshot without advancing time
func (c *Controller) State() State {
	return c.state
}

// Tick advances the animation by dt seconds. A nil pointer means no
// recent cursor position; the parallax then decays back to center.
func (c *Controller) Tick(dt float64, pointer *vmath.Vec2) State {
	dt = vmath.Clamp(dt, 0, parameter.MaxTickDelta)

	c.tickParallax(pointer)
	c.tickBlink(dt)
	return c.state
}

func (c *Controller) tickParallax(pointer *vmath.Vec2) {
	var target vmath.Vec2
	if pointer != nil {
		target = pointer.Sub(c.center).ClampMagnitude(parameter.MaxParallaxOffset)
	}
	c.state.PointerTarget = target
	c.state.ParallaxOffset = c.state.ParallaxOffset.Lerp(target, parameter.ParallaxSmoothing)
}

// tickBlink walks the Open → Closing → Closed → Opening cycle, carrying
// tick overshoot into the next state so accumulated durations stay exact
func (c *Controller) tickBlink(dt float64) {
	c.state.BlinkTimer += dt
	for {
		limit := c.stateDuration()
		if c.state.BlinkTimer < limit {
			return
		}
		c.state.BlinkTimer -= limit
		c.advanceBlink()
	}
}

func (c *Controller) stateDuration() float64 {
	switch c.state.Blink {
	case Open:
		return c.state.NextBlinkAt
	case Closing:
		return parameter.BlinkClosingDuration
	case Closed:
		return parameter.BlinkClosedHold
	default:
		return parameter.BlinkOpeningDuration
	}
}

func (c *Controller) advanceBlink() {
	switch c.state.Blink {
	case Open:
		c.state.Blink = Closing
	case Closing:
		c.state.Blink = Closed
	case Closed:
		c.state.Blink = Opening
	case Opening:
		c.state.Blink = Open
		c.state.NextBlinkAt = c.drawBlinkInterval()
	}
}

func (c *Controller) drawBlinkInterval() float64 {
	spread := parameter.MaxBlinkInterval - parameter.MinBlinkInterval
	return parameter.MinBlinkInterval + c.rng.Float64()*spread
}

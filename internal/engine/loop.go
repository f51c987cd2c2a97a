package engine

import (
	"errors"
	"time"
)

var ErrBadRate = errors.New("engine: rate must be positive")

// clock fires at most once per call when more than interval has passed
// since its last firing. The remainder of the elapsed time is carried
// into the next interval.
type clock struct {
	interval time.Duration
	last     time.Time
}

func (c *clock) due(now time.Time) (time.Duration, bool) {
	delta := now.Sub(c.last)
	if delta <= c.interval {
		return 0, false
	}
	c.last = now.Add(-(delta % c.interval))
	return delta, true
}

// Loop schedules physics and render steps at independent rates.
type Loop struct {
	physics clock
	render  clock
}

func NewLoop(physicsRate, renderRate int) (*Loop, error) {
	if physicsRate <= 0 || renderRate <= 0 {
		return nil, ErrBadRate
	}
	return &Loop{
		physics: clock{interval: time.Second / time.Duration(physicsRate)},
		render:  clock{interval: time.Second / time.Duration(renderRate)},
	}, nil
}

// Start resets both clocks to now.
func (l *Loop) Start(now time.Time) {
	l.physics.last = now
	l.render.last = now
}

func (l *Loop) PhysicsInterval() time.Duration { return l.physics.interval }
func (l *Loop) RenderInterval() time.Duration { return l.render.interval }

// Tick reports which steps are due at now. dt is the elapsed time since
// the physics clock last fired, in seconds.
func (l *Loop) Tick(now time.Time) (dt float64, stepPhysics, stepRender bool) {
	if delta, ok := l.physics.due(now); ok {
		dt, stepPhysics = delta.Seconds(), true
	}
	_, stepRender = l.render.due(now)
	return dt, stepPhysics, stepRender
}

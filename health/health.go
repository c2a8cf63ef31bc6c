// Package health holds a health value that loses damage gradually over a
// fixed duration instead of all at once.
package health

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Display receives the health value every tick of a decay.
type Display interface {
	ReportHealth(value float64)
}

// DecayObserver is implemented by displays that style themselves while
// damage is being applied.
type DecayObserver interface {
	DecayStarted()
	DecayFinished()
}

// Curves maps config names to easing functions for the decay.
var Curves = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
}

// Curve looks up an easing curve by name.
func Curve(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := Curves[name]
	if !ok {
		return nil, fmt.Errorf("health: unknown decay curve %q", name)
	}
	return fn, nil
}

// Entity is a health pool with smoothed damage.
type Entity struct {
	max      float64
	current  float64
	duration float64
	curve    ease.TweenFunc

	tween    *gween.Tween
	from     float64
	target   float64
	elapsed  float64
	decaying bool
	dead     bool

	display Display

	// OnDeath is called once, on the tick health reaches zero.
	OnDeath func()
}

// New creates an entity at full health and reports it once.
// A smoothDuration of zero applies damage immediately.
func New(maxHealth, smoothDuration float64, display Display) *Entity {
	e := &Entity{
		max:      maxHealth,
		current:  maxHealth,
		duration: smoothDuration,
		curve:    ease.Linear,
		display:  display,
	}
	e.report()
	return e
}

// SetCurve replaces the decay easing; nil restores linear.
func (e *Entity) SetCurve(fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	e.curve = fn
}

func (e *Entity) Current() float64 { return e.current }
func (e *Entity) Max() float64     { return e.max }

// Target is the value the running decay settles at.
func (e *Entity) Target() float64 {
	if e.decaying {
		return e.target
	}
	return e.current
}

func (e *Entity) Decaying() bool { return e.decaying }
func (e *Entity) Dead() bool     { return e.dead }

// Elapsed is the time spent in the running decay.
func (e *Entity) Elapsed() float64 { return e.elapsed }

// ApplyDamage starts a decay from the current value down by amount. A decay
// already running is dropped and the new one starts from where it got to.
// Non-positive amounts and damage to a dead entity are ignored.
func (e *Entity) ApplyDamage(amount float64) {
	if e.dead || amount <= 0 {
		return
	}

	if e.duration <= 0 {
		e.current -= amount
		if e.current <= 0 {
			e.die()
			return
		}
		e.report()
		return
	}

	e.from = e.current
	e.target = e.current - amount
	e.elapsed = 0
	e.tween = gween.New(float32(e.from), float32(e.target), float32(e.duration), e.curve)
	if !e.decaying {
		e.decaying = true
		if o, ok := e.display.(DecayObserver); ok {
			o.DecayStarted()
		}
	}
}

// Advance moves the running decay forward by dt seconds.
func (e *Entity) Advance(dt float64) {
	if !e.decaying || e.dead {
		return
	}

	e.elapsed += dt
	if e.elapsed >= e.duration {
		e.current = e.target
	} else {
		v, _ := e.tween.Set(float32(e.elapsed))
		e.current = float64(v)
	}

	if e.current <= 0 {
		e.die()
		return
	}

	e.report()
	if e.elapsed >= e.duration {
		e.decaying = false
		e.notifyFinished()
	}
}

func (e *Entity) die() {
	wasDecaying := e.decaying
	e.current = 0
	e.dead = true
	e.decaying = false
	e.report()
	if wasDecaying {
		e.notifyFinished()
	}
	if e.OnDeath != nil {
		e.OnDeath()
	}
}

func (e *Entity) report() {
	if e.display != nil {
		e.display.ReportHealth(e.current)
	}
}

func (e *Entity) notifyFinished() {
	if o, ok := e.display.(DecayObserver); ok {
		o.DecayFinished()
	}
}

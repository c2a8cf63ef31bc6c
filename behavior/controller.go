// Package behavior implements the enemy AI state machine: patrol a loop of
// nodes, turn Active once the target is detected, then chase or avoid it
// until it escapes.
package behavior

import (
	"errors"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultAvoidScale is how far past the alert radius an avoiding agent flees.
const DefaultAvoidScale = 1.5

// Params is the static per-agent tuning.
type Params struct {
	Movement  MovementMode
	Detection DetectionMode

	AlertRadius  float64
	EscapeRadius float64
	CanEscape    bool

	// VisualAngle is the half-angle of the detection cone in degrees.
	VisualAngle  float64
	TargetLayers []string

	// AvoidScale multiplies AlertRadius for the flee distance; 0 means DefaultAvoidScale.
	AvoidScale float64

	PatrolNodes []mgl64.Vec3

	// Paused constructs the controller in Idle.
	Paused bool
}

// Deps are the collaborators a controller drives.
type Deps struct {
	Navigator Navigator
	Vision    Vision
	Transform Transform
}

// Controller decides where an agent walks every tick.
type Controller struct {
	params Params
	nav    Navigator
	vision Vision
	body   Transform

	state       State
	patrolIndex int
	target      mgl64.Vec3
	stateTime   float64
	started     bool
	err         error

	// OnStateChange, when set, is called after every transition.
	OnStateChange func(from, to State)
}

// New builds a controller. Missing collaborators are logged once and make
// every tick a no-op; Err reports them.
func New(p Params, deps Deps) *Controller {
	if p.AvoidScale == 0 {
		p.AvoidScale = DefaultAvoidScale
	}
	c := &Controller{
		params: p,
		nav:    deps.Navigator,
		vision: deps.Vision,
		body:   deps.Transform,
		state:  Patrol,
	}
	if p.Paused {
		c.state = Idle
	}

	var errs []error
	if c.nav == nil {
		errs = append(errs, ErrNoNavigator)
	}
	if c.body == nil {
		errs = append(errs, ErrNoTransform)
	}
	if p.Detection == Visual && c.vision == nil {
		errs = append(errs, ErrNoVision)
	}
	if len(errs) > 0 {
		c.err = errors.Join(errs...)
		log.Printf("Warning: agent controller misconfigured: %v", c.err)
	}
	return c
}

// Err returns the configuration error found at construction, if any.
func (c *Controller) Err() error { return c.err }

func (c *Controller) State() State { return c.state }

// StateTime is the time spent in the current state.
func (c *Controller) StateTime() float64 { return c.stateTime }

func (c *Controller) PatrolIndex() int { return c.patrolIndex }

func (c *Controller) Params() Params { return c.params }

// SetTarget updates the tracked target position.
func (c *Controller) SetTarget(p mgl64.Vec3) { c.target = p }

func (c *Controller) Target() mgl64.Vec3 { return c.target }

// Start issues the first patrol destination. Advance calls it lazily.
func (c *Controller) Start() {
	if c.started || c.err != nil {
		return
	}
	c.started = true
	if c.state == Patrol {
		c.issuePatrolNode()
	}
}

// Pause parks the agent in Idle.
func (c *Controller) Pause() {
	if c.err != nil || c.state == Idle {
		return
	}
	c.setState(Idle)
	c.performIdle()
}

// Resume leaves Idle for Patrol and heads to the current patrol node.
func (c *Controller) Resume() {
	if c.err != nil || c.state != Idle {
		return
	}
	c.started = true
	c.nav.Resume()
	c.setState(Patrol)
	c.issuePatrolNode()
}

// Advance runs one tick of the state machine.
func (c *Controller) Advance(dt float64) {
	if c.err != nil {
		return
	}
	if !c.started {
		c.Start()
	}
	c.stateTime += dt

	switch c.state {
	case Active:
		c.performActive()
	case Patrol:
		c.performPatrol()
	case Idle:
		c.performIdle()
	}
}

func (c *Controller) performActive() {
	pos := c.body.Position()

	switch c.params.Movement {
	case Chase:
		c.nav.SetDestination(c.target)
	case Avoid:
		if c.nav.RemainingDistance() <= c.params.AlertRadius {
			if away, ok := c.awayFromTarget(pos); ok {
				c.nav.SetDestination(pos.Add(away.Mul(c.params.AlertRadius * c.params.AvoidScale)))
			}
		}
	}

	if c.params.CanEscape && pos.Sub(c.target).Len() >= c.params.EscapeRadius {
		c.setState(Patrol)
		c.issuePatrolNode()
	}
}

// awayFromTarget is the unit heading from the target to pos. When both
// coincide the agent backs off against its facing.
func (c *Controller) awayFromTarget(pos mgl64.Vec3) (mgl64.Vec3, bool) {
	if away, ok := normalize(pos.Sub(c.target)); ok {
		return away, true
	}
	return normalize(c.body.Forward().Mul(-1))
}

func (c *Controller) performPatrol() {
	if n := len(c.params.PatrolNodes); n > 0 {
		if c.nav.RemainingDistance()-c.nav.StoppingDistance() <= 0 {
			c.patrolIndex++
			if c.patrolIndex >= n {
				c.patrolIndex = 0
			}
			c.nav.SetDestination(c.params.PatrolNodes[c.patrolIndex])
		} else if _, ok := c.nav.Destination(); !ok {
			c.nav.SetDestination(c.params.PatrolNodes[c.patrolIndex])
		}
	}

	if c.InRange() {
		c.setState(Active)
	}
}

func (c *Controller) performIdle() {
	c.nav.ResetPath()
	c.nav.Stop()
}

func (c *Controller) issuePatrolNode() {
	if len(c.params.PatrolNodes) == 0 {
		return
	}
	c.nav.SetDestination(c.params.PatrolNodes[c.patrolIndex])
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	from := c.state
	c.state = s
	c.stateTime = 0
	if c.OnStateChange != nil {
		c.OnStateChange(from, s)
	}
}

// InRange evaluates target detection with the agent's detection mode.
func (c *Controller) InRange() bool {
	if c.err != nil {
		return false
	}
	switch c.params.Detection {
	case Radial:
		return c.radiusCheck()
	case Visual:
		return c.visualCheck()
	}
	return false
}

func (c *Controller) radiusCheck() bool {
	return c.body.Position().Sub(c.target).Len() <= c.params.AlertRadius
}

func (c *Controller) visualCheck() bool {
	pos := c.body.Position()
	dest, ok := c.nav.Destination()
	if !ok {
		return false
	}
	heading, ok := normalize(dest.Sub(pos))
	if !ok {
		return false
	}

	if heading.Dot(c.body.Forward()) < math.Cos(mgl64.DegToRad(c.params.VisualAngle)) {
		return false
	}
	return c.vision.Raycast(pos, heading, c.params.AlertRadius, c.params.TargetLayers...)
}

func normalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

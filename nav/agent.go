// Package nav moves agents along routes planned on a walkability grid.
package nav

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/isoward/iso"
)

// Planner plans a route between two world points. A nil route means the
// goal is unreachable.
type Planner interface {
	FindPath(start, goal mgl64.Vec3) []mgl64.Vec3
}

// Agent walks a body toward a destination. It satisfies the navigator the
// behavior controller expects.
type Agent struct {
	Speed     float64
	TurnSpeed float64
	Stopping  float64
	// RepathDistance is how far a destination has to move before the route
	// is planned again. Smaller moves only shift the final waypoint.
	RepathDistance float64

	Planner Planner

	Velocity mgl64.Vec3

	body    iso.Body
	dest    mgl64.Vec3
	hasDest bool
	path    []mgl64.Vec3
	stopped bool
	arrived bool
}

// NewAgent creates an agent driving body. A nil planner walks straight lines.
func NewAgent(body iso.Body, speed, stopping float64, planner Planner) *Agent {
	return &Agent{
		Speed:     speed,
		TurnSpeed: 10,
		Stopping:  stopping,
		Planner:   planner,
		body:      body,
	}
}

func (a *Agent) Body() iso.Body { return a.body }

// SetDestination plans a route to p.
func (a *Agent) SetDestination(p mgl64.Vec3) {
	if a.hasDest && len(a.path) > 0 && p.Sub(a.dest).Len() < a.RepathDistance {
		a.dest = p
		a.path[len(a.path)-1] = p
		a.arrived = false
		return
	}
	a.dest = p
	a.hasDest = true
	a.arrived = false
	a.path = a.plan(p)
}

func (a *Agent) plan(p mgl64.Vec3) []mgl64.Vec3 {
	if a.Planner != nil {
		if route := a.Planner.FindPath(a.body.Position(), p); len(route) > 0 {
			return route
		}
	}
	return []mgl64.Vec3{p}
}

func (a *Agent) Destination() (mgl64.Vec3, bool) { return a.dest, a.hasDest }

// Path is the waypoints still ahead of the agent.
func (a *Agent) Path() []mgl64.Vec3 { return a.path }

// RemainingDistance is the length of the route left to walk, zero when
// there is no destination. An agent that has halted at its stopping
// distance never reports more than that distance.
func (a *Agent) RemainingDistance() float64 {
	if !a.hasDest {
		return 0
	}
	d := 0.0
	prev := a.body.Position()
	for _, w := range a.path {
		d += w.Sub(prev).Len()
		prev = w
	}
	if a.arrived {
		return min(d, a.Stopping)
	}
	return d
}

// Arrived reports whether the agent has halted within stopping distance.
func (a *Agent) Arrived() bool { return a.hasDest && a.arrived }

func (a *Agent) StoppingDistance() float64 { return a.Stopping }

func (a *Agent) ResetPath() {
	a.hasDest = false
	a.arrived = false
	a.path = nil
	a.Velocity = mgl64.Vec3{}
}

func (a *Agent) Stop()         { a.stopped = true }
func (a *Agent) Resume()       { a.stopped = false }
func (a *Agent) Stopped() bool { return a.stopped }

// Step advances the body along the route by one tick.
func (a *Agent) Step(dt float64) {
	a.Velocity = mgl64.Vec3{}
	if a.stopped || a.arrived || !a.hasDest || len(a.path) == 0 {
		return
	}

	pos := a.body.Position()
	budget := a.Speed * dt
	if left := a.RemainingDistance() - a.Stopping; left <= budget {
		budget = left
		a.arrived = true
	}
	start := pos

	for budget > 0 && len(a.path) > 0 {
		to := a.path[0].Sub(pos)
		dist := to.Len()
		if dist <= budget {
			pos = a.path[0]
			budget -= dist
			if len(a.path) > 1 {
				a.path = a.path[1:]
				continue
			}
			break
		}
		pos = pos.Add(to.Mul(budget / dist))
		budget = 0
	}

	moved := pos.Sub(start)
	if dt > 0 {
		a.Velocity = moved.Mul(1 / dt)
	}
	a.body.SetPosition(pos)
	if moved.Len() > 0 {
		a.body.SetForward(iso.Slerp(a.body.Forward(), moved, a.TurnSpeed*dt))
	}
}

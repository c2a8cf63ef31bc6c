package behavior

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the agent's current behaviour.
type State int

const (
	Idle State = iota
	Patrol
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Patrol:
		return "patrol"
	case Active:
		return "active"
	}
	return "unknown"
}

// MovementMode decides what an Active agent does with its target.
type MovementMode int

const (
	Chase MovementMode = iota
	Avoid
)

func (m MovementMode) String() string {
	if m == Avoid {
		return "avoid"
	}
	return "chase"
}

// ParseMovementMode accepts "chase" or "avoid".
func ParseMovementMode(s string) (MovementMode, error) {
	switch s {
	case "", "chase":
		return Chase, nil
	case "avoid":
		return Avoid, nil
	}
	return Chase, errors.New("behavior: unknown movement mode " + s)
}

// DetectionMode decides how target presence is evaluated.
type DetectionMode int

const (
	Radial DetectionMode = iota
	Visual
)

func (d DetectionMode) String() string {
	if d == Visual {
		return "visual"
	}
	return "radial"
}

// ParseDetectionMode accepts "radial" or "visual".
func ParseDetectionMode(s string) (DetectionMode, error) {
	switch s {
	case "", "radial":
		return Radial, nil
	case "visual":
		return Visual, nil
	}
	return Radial, errors.New("behavior: unknown detection mode " + s)
}

// Navigator is the path-following capability the controller steers through.
type Navigator interface {
	SetDestination(p mgl64.Vec3)
	// Destination reports the current destination, false when there is none.
	Destination() (mgl64.Vec3, bool)
	RemainingDistance() float64
	StoppingDistance() float64
	ResetPath()
	Stop()
	Resume()
}

// Vision casts rays against the collision world.
type Vision interface {
	// Raycast reports whether a ray from origin along direction hits
	// something on one of layers within maxDistance.
	Raycast(origin, direction mgl64.Vec3, maxDistance float64, layers ...string) bool
}

// Transform exposes an externally owned position and facing.
type Transform interface {
	Position() mgl64.Vec3
	Forward() mgl64.Vec3
}

var (
	ErrNoNavigator = errors.New("behavior: no navigator")
	ErrNoTransform = errors.New("behavior: no transform")
	ErrNoVision    = errors.New("behavior: visual detection without vision")
)

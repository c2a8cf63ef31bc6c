// Package collision answers line-of-sight queries against a resolv space.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/isoward/tags"
)

// Raycaster casts rays across the ground plane. World x maps to space X and
// world z to space Y; height is ignored.
type Raycaster struct {
	Space *resolv.Space
	// Occluders are tags that block a ray without counting as a hit.
	Occluders []string
}

// NewRaycaster returns a raycaster blocked by solid geometry.
func NewRaycaster(space *resolv.Space) *Raycaster {
	return &Raycaster{Space: space, Occluders: []string{tags.ResolvSolid}}
}

// Raycast reports whether the first object the ray meets within maxDistance
// carries one of layers.
func (r *Raycaster) Raycast(origin, direction mgl64.Vec3, maxDistance float64, layers ...string) bool {
	obj, _ := r.First(origin, direction, maxDistance, layers...)
	return obj != nil && obj.HasTags(layers...)
}

// First returns the nearest object tagged with one of layers or an
// occluder, and the distance to it along the ray.
func (r *Raycaster) First(origin, direction mgl64.Vec3, maxDistance float64, layers ...string) (*resolv.Object, float64) {
	if r.Space == nil || maxDistance <= 0 || len(layers) == 0 {
		return nil, 0
	}
	flat := mgl64.Vec3{direction.X(), 0, direction.Z()}
	l := flat.Len()
	if l == 0 || math.IsNaN(l) {
		return nil, 0
	}
	flat = flat.Mul(maxDistance / l)

	x0, y0 := origin.X(), origin.Z()
	dx, dy := flat.X(), flat.Z()

	var nearest *resolv.Object
	best := math.Inf(1)
	for _, obj := range r.Space.Objects() {
		if !obj.HasTags(layers...) && !obj.HasTags(r.Occluders...) {
			continue
		}
		hit, t := segmentAABBHit(x0, y0, dx, dy, obj.X, obj.Y, obj.X+obj.W, obj.Y+obj.H)
		if hit && t < best {
			best = t
			nearest = obj
		}
	}
	if nearest == nil {
		return nil, 0
	}
	return nearest, best * maxDistance
}

// segmentAABBHit is a slab test of the segment (x0,y0)+t(dx,dy), t in [0,1].
func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 < minX || x0 > maxX {
		return false, 0
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 < minY || y0 > maxY {
		return false, 0
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}

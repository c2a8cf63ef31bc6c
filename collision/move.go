package collision

import "github.com/solarlune/resolv"

// touch is how close two edges must be to count as flush.
const touch = 1e-6

// Move shifts obj by dx, dy, one axis at a time, stopping flush against
// anything carrying one of solids. It returns the distance actually moved.
func Move(obj *resolv.Object, dx, dy float64, solids ...string) (float64, float64) {
	blockers := tagged(obj, solids)
	dx = sweepX(obj, dx, blockers)
	obj.X += dx
	dy = sweepY(obj, dy, blockers)
	obj.Y += dy
	obj.Update()
	return dx, dy
}

// tagged lists the other objects in obj's space carrying one of tags. The
// whole space is scanned: resolv's cell query trims a unit off the far edge
// of a box and misses slow movers creeping into a wall.
func tagged(obj *resolv.Object, tags []string) []*resolv.Object {
	if obj.Space == nil || len(tags) == 0 {
		return nil
	}
	var out []*resolv.Object
	for _, o := range obj.Space.Objects() {
		if o != obj && o.HasTags(tags...) {
			out = append(out, o)
		}
	}
	return out
}

func sweepX(obj *resolv.Object, dx float64, blockers []*resolv.Object) float64 {
	if dx == 0 {
		return 0
	}
	for _, o := range blockers {
		if obj.Y >= o.Y+o.H-touch || obj.Y+obj.H <= o.Y+touch {
			continue
		}
		if dx > 0 && obj.X+obj.W <= o.X+touch {
			dx = min(dx, o.X-(obj.X+obj.W))
		} else if dx < 0 && obj.X >= o.X+o.W-touch {
			dx = max(dx, o.X+o.W-obj.X)
		}
	}
	return dx
}

func sweepY(obj *resolv.Object, dy float64, blockers []*resolv.Object) float64 {
	if dy == 0 {
		return 0
	}
	for _, o := range blockers {
		if obj.X >= o.X+o.W-touch || obj.X+obj.W <= o.X+touch {
			continue
		}
		if dy > 0 && obj.Y+obj.H <= o.Y+touch {
			dy = min(dy, o.Y-(obj.Y+obj.H))
		} else if dy < 0 && obj.Y >= o.Y+o.H-touch {
			dy = max(dy, o.Y+o.H-obj.Y)
		}
	}
	return dy
}

// Overlapping returns the objects tagged with one of tags whose bounds
// intersect obj.
func Overlapping(obj *resolv.Object, tags ...string) []*resolv.Object {
	var out []*resolv.Object
	for _, o := range tagged(obj, tags) {
		if obj.X < o.X+o.W && obj.X+obj.W > o.X && obj.Y < o.Y+o.H && obj.Y+obj.H > o.Y {
			out = append(out, o)
		}
	}
	return out
}

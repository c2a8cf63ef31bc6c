package nav

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/isoward/behavior"
	"github.com/automoto/isoward/tags"
)

var _ behavior.Navigator = (*Agent)(nil)

// walledGrid is 10x10 cells of 16 units with a wall down column 4 covering
// rows 0..wallRows-1.
func walledGrid(wallRows int) *Grid {
	space := resolv.NewSpace(160, 160, 16, 16)
	space.Add(resolv.NewObject(64, 0, 16, float64(wallRows)*16, tags.ResolvSolid))
	return NewGrid(space, 160, 160, 16)
}

func TestNewGrid_MarksSolidCells(t *testing.T) {
	g := walledGrid(8)
	require.Equal(t, 10, g.Width)
	require.Equal(t, 10, g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			blocked := x == 4 && y < 8
			assert.Equal(t, !blocked, g.Nodes[y][x].Walkable, "cell %d,%d", x, y)
		}
	}
}

func TestFindPath_Open(t *testing.T) {
	g := walledGrid(8)
	goal := mgl64.Vec3{40, 0, 8}

	path := g.FindPath(mgl64.Vec3{8, 0, 8}, goal)

	require.Len(t, path, 2)
	assert.Equal(t, g.CellCenter(1, 0, 0), path[0])
	assert.Equal(t, goal, path[1])
}

func TestFindPath_SameCell(t *testing.T) {
	g := walledGrid(8)
	goal := mgl64.Vec3{10, 0, 12}

	assert.Equal(t, []mgl64.Vec3{goal}, g.FindPath(mgl64.Vec3{2, 0, 2}, goal))
}

func TestFindPath_RoutesAroundWall(t *testing.T) {
	g := walledGrid(8)
	start := mgl64.Vec3{24, 0, 24}
	goal := mgl64.Vec3{120, 0, 24}

	path := g.FindPath(start, goal)
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1])

	px, py := g.Cell(start)
	crossed := false
	for _, p := range path {
		x, y := g.Cell(p)
		require.True(t, g.Nodes[y][x].Walkable, "waypoint %v on a wall", p)
		assert.LessOrEqual(t, max(x-px, px-x), 1, "waypoints are neighbours")
		assert.LessOrEqual(t, max(y-py, py-y), 1, "waypoints are neighbours")
		if x == 4 {
			crossed = true
			assert.GreaterOrEqual(t, y, 8)
		}
		px, py = x, y
	}
	assert.True(t, crossed)
}

func TestFindPath_Unreachable(t *testing.T) {
	g := walledGrid(10)
	assert.Nil(t, g.FindPath(mgl64.Vec3{24, 0, 24}, mgl64.Vec3{120, 0, 24}))
}

func TestFindPath_GoalInsideWall(t *testing.T) {
	g := walledGrid(8)

	path := g.FindPath(mgl64.Vec3{24, 0, 40}, mgl64.Vec3{72, 0, 40})
	require.NotEmpty(t, path)

	x, y := g.Cell(path[len(path)-1])
	assert.True(t, g.Nodes[y][x].Walkable)
	assert.LessOrEqual(t, max(x-4, 4-x), 1)
	assert.LessOrEqual(t, max(y-2, 2-y), 1)
}

type body struct {
	pos, fwd mgl64.Vec3
}

func (b *body) Position() mgl64.Vec3      { return b.pos }
func (b *body) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *body) Forward() mgl64.Vec3       { return b.fwd }
func (b *body) SetForward(f mgl64.Vec3)  { b.fwd = f }

type planner struct {
	route []mgl64.Vec3
	calls int
}

func (p *planner) FindPath(_, goal mgl64.Vec3) []mgl64.Vec3 {
	p.calls++
	if p.route == nil {
		return nil
	}
	return append(append([]mgl64.Vec3{}, p.route...), goal)
}

func TestAgent_WalksStraightLine(t *testing.T) {
	b := &body{fwd: mgl64.Vec3{0, 0, 1}}
	a := NewAgent(b, 5, 0, nil)

	_, ok := a.Destination()
	require.False(t, ok)
	assert.Equal(t, 0.0, a.RemainingDistance())

	a.SetDestination(mgl64.Vec3{10, 0, 0})
	assert.Equal(t, 10.0, a.RemainingDistance())

	a.Step(1)
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, b.pos)
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, a.Velocity)
	assert.InDelta(t, 1, b.fwd.X(), 1e-9, "faces the direction of travel")
	assert.False(t, a.Arrived())

	a.Step(1)
	assert.Equal(t, mgl64.Vec3{10, 0, 0}, b.pos)
	assert.Equal(t, 0.0, a.RemainingDistance())
	assert.True(t, a.Arrived())

	a.Step(1)
	assert.Equal(t, mgl64.Vec3{10, 0, 0}, b.pos)
	assert.Equal(t, mgl64.Vec3{}, a.Velocity)
}

func TestAgent_HaltsAtStoppingDistance(t *testing.T) {
	b := &body{}
	a := NewAgent(b, 5, 3, nil)
	a.SetDestination(mgl64.Vec3{0, 0, 10})

	for range 5 {
		a.Step(1)
	}
	assert.Equal(t, mgl64.Vec3{0, 0, 7}, b.pos)
	assert.Equal(t, 3.0, a.RemainingDistance())
}

func TestAgent_StopResumeReset(t *testing.T) {
	b := &body{}
	a := NewAgent(b, 1, 0, nil)
	a.SetDestination(mgl64.Vec3{5, 0, 0})

	a.Stop()
	a.Step(1)
	assert.Equal(t, mgl64.Vec3{}, b.pos)
	assert.True(t, a.Stopped())

	a.Resume()
	a.Step(1)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, b.pos)

	a.ResetPath()
	_, ok := a.Destination()
	assert.False(t, ok)
	assert.Equal(t, 0.0, a.RemainingDistance())
	a.Step(1)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, b.pos)
}

func TestAgent_FollowsPlannedRoute(t *testing.T) {
	b := &body{}
	p := &planner{route: []mgl64.Vec3{{0, 0, 5}}}
	a := NewAgent(b, 7, 0, p)

	a.SetDestination(mgl64.Vec3{5, 0, 5})
	assert.Equal(t, 10.0, a.RemainingDistance())

	a.Step(1)
	assert.Equal(t, mgl64.Vec3{2, 0, 5}, b.pos, "carries leftover distance past a corner")
	assert.Len(t, a.Path(), 1)

	p.route = nil
	a.SetDestination(mgl64.Vec3{2, 0, 0})
	assert.Equal(t, []mgl64.Vec3{{2, 0, 0}}, a.Path(), "unreachable goals walk straight")
}

func TestAgent_RepathDistance(t *testing.T) {
	b := &body{}
	p := &planner{route: []mgl64.Vec3{{0, 0, 5}}}
	a := NewAgent(b, 1, 0, p)
	a.RepathDistance = 2

	a.SetDestination(mgl64.Vec3{5, 0, 5})
	a.SetDestination(mgl64.Vec3{6, 0, 5})
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, []mgl64.Vec3{{0, 0, 5}, {6, 0, 5}}, a.Path())

	a.SetDestination(mgl64.Vec3{9, 0, 5})
	assert.Equal(t, 2, p.calls)
}

func TestAgent_DrivesPatrolLoop(t *testing.T) {
	nodes := []mgl64.Vec3{{0, 0, 20}, {20, 0, 20}, {20, 0, 0}}
	b := &body{fwd: mgl64.Vec3{0, 0, 1}}
	a := NewAgent(b, 10, 0.5, nil)
	c := behavior.New(behavior.Params{AlertRadius: 5, PatrolNodes: nodes}, behavior.Deps{
		Navigator: a,
		Transform: b,
	})
	c.SetTarget(mgl64.Vec3{1000, 0, 1000})

	var visited []int
	last := -1
	for range 100 {
		c.Advance(0.1)
		a.Step(0.1)
		if i := c.PatrolIndex(); i != last {
			visited = append(visited, i)
			last = i
		}
	}

	require.GreaterOrEqual(t, len(visited), 4)
	assert.Equal(t, []int{0, 1, 2, 0}, visited[:4])
	assert.Equal(t, behavior.Patrol, c.State())
}

package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/isoward/tags"
)

// Grid is the walkable ground plane of a level, seen from above.
// Grid X runs along world x and grid Y along world z.
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node
}

// Node is one grid cell. Implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	grid     *Grid
}

var dirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns adjacent walkable nodes. Diagonals are only offered
// when both cardinal cells beside them are open so paths never clip corners.
func (n *Node) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(dirs))
	for _, d := range dirs {
		if !n.grid.walkable(n.X+d.dx, n.Y+d.dy) {
			continue
		}
		if d.dx != 0 && d.dy != 0 && (!n.grid.walkable(n.X+d.dx, n.Y) || !n.grid.walkable(n.X, n.Y+d.dy)) {
			continue
		}
		neighbors = append(neighbors, n.grid.Nodes[n.Y+d.dy][n.X+d.dx])
	}
	return neighbors
}

func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the euclidean cell distance.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return math.Hypot(float64(t.X-n.X), float64(t.Y-n.Y))
}

// NewGrid marks every cell overlapping a solid object in space as blocked.
func NewGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize float64) *Grid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)

	g := &Grid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gridH),
	}

	inset := cellSize * 0.1
	for y := 0; y < gridH; y++ {
		g.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			n := &Node{X: x, Y: y, Walkable: true, grid: g}
			g.Nodes[y][x] = n

			probe := resolv.NewObject(float64(x)*cellSize+inset, float64(y)*cellSize+inset, cellSize-2*inset, cellSize-2*inset)
			space.Add(probe)
			if c := probe.Check(0, 0, tags.ResolvSolid); c != nil {
				for _, o := range c.Objects {
					if overlaps(probe, o) {
						n.Walkable = false
						break
					}
				}
			}
			space.Remove(probe)
		}
	}
	return g
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func (g *Grid) walkable(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && g.Nodes[y][x].Walkable
}

// Cell returns the grid coordinates containing a world point, clamped to the grid.
func (g *Grid) Cell(p mgl64.Vec3) (int, int) {
	return clampInt(int(math.Floor(p.X()/g.CellSize)), 0, g.Width-1),
		clampInt(int(math.Floor(p.Z()/g.CellSize)), 0, g.Height-1)
}

// CellCenter converts grid coordinates to the world point at the middle of the cell.
func (g *Grid) CellCenter(x, y int, height float64) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(x)*g.CellSize + g.CellSize/2,
		height,
		float64(y)*g.CellSize + g.CellSize/2,
	}
}

// FindPath returns world waypoints from start to goal, excluding the start
// cell. The last waypoint is goal itself when goal is on open ground.
// It returns nil when no route exists.
func (g *Grid) FindPath(start, goal mgl64.Vec3) []mgl64.Vec3 {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	sx, sy := g.Cell(start)
	gx, gy := g.Cell(goal)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]
	goalOpen := goalNode.Walkable

	if !startNode.Walkable {
		startNode = g.nearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.nearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}
	// go-astar hands the path back goal first.
	if len(path) > 1 && path[0] != astar.Pather(startNode) {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	points := make([]mgl64.Vec3, 0, len(path))
	for _, p := range path[1:] {
		n := p.(*Node)
		points = append(points, g.CellCenter(n.X, n.Y, goal.Y()))
	}
	if goalOpen {
		if len(points) > 0 {
			points[len(points)-1] = goal
		} else {
			points = append(points, goal)
		}
	} else if len(points) == 0 {
		points = append(points, g.CellCenter(goalNode.X, goalNode.Y, goal.Y()))
	}
	return points
}

// nearestWalkable searches expanding squares around x, y.
func (g *Grid) nearestWalkable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if g.walkable(x+dx, y+dy) {
					return g.Nodes[y+dy][x+dx]
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

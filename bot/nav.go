package bot

import (
	"math"

	"github.com/automoto/octagon/shared/arenadata"
	astar "github.com/beefsack/go-astar"
	"github.com/go-gl/mathgl/mgl64"
)

// NavGrid represents the floor cells a fighter can stand in
type NavGrid struct {
	Width, Depth int
	CellSize     float64
	OriginX      float64 // arena x of the grid's left edge
	OriginZ      float64 // arena z of the grid's far edge
	Nodes        [][]*NavNode
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Z     int
	Walkable bool
	Grid     *NavGrid
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather).
// Diagonal steps need both side cells free so paths never clip a corner.
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	dirs := []struct{ dx, dz int }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
	}

	for _, d := range dirs {
		neighbor := n.Grid.node(n.X+d.dx, n.Z+d.dz)
		if neighbor == nil || !neighbor.Walkable {
			continue
		}
		if d.dx != 0 && d.dz != 0 {
			a, b := n.Grid.node(n.X+d.dx, n.Z), n.Grid.node(n.X, n.Z+d.dz)
			if a == nil || !a.Walkable || b == nil || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, neighbor)
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dz := float64(toNode.Z - n.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// NewNavGrid rasterises an arena. A cell is walkable when a fighter with the
// given clearance standing at its centre would not overlap a wall.
func NewNavGrid(arena *arenadata.Arena, cellSize, clearance float64) *NavGrid {
	g := &NavGrid{
		Width:    int(math.Ceil(arena.Width / cellSize)),
		Depth:    int(math.Ceil(arena.Depth / cellSize)),
		CellSize: cellSize,
		OriginX:  -arena.Width / 2,
		OriginZ:  -arena.Depth / 2,
	}
	g.Nodes = make([][]*NavNode, g.Depth)
	for z := 0; z < g.Depth; z++ {
		g.Nodes[z] = make([]*NavNode, g.Width)
		for x := 0; x < g.Width; x++ {
			c := g.center(x, z)
			g.Nodes[z][x] = &NavNode{
				X:        x,
				Z:        z,
				Walkable: !blocked(arena.Walls, c.X(), c.Z(), clearance),
				Grid:     g,
			}
		}
	}
	return g
}

func blocked(walls []arenadata.Rect, x, z, clearance float64) bool {
	for _, w := range walls {
		if x+clearance > w.MinX && x-clearance < w.MaxX && z+clearance > w.MinZ && z-clearance < w.MaxZ {
			return true
		}
	}
	return false
}

func (g *NavGrid) node(x, z int) *NavNode {
	if x < 0 || x >= g.Width || z < 0 || z >= g.Depth {
		return nil
	}
	return g.Nodes[z][x]
}

func (g *NavGrid) cell(p mgl64.Vec3) (int, int) {
	x := int(math.Floor((p.X() - g.OriginX) / g.CellSize))
	z := int(math.Floor((p.Z() - g.OriginZ) / g.CellSize))
	return max(0, min(g.Width-1, x)), max(0, min(g.Depth-1, z))
}

// center converts grid coordinates to arena coordinates (center of cell)
func (g *NavGrid) center(x, z int) mgl64.Vec3 {
	return mgl64.Vec3{
		g.OriginX + (float64(x)+0.5)*g.CellSize,
		0,
		g.OriginZ + (float64(z)+0.5)*g.CellSize,
	}
}

// Walkable reports whether the cell under p is free.
func (g *NavGrid) Walkable(p mgl64.Vec3) bool {
	return g.node(g.cell(p)).Walkable
}

// Clear reports whether the straight segment from a to b only crosses
// walkable cells.
func (g *NavGrid) Clear(a, b mgl64.Vec3) bool {
	d := b.Sub(a)
	d[1] = 0
	steps := int(math.Ceil(d.Len()/(g.CellSize/2))) + 1
	for i := 0; i <= steps; i++ {
		p := a.Add(d.Mul(float64(i) / float64(steps)))
		if !g.Walkable(p) {
			return false
		}
	}
	return true
}

// FindPath uses go-astar to find a path of cell centres from one arena
// position to another. It returns nil when no path exists.
func (g *NavGrid) FindPath(from, to mgl64.Vec3) []mgl64.Vec3 {
	sx, sz := g.cell(from)
	gx, gz := g.cell(to)

	startNode := g.Nodes[sz][sx]
	goalNode := g.Nodes[gz][gx]

	// Handle case where start or goal is inside a wall's clearance
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sz)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gz)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns the path goal first
	result := make([]mgl64.Vec3, len(path))
	for i, p := range path {
		n := p.(*NavNode)
		result[len(path)-1-i] = g.center(n.X, n.Z)
	}
	return result
}

// findNearestWalkable finds the nearest walkable node to the given cell
func (g *NavGrid) findNearestWalkable(x, z int) *NavNode {
	// Search in expanding squares
	for radius := 1; radius < 10; radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, z+dz); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

// Waypoint returns the furthest point along a path to target that can be
// walked to in a straight line from self. With no obstacle in between that
// is the target itself.
func (g *NavGrid) Waypoint(self, target mgl64.Vec3) mgl64.Vec3 {
	if g.Clear(self, target) {
		return target
	}
	path := g.FindPath(self, target)
	if len(path) == 0 {
		return target
	}
	for i := len(path) - 1; i > 0; i-- {
		if g.Clear(self, path[i]) {
			return path[i]
		}
	}
	return path[min(1, len(path)-1)]
}

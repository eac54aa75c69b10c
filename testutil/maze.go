package testutil

import (
	"fmt"
	"iter"
)

// Point is a maze coordinate. X grows to the right, Y downward.
type Point struct {
	X, Y int
}

// Maze is a finite grid with walls and per-cell entry costs.
//
// Maze records how often each cell is expanded, so tests can assert
// at-most-once expansion. It is not safe for concurrent use.
type Maze struct {
	W, H  int
	walls map[Point]bool
	costs map[Point]int
	start Point
	goal  Point

	expansions map[Point]int
}

// ParseMaze builds a maze from rows of text:
//
//	'#'      wall
//	'S'      start (cost 1)
//	'G'      goal (cost 1)
//	'.'      open cell (cost 1)
//	'1'-'9'  open cell with that entry cost
//
// It panics on malformed input.
func ParseMaze(rows ...string) *Maze {
	m, err := LoadMaze(rows)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// LoadMaze is ParseMaze returning an error instead of panicking.
func LoadMaze(rows []string) (*Maze, error) {
	m := &Maze{
		walls:      map[Point]bool{},
		costs:      map[Point]int{},
		expansions: map[Point]int{},
		start:      Point{-1, -1},
		goal:       Point{-1, -1},
	}
	m.H = len(rows)
	for y, row := range rows {
		if m.W == 0 {
			m.W = len(row)
		} else if len(row) != m.W {
			return nil, fmt.Errorf("testutil: maze row %d has width %d, want %d", y, len(row), m.W)
		}
		for x, ch := range row {
			p := Point{x, y}
			switch {
			case ch == '#':
				m.walls[p] = true
			case ch == 'S':
				m.start = p
			case ch == 'G':
				m.goal = p
			case ch == '.':
			case ch >= '1' && ch <= '9':
				m.costs[p] = int(ch - '0')
			default:
				return nil, fmt.Errorf("testutil: unexpected maze cell %q at %v", ch, p)
			}
		}
	}
	if m.start.X < 0 {
		return nil, fmt.Errorf("testutil: maze has no start")
	}
	return m, nil
}

// Start returns the start cell.
func (m *Maze) Start() Cell { return Cell{Point: m.start, maze: m} }

// At returns the cell at (x, y).
func (m *Maze) At(x, y int) Cell { return Cell{Point: Point{x, y}, maze: m} }

// Expansions returns how often the cell at p was expanded.
func (m *Maze) Expansions(p Point) int { return m.expansions[p] }

// MaxExpansions returns the highest expansion count over all cells.
func (m *Maze) MaxExpansions() int {
	highest := 0
	for _, n := range m.expansions {
		highest = max(highest, n)
	}
	return highest
}

// TotalExpansions returns the number of expansions over all cells.
func (m *Maze) TotalExpansions() int {
	total := 0
	for _, n := range m.expansions {
		total += n
	}
	return total
}

// Cost returns the entry cost of p.
func (m *Maze) Cost(p Point) int {
	if c, ok := m.costs[p]; ok {
		return c
	}
	return 1
}

// Open reports whether p is inside the maze and not a wall.
func (m *Maze) Open(p Point) bool {
	return p.X >= 0 && p.X < m.W && p.Y >= 0 && p.Y < m.H && !m.walls[p]
}

// Cell is a maze position. It is comparable.
type Cell struct {
	Point
	maze *Maze
}

func (c Cell) neighbours() []Point {
	out := make([]Point, 0, 4)
	for _, d := range [...]Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		p := Point{c.X + d.X, c.Y + d.Y}
		if c.maze.Open(p) {
			out = append(out, p)
		}
	}
	return out
}

// NextStates yields the open neighbours in the order left, up, right, down.
func (c Cell) NextStates() iter.Seq[Cell] {
	c.maze.expansions[c.Point]++
	ns := c.neighbours()
	return func(yield func(Cell) bool) {
		for _, p := range ns {
			if !yield(Cell{Point: p, maze: c.maze}) {
				return
			}
		}
	}
}

// NextStatesWithCosts yields the open neighbours with their entry costs.
func (c Cell) NextStatesWithCosts() iter.Seq2[Cell, int] {
	c.maze.expansions[c.Point]++
	ns := c.neighbours()
	return func(yield func(Cell, int) bool) {
		for _, p := range ns {
			if !yield(Cell{Point: p, maze: c.maze}, c.maze.Cost(p)) {
				return
			}
		}
	}
}

// IsSolution reports whether c is the goal.
func (c Cell) IsSolution() bool { return c.Point == c.maze.goal }

// Score is the Manhattan distance to the goal. It is admissible because
// every entry cost is at least 1.
func (c Cell) Score() int {
	return Abs(c.X-c.maze.goal.X) + Abs(c.Y-c.maze.goal.Y)
}

// RouteCost sums the entry costs along a route, excluding the first cell.
func RouteCost(route []Cell) int {
	total := 0
	for _, c := range route[1:] {
		total += c.maze.Cost(c.Point)
	}
	return total
}

// ValidRoute reports whether consecutive cells of route are open neighbours.
func ValidRoute(route []Cell) bool {
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		if !b.maze.Open(b.Point) || Abs(a.X-b.X)+Abs(a.Y-b.Y) != 1 {
			return false
		}
	}
	return true
}

// ShortestCost returns the cheapest cost from the start to the goal, or -1
// if the goal is unreachable. With weighted false every step costs 1, which
// gives the minimal number of steps.
func (m *Maze) ShortestCost(weighted bool) int {
	const inf = int(^uint(0) >> 1)
	dist := map[Point]int{m.start: 0}
	done := map[Point]bool{}
	for {
		cur, best := Point{}, inf
		for p, d := range dist {
			if !done[p] && (d < best || d == best && (p.Y < cur.Y || p.Y == cur.Y && p.X < cur.X)) {
				cur, best = p, d
			}
		}
		if best == inf {
			return -1
		}
		if cur == m.goal {
			return best
		}
		done[cur] = true
		for _, d := range [...]Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
			p := Point{cur.X + d.X, cur.Y + d.Y}
			if !m.Open(p) {
				continue
			}
			step := 1
			if weighted {
				step = m.Cost(p)
			}
			if old, ok := dist[p]; !ok || best+step < old {
				dist[p] = best + step
			}
		}
	}
}

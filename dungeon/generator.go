// Package dungeon carves braided maze levels with rooms and scenery for the sandbox and tests
package dungeon

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/world"
)

// Config controls level generation
type Config struct {
	Width, Height int

	// Braiding: 0.0 leaves a perfect maze, 1.0 removes every dead end it safely can
	Braiding float64

	// Rooms is the number of rectangular halls carved over the maze
	Rooms int

	// Scenery is the chance per eligible wall cell to become a special feature
	Scenery float64

	Seed uint64
}

// Result is a generated level
type Result struct {
	Grid       rl.Grid
	Start, End gruid.Point
	// Path is the shortest walk from Start to End, both included
	Path []gruid.Point
}

var (
	jumps = []gruid.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	ortho = []gruid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
)

// Generate builds a level ringed by permanent rock
func Generate(cfg Config) Result {
	w, h := ensureOdd(cfg.Width), ensureOdd(cfg.Height)
	g := rl.NewGrid(w, h)
	g.Fill(world.RockWall)
	r := rng.New(cfg.Seed)

	start := gruid.Point{X: 1, Y: 1}
	end := gruid.Point{X: w - 2, Y: h - 2}

	backtrack(g, start, r)
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, r)
	}
	for range cfg.Rooms {
		carveRoom(g, r)
	}
	if cfg.Scenery > 0 {
		decorate(g, cfg.Scenery, r)
	}
	border(g)
	g.Set(start, world.Floor)
	g.Set(end, world.Floor)

	return Result{
		Grid:  g,
		Start: start,
		End:   end,
		Path:  solve(g, start, end),
	}
}

// backtrack carves a uniform spanning tree over the odd cells
func backtrack(g rl.Grid, start gruid.Point, r *rng.RNG) {
	inner := innerRange(g)
	stack := []gruid.Point{start}
	g.Set(start, world.Floor)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]gruid.Point, 0, 4)
		for _, d := range jumps {
			next := curr.Add(d)
			if next.In(inner) && g.At(next) != world.Floor {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[r.Random2(len(candidates))]
		g.Set(curr.Add(half(d)), world.Floor)
		next := curr.Add(d)
		g.Set(next, world.Floor)
		stack = append(stack, next)
	}
}

// braid opens walls at dead ends to make loops without leaving 2x2 plazas or lone pillars
func braid(g rl.Grid, probability float64, r *rng.RNG) {
	rg := g.Bounds()
	for y := 1; y < rg.Max.Y-1; y += 2 {
		for x := 1; x < rg.Max.X-1; x += 2 {
			p := gruid.Point{X: x, Y: y}
			if !open(g, p) || exits(g, p) != 1 {
				continue
			}
			if float64(r.Random2(1000)) >= probability*1000 {
				continue
			}
			candidates := make([]gruid.Point, 0, 4)
			for _, d := range jumps {
				wall := p.Add(half(d))
				if open(g, p.Add(d)) && !open(g, wall) && safeToOpen(g, wall) {
					candidates = append(candidates, wall)
				}
			}
			if len(candidates) > 0 {
				g.Set(candidates[r.Random2(len(candidates))], world.Floor)
			}
		}
	}
}

// safeToOpen reports whether opening p keeps the maze free of plazas and pillars
func safeToOpen(g rl.Grid, p gruid.Point) bool {
	at := func(dx, dy int) bool { return open(g, p.Add(gruid.Point{X: dx, Y: dy})) }

	if at(-1, -1) && at(0, -1) && at(-1, 0) ||
		at(0, -1) && at(1, -1) && at(1, 0) ||
		at(-1, 0) && at(-1, 1) && at(0, 1) ||
		at(1, 0) && at(0, 1) && at(1, 1) {
		return false
	}

	for _, d := range ortho {
		n := p.Add(d)
		if !g.Contains(n) || open(g, n) {
			continue
		}
		walls := 0
		for _, d2 := range ortho {
			nn := n.Add(d2)
			if nn == p || !g.Contains(nn) {
				continue
			}
			if !open(g, nn) {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}
	return true
}

// carveRoom clears a random rectangle inside the border
func carveRoom(g rl.Grid, r *rng.RNG) {
	inner := innerRange(g)
	size := inner.Size()
	if size.X < 5 || size.Y < 5 {
		return
	}
	rw := r.RandomRange(3, min(7, size.X-2))
	rh := r.RandomRange(3, min(5, size.Y-2))
	x := inner.Min.X + r.Random2(size.X-rw+1)
	y := inner.Min.Y + r.Random2(size.Y-rh+1)
	g.Slice(gruid.NewRange(x, y, x+rw, y+rh)).Fill(world.Floor)
}

// decorate turns some walls into scenery and fills corridor chokepoints with doors
func decorate(g rl.Grid, chance float64, r *rng.RNG) {
	inner := innerRange(g)
	scenery := []rng.Weighted[rl.Cell]{
		{Value: world.StoneWall, Weight: 4},
		{Value: world.Tree, Weight: 4},
		{Value: world.MetalWall, Weight: 1},
		{Value: world.CrystalWall, Weight: 1},
		{Value: world.Statue, Weight: 1},
	}
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			p := gruid.Point{X: x, Y: y}
			if float64(r.Random2(1000)) >= chance*1000 {
				continue
			}
			switch {
			case g.At(p) == world.RockWall:
				g.Set(p, rng.ChooseWeighted(r, scenery))
			case corridor(g, p):
				g.Set(p, world.ClosedDoor)
			case exits(g, p) >= 3:
				g.Set(p, world.ShallowWater)
			}
		}
	}
}

// corridor reports whether p is open and boxed in on exactly two opposite sides
func corridor(g rl.Grid, p gruid.Point) bool {
	if !open(g, p) {
		return false
	}
	ns := !open(g, p.Add(ortho[0])) && !open(g, p.Add(ortho[1]))
	we := !open(g, p.Add(ortho[2])) && !open(g, p.Add(ortho[3]))
	return ns != we
}

func border(g rl.Grid) {
	rg := g.Bounds()
	for x := rg.Min.X; x < rg.Max.X; x++ {
		g.Set(gruid.Point{X: x, Y: rg.Min.Y}, world.PermaRock)
		g.Set(gruid.Point{X: x, Y: rg.Max.Y - 1}, world.PermaRock)
	}
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		g.Set(gruid.Point{X: rg.Min.X, Y: y}, world.PermaRock)
		g.Set(gruid.Point{X: rg.Max.X - 1, Y: y}, world.PermaRock)
	}
}

// walkable adapts the grid for gruid breadth-first maps
type walkable struct {
	g   rl.Grid
	nbs paths.Neighbors
}

func (wk *walkable) Neighbors(p gruid.Point) []gruid.Point {
	return wk.nbs.Cardinal(p, func(q gruid.Point) bool {
		return wk.g.Contains(q) && passable(wk.g.At(q))
	})
}

// solve walks the breadth-first distance gradient back from end
func solve(g rl.Grid, start, end gruid.Point) []gruid.Point {
	if !passable(g.At(start)) || !passable(g.At(end)) {
		return nil
	}
	size := g.Size()
	limit := size.X * size.Y
	pr := paths.NewPathRange(g.Bounds())
	wk := &walkable{g: g}
	pr.BreadthFirstMap(wk, []gruid.Point{start}, limit)
	dist := pr.BreadthFirstMapAt(end)
	if dist > limit {
		return nil
	}

	path := make([]gruid.Point, dist+1)
	path[dist] = end
	curr := end
	for d := dist - 1; d >= 0; d-- {
		for _, n := range wk.Neighbors(curr) {
			if pr.BreadthFirstMapAt(n) == d {
				curr = n
				break
			}
		}
		path[d] = curr
	}
	return path
}

// Connected reports whether every passable cell is reachable from p
func Connected(g rl.Grid, p gruid.Point) bool {
	size := g.Size()
	limit := size.X * size.Y
	pr := paths.NewPathRange(g.Bounds())
	pr.BreadthFirstMap(&walkable{g: g}, []gruid.Point{p}, limit)
	it := g.Iterator()
	for it.Next() {
		if passable(it.Cell()) && pr.BreadthFirstMapAt(it.P()) > limit {
			return false
		}
	}
	return true
}

// passable counts doors as walkable so door placement never splits the level
func passable(c rl.Cell) bool {
	return !world.IsSolid(c) || world.IsClosedDoor(c)
}

func open(g rl.Grid, p gruid.Point) bool {
	return g.Contains(p) && g.At(p) == world.Floor
}

func exits(g rl.Grid, p gruid.Point) int {
	n := 0
	for _, d := range ortho {
		if open(g, p.Add(d)) {
			n++
		}
	}
	return n
}

func half(d gruid.Point) gruid.Point {
	return gruid.Point{X: d.X / 2, Y: d.Y / 2}
}

func innerRange(g rl.Grid) gruid.Range {
	return g.Bounds().Shift(1, 1, -1, -1)
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

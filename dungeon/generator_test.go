package dungeon

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"pgregory.net/rapid"

	"github.com/lixenwraith/beamcrawl/world"
)

func checkPath(t interface{ Errorf(string, ...any) }, res Result) {
	if len(res.Path) == 0 {
		t.Errorf("Expected a path from %v to %v", res.Start, res.End)
		return
	}
	if res.Path[0] != res.Start || res.Path[len(res.Path)-1] != res.End {
		t.Errorf("Expected path %v..%v, got %v..%v", res.Start, res.End, res.Path[0], res.Path[len(res.Path)-1])
	}
	for i := 1; i < len(res.Path); i++ {
		if paths.DistanceManhattan(res.Path[i], res.Path[i-1]) != 1 {
			t.Errorf("Expected cardinal step at %d, got %v -> %v", i, res.Path[i-1], res.Path[i])
		}
		if !passable(res.Grid.At(res.Path[i])) {
			t.Errorf("Expected passable cell on path at %v", res.Path[i])
		}
	}
}

func deadEnds(g rl.Grid) int {
	n := 0
	it := g.Iterator()
	for it.Next() {
		if it.Cell() == world.Floor && exits(g, it.P()) == 1 {
			n++
		}
	}
	return n
}

func TestPerfectMaze(t *testing.T) {
	res := Generate(Config{Width: 21, Height: 15, Seed: 7})

	size := res.Grid.Size()
	if size.X != 21 || size.Y != 15 {
		t.Fatalf("Expected 21x15 grid, got %v", size)
	}
	rg := res.Grid.Bounds()
	for x := 0; x < size.X; x++ {
		for _, y := range []int{rg.Min.Y, rg.Max.Y - 1} {
			if c := res.Grid.At(gruid.Point{X: x, Y: y}); c != world.PermaRock {
				t.Errorf("Expected permanent rock border at (%d,%d), got %s", x, y, world.FeatureName(c))
			}
		}
	}
	if !Connected(res.Grid, res.Start) {
		t.Error("Expected every floor cell reachable from start")
	}
	checkPath(t, res)
}

func TestEvenSizeRoundsDown(t *testing.T) {
	res := Generate(Config{Width: 20, Height: 2, Seed: 1})
	if size := res.Grid.Size(); size.X != 19 || size.Y != 3 {
		t.Errorf("Expected 19x3 grid, got %v", size)
	}
}

func TestSameSeedSameLevel(t *testing.T) {
	cfg := Config{Width: 31, Height: 21, Braiding: 0.5, Rooms: 3, Scenery: 0.1, Seed: 42}
	a, b := Generate(cfg), Generate(cfg)
	it := a.Grid.Iterator()
	for it.Next() {
		if b.Grid.At(it.P()) != it.Cell() {
			t.Fatalf("Expected identical levels, differ at %v", it.P())
		}
	}
}

func TestBraidingRemovesDeadEndsWithoutPlazas(t *testing.T) {
	perfect := Generate(Config{Width: 31, Height: 21, Seed: 3})
	braided := Generate(Config{Width: 31, Height: 21, Braiding: 1, Seed: 3})

	if got, was := deadEnds(braided.Grid), deadEnds(perfect.Grid); got > was {
		t.Errorf("Expected braiding to remove dead ends, got %d from %d", got, was)
	}

	it := braided.Grid.Iterator()
	for it.Next() {
		p := it.P()
		if open(braided.Grid, p) && open(braided.Grid, p.Add(gruid.Point{X: 1})) &&
			open(braided.Grid, p.Add(gruid.Point{Y: 1})) && open(braided.Grid, p.Add(gruid.Point{X: 1, Y: 1})) {
			t.Errorf("Expected no 2x2 plaza at %v", p)
		}
	}
	checkPath(t, braided)
}

func TestSceneryKeepsLevelConnected(t *testing.T) {
	res := Generate(Config{Width: 41, Height: 25, Braiding: 0.3, Rooms: 4, Scenery: 0.3, Seed: 11})

	if !Connected(res.Grid, res.Start) {
		t.Error("Expected scenery to leave the level connected")
	}
	if res.Grid.At(res.Start) != world.Floor || res.Grid.At(res.End) != world.Floor {
		t.Error("Expected floor at start and end")
	}
	checkPath(t, res)

	special := 0
	it := res.Grid.Iterator()
	for it.Next() {
		switch it.Cell() {
		case world.Tree, world.StoneWall, world.MetalWall, world.CrystalWall, world.Statue, world.ClosedDoor:
			special++
		}
	}
	if special == 0 {
		t.Error("Expected some scenery features")
	}
}

func TestWorldFromGeneratedLevel(t *testing.T) {
	res := Generate(Config{Width: 21, Height: 15, Rooms: 1, Seed: 5})
	w := world.FromGrid(res.Grid)
	if w.CellIsSolid(res.Start) {
		t.Error("Expected open start cell in the world")
	}
	if !w.CellIsSolid(gruid.Point{}) {
		t.Error("Expected solid corner")
	}
}

func TestGeneratedLevelsAlwaysConnected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := Config{
			Width:    rapid.IntRange(5, 45).Draw(rt, "width"),
			Height:   rapid.IntRange(5, 31).Draw(rt, "height"),
			Braiding: float64(rapid.IntRange(0, 10).Draw(rt, "braid")) / 10,
			Rooms:    rapid.IntRange(0, 5).Draw(rt, "rooms"),
			Scenery:  float64(rapid.IntRange(0, 5).Draw(rt, "scenery")) / 10,
			Seed:     rapid.Uint64().Draw(rt, "seed"),
		}
		res := Generate(cfg)
		if !Connected(res.Grid, res.Start) {
			rt.Fatalf("level %+v not connected", cfg)
		}
		checkPath(rt, res)
	})
}

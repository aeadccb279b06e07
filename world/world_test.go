package world

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/rng"
)

func pt(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }

func TestNewRingsLevelWithPermaRock(t *testing.T) {
	w := New(10, 8)
	if w.FeatAt(pt(0, 0)) != PermaRock || w.FeatAt(pt(9, 7)) != PermaRock {
		t.Error("Expected permanent rock border")
	}
	if w.FeatAt(pt(4, 4)) != Floor {
		t.Error("Expected floor interior")
	}
	if w.FeatAt(pt(-1, 3)) != PermaRock {
		t.Error("Expected off-map cells to read as permanent rock")
	}
}

func TestFeaturePredicates(t *testing.T) {
	if !IsSolid(Grate) || !IsMetal(Grate) || IsOpaque(Grate) {
		t.Error("Expected grate solid, metal, transparent")
	}
	if !IsTree(Tree) || IsWall(Tree) || !IsFlammable(Tree) {
		t.Error("Expected tree solid non-wall flammable")
	}
	if !IsClosedDoor(ClosedDoor) || IsClosedDoor(OpenDoor) {
		t.Error("Expected only the closed door to block")
	}
	if !IsEndless(OpenSea) || IsDiggable(OpenSea) {
		t.Error("Expected open sea endless and undiggable")
	}
	if !IsStoneLike(StoneWall) || !IsStoneLike(CrystalWall) || IsStoneLike(RockWall) {
		t.Error("Expected stone and crystal to be stone-like")
	}
}

func TestSpawnMoveRemove(t *testing.T) {
	w := New(10, 10)
	w.SetPlayer(actor.NewPlayer(pt(2, 2)))
	orc := w.SpawnMonster(actor.Lookup("orc"), pt(5, 5), actor.Hostile)
	if orc == nil {
		t.Fatal("Expected spawn to succeed")
	}
	if w.SpawnMonster(actor.Lookup("orc"), pt(5, 5), actor.Hostile) != nil {
		t.Error("Expected occupied cell to refuse a second spawn")
	}
	if w.MonsterAt(pt(5, 5)) != orc {
		t.Error("Expected orc at (5,5)")
	}
	if w.MonsterAt(pt(2, 2)) != nil || w.ActorAt(pt(2, 2)) == nil {
		t.Error("Expected player to be an actor but not a monster")
	}
	if !w.Move(orc, pt(6, 5)) || w.ActorAt(pt(5, 5)) != nil {
		t.Error("Expected orc to move")
	}
	if w.Move(orc, pt(0, 5)) {
		t.Error("Expected solid cell to refuse move")
	}
	w.Remove(orc)
	if w.ActorByMID(orc.MID()) != nil || w.ActorAt(pt(6, 5)) != nil {
		t.Error("Expected orc removed")
	}
}

func TestDestroyWallAndPermanence(t *testing.T) {
	w := New(10, 10)
	w.SetFeat(pt(4, 4), StoneWall)
	if !w.DestroyWall(pt(4, 4)) || w.FeatAt(pt(4, 4)) != Floor {
		t.Error("Expected stone wall destroyed")
	}
	if w.DestroyWall(pt(0, 0)) {
		t.Error("Expected permanent rock to survive")
	}
}

func TestCloudPlacement(t *testing.T) {
	w := New(10, 10)
	if w.PlaceCloud(CloudFire, pt(0, 0), 10, actor.MIDPlayer) {
		t.Error("Expected no cloud on solid cell")
	}
	w.PlaceCloud(CloudFire, pt(3, 3), 10, actor.MIDPlayer)
	w.PlaceCloud(CloudFire, pt(3, 3), 5, actor.MIDPlayer)
	c, ok := w.CloudAt(pt(3, 3))
	if !ok || c.Duration != 10 {
		t.Errorf("Expected refreshed cloud keeping duration 10, got %+v", c)
	}
}

func TestLineOfSight(t *testing.T) {
	w := New(20, 10)
	w.SetPlayer(actor.NewPlayer(pt(2, 5)))
	if !w.PlayerSees(pt(8, 5)) {
		t.Error("Expected clear corridor visible")
	}
	w.SetFeat(pt(5, 5), Grate)
	if !w.PlayerSees(pt(8, 5)) {
		t.Error("Expected grate transparent to ordinary sight")
	}
	if w.SeeCellNoTrans(pt(8, 5)) {
		t.Error("Expected grate to block no-trans sight")
	}
	if w.PlayerSees(pt(15, 5)) {
		t.Error("Expected cell beyond sight radius hidden")
	}
}

func TestWetNearWater(t *testing.T) {
	w := New(10, 10)
	w.SetFeat(pt(4, 4), ShallowWater)
	if !w.Wet(pt(5, 5)) {
		t.Error("Expected cell beside water to be wet")
	}
	if w.Wet(pt(7, 7)) {
		t.Error("Expected distant cell dry")
	}
}

func TestTempChangeTerrainRemembersOriginal(t *testing.T) {
	w := New(10, 10)
	w.TempChangeTerrain(pt(3, 3), ShallowWater, 50, "acid wave")
	w.TempChangeTerrain(pt(3, 3), DeepWater, 50, "flood")
	tt, ok := w.TempTerrainAt(pt(3, 3))
	if !ok || tt.Original != Floor || tt.Feat != DeepWater {
		t.Errorf("Expected original floor preserved, got %+v", tt)
	}
}

func TestDigestTracksMutation(t *testing.T) {
	w := New(10, 10)
	w.SetPlayer(actor.NewPlayer(pt(2, 2)))
	before := w.Digest()
	if w.Digest() != before {
		t.Fatal("Expected digest to be stable")
	}
	w.PlaceSpecificTrap(pt(4, 4), TrapWeb, 10)
	if w.Digest() == before {
		t.Error("Expected trap to change the digest")
	}
}

func TestTeleportAndBanish(t *testing.T) {
	w := New(12, 12)
	w.SetPlayer(actor.NewPlayer(pt(2, 2)))
	orc := w.SpawnMonster(actor.Lookup("orc"), pt(5, 5), actor.Hostile)
	g := rng.New(9)
	if !w.Teleport(orc, g) {
		t.Fatal("Expected teleport to find a cell")
	}
	if w.ActorAt(orc.Pos()) != orc {
		t.Error("Expected occupancy to follow the teleport")
	}
	if !w.Banish(orc) || len(w.Banished) != 1 {
		t.Error("Expected banish to record the orc")
	}
	if w.Banish(w.Player()) {
		t.Error("Expected player not banishable")
	}
}

func TestPushStopsAtWall(t *testing.T) {
	w := New(10, 10)
	orc := w.SpawnMonster(actor.Lookup("orc"), pt(6, 5), actor.Hostile)
	if got := w.Push(orc, pt(1, 0), 5); got != 2 {
		t.Errorf("Expected 2 cells before the border, got %d", got)
	}
	if orc.Pos() != pt(8, 5) {
		t.Errorf("Expected (8,5), got %v", orc.Pos())
	}
}

func TestPlaceHaloLightsSquare(t *testing.T) {
	w := New(10, 8)
	if got := w.PlaceHalo(pt(1, 1), 1, 20); got != 9 {
		t.Errorf("Expected 9 lit cells, got %d", got)
	}
	if !w.Haloed(pt(2, 2)) || w.Haloed(pt(3, 1)) {
		t.Error("Expected only the 3x3 square lit")
	}
	if w.PlaceHalo(pt(4, 4), 1, 0) != 0 || w.Haloed(pt(4, 4)) {
		t.Error("Expected a zero duration halo to light nothing")
	}
}

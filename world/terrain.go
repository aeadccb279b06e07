// Package world holds the dungeon state a bolt reads and mutates: terrain, clouds, items, traps and actors
package world

import "codeberg.org/anaseto/gruid/rl"

// Terrain features stored in the rl.Grid
const (
	Floor rl.Cell = iota
	RockWall
	StoneWall
	PermaRock
	MetalWall
	Grate
	CrystalWall
	SlimeWall
	Tree
	ClosedDoor
	OpenDoor
	RunedDoor
	OrcishIdol
	Statue
	OpenSea
	Lava
	DeepWater
	ShallowWater
	featureCount
)

type featureInfo struct {
	name  string
	glyph rune
	flags featureFlag
}

type featureFlag uint16

const (
	fSolid featureFlag = 1 << iota
	fWall
	fOpaque
	fTree
	fDoor
	fMetal
	fEndless
	fDiggable
	fWatery
	fFlammable
	fWooden
	fPermanent
)

var features = [featureCount]featureInfo{
	Floor:        {"floor", '.', 0},
	RockWall:     {"rock wall", '#', fSolid | fWall | fOpaque | fDiggable},
	StoneWall:    {"stone wall", '#', fSolid | fWall | fOpaque | fDiggable},
	PermaRock:    {"permanent rock wall", '#', fSolid | fWall | fOpaque | fPermanent},
	MetalWall:    {"metal wall", '#', fSolid | fWall | fOpaque | fMetal},
	Grate:        {"iron grate", '#', fSolid | fWall | fMetal | fDiggable},
	CrystalWall:  {"crystal wall", '#', fSolid | fWall | fDiggable},
	SlimeWall:    {"slime covered rock wall", '#', fSolid | fWall | fOpaque | fDiggable},
	Tree:         {"tree", '♣', fSolid | fOpaque | fTree | fFlammable},
	ClosedDoor:   {"closed door", '+', fSolid | fOpaque | fDoor | fWooden},
	OpenDoor:     {"open door", '\'', fDoor | fWooden},
	RunedDoor:    {"runed door", '+', fSolid | fOpaque | fDoor | fPermanent},
	OrcishIdol:   {"orcish idol", '8', fSolid | fDiggable},
	Statue:       {"statue", '8', fSolid},
	OpenSea:      {"open sea", '~', fSolid | fWall | fEndless | fWatery},
	Lava:         {"lava", '≈', 0},
	DeepWater:    {"deep water", '≈', fWatery},
	ShallowWater: {"shallow water", '~', fWatery},
}

func info(f rl.Cell) featureInfo {
	if f < 0 || f >= featureCount {
		return featureInfo{name: "unknown", glyph: '?', flags: fSolid | fWall | fOpaque | fPermanent}
	}
	return features[f]
}

// FeatureName returns the display name of a feature
func FeatureName(f rl.Cell) string { return info(f).name }

// FeatureGlyph returns the map glyph of a feature
func FeatureGlyph(f rl.Cell) rune { return info(f).glyph }

// IsSolid reports whether bolts and walkers are blocked
func IsSolid(f rl.Cell) bool { return info(f).flags&fSolid != 0 }

// IsWall reports whether the feature is a wall proper (trees and doors are not)
func IsWall(f rl.Cell) bool { return info(f).flags&fWall != 0 }

// IsOpaque reports whether the feature blocks sight
func IsOpaque(f rl.Cell) bool { return info(f).flags&fOpaque != 0 }

// IsTree reports whether the feature is a tree
func IsTree(f rl.Cell) bool { return info(f).flags&fTree != 0 }

// IsDoor reports whether the feature is a door of any state
func IsDoor(f rl.Cell) bool { return info(f).flags&fDoor != 0 }

// IsClosedDoor reports whether the feature is a door that blocks movement
func IsClosedDoor(f rl.Cell) bool { return IsDoor(f) && IsSolid(f) }

// IsMetal reports whether the feature is metal
func IsMetal(f rl.Cell) bool { return info(f).flags&fMetal != 0 }

// IsEndless reports whether the feature extends forever, like open sea
func IsEndless(f rl.Cell) bool { return info(f).flags&fEndless != 0 }

// IsDiggable reports whether a digging bolt can remove the feature
func IsDiggable(f rl.Cell) bool { return info(f).flags&fDiggable != 0 }

// IsWatery reports whether the feature is water
func IsWatery(f rl.Cell) bool { return info(f).flags&fWatery != 0 }

// IsFlammable reports whether fire can burn the feature away
func IsFlammable(f rl.Cell) bool { return info(f).flags&fFlammable != 0 }

// IsWooden reports whether the feature is a wooden door
func IsWooden(f rl.Cell) bool { return info(f).flags&fWooden != 0 }

// IsPermanent reports whether nothing can destroy the feature
func IsPermanent(f rl.Cell) bool { return info(f).flags&fPermanent != 0 }

// IsStoneLike reports whether digging pays the heavy toll for the feature
func IsStoneLike(f rl.Cell) bool { return f == StoneWall || f == CrystalWall }

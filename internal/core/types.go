package core

import "math/bits"

// PhysShift is the number of fractional bits per tile in fixed-point coordinates.
const PhysShift = 16

// PhysPerTile is the number of fixed-point units along one tile edge.
const PhysPerTile = 1 << PhysShift

// Phys represents a single fixed-point coordinate component
type Phys = int64

// Phys3 is a fixed-point position: two ground axes and elevation
type Phys3 struct {
	NE, SE, Up Phys
}

// Phys3Delta is the difference between two Phys3 positions
type Phys3Delta struct {
	NE, SE, Up Phys
}

// Tile is a position on the coarse tile grid
type Tile struct {
	NE, SE int64
}

// Vector2D represents a 2D vector on the ground plane
type Vector2D struct {
	X, Y float64
}

// Add returns the position shifted by d
func (p Phys3) Add(d Phys3Delta) Phys3 {
	return Phys3{NE: p.NE + d.NE, SE: p.SE + d.SE, Up: p.Up + d.Up}
}

// Sub returns the delta from other to p
func (p Phys3) Sub(other Phys3) Phys3Delta {
	return Phys3Delta{NE: p.NE - other.NE, SE: p.SE - other.SE, Up: p.Up - other.Up}
}

// ToTile quantizes the position onto the tile grid (rounding toward -inf)
func (p Phys3) ToTile() Tile {
	return Tile{NE: p.NE >> PhysShift, SE: p.SE >> PhysShift}
}

// Hash mixes every axis and folds them with a one-bit rotation and xor.
// Neighbor positions differ only in high bits of the fixed-point value,
// so each axis is mixed before folding.
func (p Phys3) Hash() uint64 {
	h := bits.RotateLeft64(mix64(uint64(p.NE)), 1) ^ mix64(uint64(p.SE))
	return bits.RotateLeft64(h, 1) ^ mix64(uint64(p.Up))
}

// Scale multiplies every component by f, truncating toward zero
func (d Phys3Delta) Scale(f float64) Phys3Delta {
	return Phys3Delta{
		NE: Phys(float64(d.NE) * f),
		SE: Phys(float64(d.SE) * f),
		Up: Phys(float64(d.Up) * f),
	}
}

// Origin returns the fixed-point position of the tile's north corner
func (t Tile) Origin() Phys3 {
	return Phys3{NE: t.NE << PhysShift, SE: t.SE << PhysShift}
}

// Center returns the fixed-point position of the tile's center
func (t Tile) Center() Phys3 {
	o := t.Origin()
	return Phys3{NE: o.NE + PhysPerTile/2, SE: o.SE + PhysPerTile/2}
}

// mix64 is the splitmix64 finalizer
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// PassableFunc reports whether a position can be traversed
type PassableFunc func(pos Phys3) bool

// ValidEndFunc reports whether a position satisfies the search goal
type ValidEndFunc func(pos Phys3) bool

// HeuristicFunc estimates the remaining cost from a position to the goal
type HeuristicFunc func(pos Phys3) float64

// DistanceFunc measures the distance between two positions
type DistanceFunc func(a, b Phys3) float64

package geometry

import "github.com/KirkDiggler/roll-bonuses/internal/domain/entity"

// GridType is the scene grid topology
type GridType int

const (
	GridSquare GridType = iota
	GridGridless
)

// DiagonalRule is how square grids count diagonal moves
type DiagonalRule int

const (
	// Diagonals5105 alternates 5ft and 10ft for successive diagonals
	Diagonals5105 DiagonalRule = iota
	// Diagonals555 counts every diagonal as one cell
	Diagonals555
)

// ParseDiagonalRule accepts the configuration spelling ("5105", "555")
func ParseDiagonalRule(s string) DiagonalRule {
	if s == "555" {
		return Diagonals555
	}
	return Diagonals5105
}

// Grid holds scene measurement metadata
type Grid struct {
	// Size is one cell in pixels
	Size float64
	// Distance is one cell in feet
	Distance  float64
	Type      GridType
	Diagonals DiagonalRule
}

// Disposition is a token's side in the encounter
type Disposition int

const (
	DispositionSecret   Disposition = -2
	DispositionHostile  Disposition = -1
	DispositionNeutral  Disposition = 0
	DispositionFriendly Disposition = 1
)

// Scene groups the tokens that can be measured against each other
type Scene struct {
	ID     string
	Grid   Grid
	Tokens []*Token
}

// AddToken places t in the scene
func (s *Scene) AddToken(t *Token) *Token {
	t.Scene = s
	s.Tokens = append(s.Tokens, t)
	return t
}

// TokenFor returns the first token representing actor
func (s *Scene) TokenFor(actor *entity.Actor) *Token {
	if s == nil || actor == nil {
		return nil
	}
	for _, t := range s.Tokens {
		if t.Actor == actor {
			return t
		}
	}
	return nil
}

// Token is an actor's placement in a scene
type Token struct {
	ID          string
	Scene       *Scene
	Bounds      Rect
	Elevation   float64
	Disposition Disposition
	Actor       *entity.Actor
}

func (t *Token) grid() Grid {
	return t.Scene.Grid
}

// floor is the token's lowest point in pixel units
func (t *Token) floor() float64 {
	g := t.grid()
	return t.Elevation * (g.Size / g.Distance)
}

// ceiling treats a token as a cube as tall as its average footprint side
func (t *Token) ceiling() float64 {
	return t.floor() + (t.Bounds.W+t.Bounds.H)/2
}

func (t *Token) size() entity.Size {
	if t.Actor == nil {
		return entity.SizeMedium
	}
	return t.Actor.Size
}

func (t *Token) isLeftOf(o *Token) bool       { return t.Bounds.Right() <= o.Bounds.Left() }
func (t *Token) isRightOf(o *Token) bool      { return t.Bounds.Left() >= o.Bounds.Right() }
func (t *Token) isAbove(o *Token) bool        { return t.Bounds.Bottom() <= o.Bounds.Top() }
func (t *Token) isBelow(o *Token) bool        { return t.Bounds.Top() >= o.Bounds.Bottom() }
func (t *Token) isAboveCeiling(o *Token) bool { return t.floor() >= o.ceiling() }
func (t *Token) isBelowFloor(o *Token) bool   { return t.ceiling() <= o.floor() }

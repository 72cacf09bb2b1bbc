package geometry

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// Pair is an ordered pair of tokens in the same scene. The first token is
// the observer (attacker, shooter) and the second its subject.
type Pair struct {
	first  *Token
	second *Token
}

// NewPair fails with an invalid argument error when the tokens are missing
// or placed in different scenes.
func NewPair(first, second *Token) (*Pair, error) {
	if first == nil || second == nil {
		return nil, errors.InvalidArgument("positional pair requires two tokens")
	}
	if first.Scene == nil || first.Scene != second.Scene {
		return nil, errors.InvalidArgumentf("tokens %q and %q must be in the same scene", first.ID, second.ID).
			WithMeta("first", first.ID).
			WithMeta("second", second.ID)
	}
	return &Pair{first: first, second: second}, nil
}

// MustPair is NewPair for tokens known to share a scene
func MustPair(first, second *Token) *Pair {
	p, err := NewPair(first, second)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pair) First() *Token  { return p.first }
func (p *Pair) Second() *Token { return p.second }

// Distance in feet, 0 when the tokens share a square
func (p *Pair) Distance() float64 {
	return distance(p.first, p.second)
}

func (p *Pair) IsSharingSquare() bool {
	return isSharingSquare(p.first, p.second)
}

func (p *Pair) IsAdjacent() bool {
	return isAdjacent(p.first, p.second, false)
}

// IsDiagonalReachAdjacent is the adjacency used for the 10ft reach diagonal rule
func (p *Pair) IsDiagonalReachAdjacent() bool {
	return isAdjacent(p.first, p.second, true)
}

// IsWithinRange uses NaN for "no minimum" or "no maximum"
func (p *Pair) IsWithinRange(minFeet, maxFeet float64, reach bool) bool {
	return isWithinRange(p.first, p.second, minFeet, maxFeet, reach)
}

// Threatens reports whether the first token threatens the second, with action
// or with any usable melee attack when action is nil.
func (p *Pair) Threatens(action *entity.Action) bool {
	return threatens(p.first, p.second, action)
}

func (p *Pair) IsEngagedInMelee() bool {
	return threatens(p.first, p.second, nil) || threatens(p.second, p.first, nil)
}

func (p *Pair) IsOnHigherGround() bool {
	return p.first.floor() > p.second.floor()
}

// ShootingIntoMeleePenalty is the attack penalty for the first token firing at
// the second while the second is in melee with the first token's allies.
func (p *Pair) ShootingIntoMeleePenalty() int {
	shooter, target := p.first, p.second

	penalty := 0
	for _, ally := range shooter.Scene.Tokens {
		if ally == shooter || ally == target {
			continue
		}
		if ally.Disposition == target.Disposition || ally.Disposition != shooter.Disposition {
			continue
		}

		engagement := &Pair{first: target, second: ally}
		difference := target.size() - ally.size()
		if !engagement.IsAdjacent() || !engagement.IsEngagedInMelee() || difference >= 3 {
			continue
		}

		penalty = max(penalty, meleePenalty(target.size(), difference))
	}
	return penalty
}

func meleePenalty(target entity.Size, difference entity.Size) int {
	// huge or larger targets leave room to aim past the ally
	if target >= entity.SizeHuge {
		return 0
	}
	if difference == 2 {
		return 2
	}
	return 4
}

func threatens(attacker, target *Token, action *entity.Action) bool {
	actor := attacker.Actor
	if actor != nil {
		if slices.ContainsFunc(entity.ThreatDisablingConditions, actor.HasCondition) {
			return false
		}
		if actor.HasCondition(entity.ConditionBlind) && !actor.Senses.IgnoresBlindness() {
			return false
		}
		if target.Actor.HasCondition(entity.ConditionInvisible) && !actor.Senses.PerceivesInvisible() {
			return false
		}
	}

	var actions []*entity.Action
	switch {
	case action != nil:
		actions = []*entity.Action{action}
	case actor != nil:
		actions = meleeAttacks(actor)
	}

	for _, a := range actions {
		maxFeet := a.MaxRange()
		if maxFeet == 0 {
			maxFeet = a.RangeFeet()
		}
		if isWithinRange(attacker, target, a.MinRange(), maxFeet, hasReach(a)) {
			return true
		}
	}
	return false
}

func meleeAttacks(actor *entity.Actor) []*entity.Action {
	var out []*entity.Action
	for _, item := range actor.Items {
		if !item.Usable || !item.Active {
			continue
		}
		for _, a := range item.Actions {
			if a.IsMelee() {
				out = append(out, a)
			}
		}
	}
	return out
}

func hasReach(a *entity.Action) bool {
	if item := a.Item; item != nil && item.Kind.IsWeaponLike() && item.HasWeaponGroup("natural") {
		return true
	}
	return a.HasReachRange()
}

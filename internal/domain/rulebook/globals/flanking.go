package globals

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/specific"
)

// Flanking bonuses on melee attacks
const (
	FlankingBonus = 2
	OutflankBonus = 4
)

// Flanking grants a melee attack bonus against a target the attacker flanks
// with an ally. Gang up counts two threatening allies as flanking; outflank
// raises the bonus when the flanking ally has it too. Every target must be
// flanked and the smallest bonus applies.
type Flanking struct {
	sources.BaseGlobal
}

func NewFlanking() *Flanking {
	return &Flanking{
		BaseGlobal: sources.NewBaseGlobal("flanking", sources.Journal(sources.JournalGlobals, "flanking")),
	}
}

// Bonus is the flanking bonus of the pair's first token against the second,
// 0 when not flanking
func (g *Flanking) Bonus(p *geometry.Pair) int {
	attacker, target := p.First(), p.Second()
	if attacker.Actor == nil || !p.Threatens(nil) {
		return 0
	}

	allies := geometry.ThreateningAllies(attacker, target)
	outflank := attacker.Actor.HasAnyBooleanFlag(specific.OutflankKey)
	bonus := 0
	for _, ally := range allies {
		if !geometry.IsFlanking(attacker, ally, target) {
			continue
		}
		bonus = max(bonus, FlankingBonus)
		if outflank && ally.Actor != nil && ally.Actor.HasAnyBooleanFlag(specific.OutflankKey) {
			bonus = OutflankBonus
		}
	}
	if bonus == 0 && len(allies) >= 2 && attacker.Actor.HasAnyBooleanFlag(specific.GangUpKey) {
		bonus = FlankingBonus
	}
	return bonus
}

func (g *Flanking) Apply(env *sources.Env, use *rolls.ActionUse) error {
	if use.Action == nil || !use.Action.IsMelee() {
		return nil
	}
	ps, err := pairs(use)
	if err != nil || len(ps) == 0 {
		return err
	}

	bonus := OutflankBonus
	for _, p := range ps {
		bonus = min(bonus, g.Bonus(p))
	}
	return attackConditional(env, use, g.Label(env.Loc), bonus)
}

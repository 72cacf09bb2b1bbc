package globals

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// HigherGroundBonus is the melee attack bonus from higher ground
const HigherGroundBonus = 1

// HigherGround grants +1 on melee attacks when the attacker stands higher
// than every target
type HigherGround struct {
	sources.BaseGlobal
}

func NewHigherGround() *HigherGround {
	return &HigherGround{
		BaseGlobal: sources.NewBaseGlobal("higher-ground", sources.Journal(sources.JournalGlobals, "higher-ground")),
	}
}

func (g *HigherGround) Apply(env *sources.Env, use *rolls.ActionUse) error {
	if use.Action == nil || !use.Action.IsMelee() {
		return nil
	}
	ps, err := pairs(use)
	if err != nil || len(ps) == 0 {
		return err
	}
	for _, p := range ps {
		if !p.IsOnHigherGround() {
			return nil
		}
	}
	return attackConditional(env, use, g.Label(env.Loc), HigherGroundBonus)
}

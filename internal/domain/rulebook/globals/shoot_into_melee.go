package globals

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// ShootIntoMelee is the penalty for a ranged attack at a target in melee with
// the shooter's allies. With several targets the worst penalty applies.
type ShootIntoMelee struct {
	sources.BaseGlobal
}

func NewShootIntoMelee() *ShootIntoMelee {
	return &ShootIntoMelee{
		BaseGlobal: sources.NewBaseGlobal("shoot-into-melee", sources.Journal(sources.JournalGlobals, "shooting-into-melee")),
	}
}

func (g *ShootIntoMelee) Apply(env *sources.Env, use *rolls.ActionUse) error {
	if use.Action == nil || !use.Action.IsRanged() {
		return nil
	}
	ps, err := pairs(use)
	if err != nil {
		return err
	}

	penalty := 0
	for _, p := range ps {
		penalty = max(penalty, p.ShootingIntoMeleePenalty())
	}
	return attackConditional(env, use, g.Label(env.Loc), -penalty)
}

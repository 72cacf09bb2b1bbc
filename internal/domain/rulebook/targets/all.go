package targets

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// AllTarget is the catch all: its sources apply to every attack of the actor
type AllTarget struct {
	sources.BaseTarget
}

func NewAllTarget() *AllTarget {
	t := &AllTarget{BaseTarget: sources.NewBaseTarget("all", sources.Journal(sources.JournalTargets, "all"))}
	t.Generic = true
	return t
}

func (t *AllTarget) SourcesFor(_ *sources.Env, subject sources.Subject) []*entity.Item {
	if action := subject.ResolveAction(); action != nil && action.HasAttack() {
		return t.Candidates(subject)
	}
	if item := subject.ResolveItem(); item != nil && item.HasAttack() {
		return t.Candidates(subject)
	}
	return nil
}

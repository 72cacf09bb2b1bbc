package targets

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// CreatureSubtypes are the host's creature subtypes offered by the input
var CreatureSubtypes = []string{
	"aeon", "agathion", "air", "angel", "aquatic", "archon", "augmented",
	"azata", "chaotic", "cold", "daemon", "demon", "devil", "dwarf", "earth",
	"elemental", "elf", "evil", "extraplanar", "fire", "giant", "gnome",
	"goblinoid", "good", "halfling", "human", "incorporeal", "inevitable",
	"lawful", "native", "orc", "reptilian", "shapechanger", "swarm", "undead",
	"water",
}

// CreatureSubtypeTarget applies during an action use when every targeted
// creature has one of the listed subtypes
type CreatureSubtypeTarget struct {
	sources.BaseTarget
}

func NewCreatureSubtypeTarget() *CreatureSubtypeTarget {
	t := &CreatureSubtypeTarget{
		BaseTarget: sources.NewBaseTarget("creature-subtype", sources.Journal(sources.JournalConditionalTargets, "creature-type")),
	}
	t.Conditional = true
	return t
}

func (t *CreatureSubtypeTarget) SourcesFor(_ *sources.Env, subject sources.Subject) []*entity.Item {
	targeted := subject.TargetActors()
	if len(targeted) == 0 {
		return nil
	}
	return filter(t.Candidates(subject), func(source *entity.Item) bool {
		subtypes := source.Flags.Strings(t.Key())
		for _, actor := range targeted {
			if !intersects(subtypes, actor.CreatureSubtypes) {
				return false
			}
		}
		return true
	})
}

func (t *CreatureSubtypeTarget) Hints(_ *sources.Env, source *entity.Item) []string {
	return joinHint(source.Flags.Strings(t.Key()))
}

func (t *CreatureSubtypeTarget) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := t.Input(env, item, sheet.InputTrait, editable)
	input.Choices = choices(CreatureSubtypes)
	return []sheet.Input{input}
}

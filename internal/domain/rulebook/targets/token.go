package targets

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// TokenTarget applies during an action use when every targeted token was
// chosen on the source. Its editor opens when the source is activated.
type TokenTarget struct {
	sources.BaseTarget
}

func NewTokenTarget() *TokenTarget {
	t := &TokenTarget{BaseTarget: sources.NewBaseTarget("token", sources.Journal(sources.JournalConditionalTargets, "token"))}
	t.Conditional = true
	t.ShowOnActive = true
	return t
}

func (t *TokenTarget) SourcesFor(_ *sources.Env, subject sources.Subject) []*entity.Item {
	if subject.Use == nil || len(subject.Use.Targets) == 0 {
		return nil
	}
	return filter(t.Candidates(subject), func(source *entity.Item) bool {
		chosen := source.Flags.Strings(t.Key())
		for _, token := range subject.Use.Targets {
			if !slices.Contains(chosen, token.ID) {
				return false
			}
		}
		return true
	})
}

func (t *TokenTarget) Hints(_ *sources.Env, source *entity.Item) []string {
	return joinHint(source.Flags.Strings(t.Key()))
}

func (t *TokenTarget) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{t.Input(env, item, sheet.InputTokens, editable)}
}

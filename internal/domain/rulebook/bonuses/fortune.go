package bonuses

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// Roll data counters the host reads to roll twice
const (
	PathFortune    = "fortuneCount"
	PathMisfortune = "misfortuneCount"
)

// FortuneBonus adds one fortune to the targeted rolls
type FortuneBonus struct {
	sources.BaseBonus
}

func NewFortuneBonus() *FortuneBonus {
	return &FortuneBonus{BaseBonus: sources.NewBaseBonus("fortune", sources.Journal(sources.JournalBonuses, "fortune"))}
}

func (b *FortuneBonus) AlterRollData(_ *sources.Env, _ *entity.Item, shared *rolls.Shared) {
	shared.RollData.Add(PathFortune, 1)
}

// MisfortuneBonus adds one misfortune to the targeted rolls
type MisfortuneBonus struct {
	sources.BaseBonus
}

func NewMisfortuneBonus() *MisfortuneBonus {
	return &MisfortuneBonus{BaseBonus: sources.NewBaseBonus("misfortune", sources.Journal(sources.JournalBonuses, "misfortune"))}
}

func (b *MisfortuneBonus) AlterRollData(_ *sources.Env, _ *entity.Item, shared *rolls.Shared) {
	shared.RollData.Add(PathMisfortune, 1)
}

package specific

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// Keys the flanking global reads from the actors involved
const (
	GangUpKey   = "gang-up"
	OutflankKey = "outflank"
)

// GangUp lets its owner flank a creature two allies threaten
type GangUp struct {
	sources.BaseSpecific
}

func NewGangUp() *GangUp {
	return &GangUp{
		BaseSpecific: sources.NewBaseSpecific(GangUpKey, sources.Journal(sources.JournalSpecifics, "gang-up-(feat)"), "sy6IEh9YQ3278buR"),
	}
}

// Outflank raises the flanking bonus to +4 with an ally who also has it
type Outflank struct {
	sources.BaseSpecific
}

func NewOutflank() *Outflank {
	return &Outflank{
		BaseSpecific: sources.NewBaseSpecific(OutflankKey, sources.Journal(sources.JournalGlobals, "outflank"), "ln2Dhw97Fol1BCxU"),
	}
}

package rolls

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
)

// Shared is the roll state carried through a single action use
type Shared struct {
	RollData     RollData
	Conditionals []*Conditional
	AttackBonus  []string
	DamageBonus  []DamagePart
	ChatProps    []string
	EffectNotes  []EffectNote
	// FormData holds the attack dialog inputs ("global-bonus.dialog-disable.flanking")
	FormData map[string]any
}

// NewShared returns shared state with empty collections
func NewShared() *Shared {
	return &Shared{
		RollData: RollData{},
		FormData: map[string]any{},
	}
}

// FormBool reads a dialog checkbox
func (s *Shared) FormBool(key string) bool {
	if s == nil {
		return false
	}
	v, ok := s.FormData[key].(bool)
	return ok && v
}

// ActionUse is an action being used right now
type ActionUse struct {
	Actor  *entity.Actor
	Item   *entity.Item
	Action *entity.Action
	// Token is the acting token when the use happens on a scene
	Token   *geometry.Token
	Targets []*geometry.Token
	Shared  *Shared
}

// TargetActors lists the actors behind the targeted tokens
func (u *ActionUse) TargetActors() []*entity.Actor {
	if u == nil {
		return nil
	}
	actors := make([]*entity.Actor, 0, len(u.Targets))
	for _, t := range u.Targets {
		if t.Actor != nil {
			actors = append(actors, t.Actor)
		}
	}
	return actors
}

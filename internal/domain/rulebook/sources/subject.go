package sources

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
)

// Subject is what a resolution pass runs against: an item, one of its
// actions, an action being used, or a bare actor.
type Subject struct {
	Item   *entity.Item
	Action *entity.Action
	Use    *rolls.ActionUse
	Actor  *entity.Actor
}

func ForItem(item *entity.Item) Subject       { return Subject{Item: item} }
func ForAction(action *entity.Action) Subject { return Subject{Action: action} }
func ForUse(use *rolls.ActionUse) Subject     { return Subject{Use: use} }
func ForActor(actor *entity.Actor) Subject    { return Subject{Actor: actor} }

func (s Subject) ResolveItem() *entity.Item {
	switch {
	case s.Use != nil && s.Use.Item != nil:
		return s.Use.Item
	case s.Action != nil && s.Action.Item != nil:
		return s.Action.Item
	}
	return s.Item
}

// ResolveAction falls back to the item's default action
func (s Subject) ResolveAction() *entity.Action {
	switch {
	case s.Use != nil && s.Use.Action != nil:
		return s.Use.Action
	case s.Action != nil:
		return s.Action
	}
	if item := s.ResolveItem(); item != nil {
		return item.DefaultAction()
	}
	return nil
}

func (s Subject) ResolveActor() *entity.Actor {
	if s.Use != nil && s.Use.Actor != nil {
		return s.Use.Actor
	}
	if item := s.ResolveItem(); item != nil && item.Actor != nil {
		return item.Actor
	}
	return s.Actor
}

// TargetActors are the actors targeted by the use, if any
func (s Subject) TargetActors() []*entity.Actor {
	return s.Use.TargetActors()
}

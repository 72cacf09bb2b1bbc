// Package join resolves which bonus sources apply to an item, action or
// action use and folds their contributions into the roll.
package join

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// Engine joins bonus sources to the subjects their targets point at. It keeps
// no state of its own; prepared data lives in the env's index.
type Engine struct {
	env *sources.Env
}

func New(env *sources.Env) *Engine {
	return &Engine{env: env}
}

func (e *Engine) Env() *sources.Env { return e.env }

// Option changes a single ForEach pass
type Option func(*options)

type options struct {
	skipGeneric bool
}

// SkipGenericTarget leaves catch-all targets out of the pass
func SkipGenericTarget() Option {
	return func(o *options) { o.skipGeneric = true }
}

// Prepare caches, for every item of actor, the bonus and target kinds it is
// a source of and the overrides it carries
func (e *Engine) Prepare(actor *entity.Actor) {
	if actor == nil {
		return
	}
	for _, item := range actor.Items {
		e.PrepareItem(item)
	}
	e.env.Logger().Debug("prepared actor",
		zap.String("actor_id", actor.ID),
		zap.Int("items", len(actor.Items)))
}

// PrepareItem refreshes the cached kinds of one item
func (e *Engine) PrepareItem(item *entity.Item) *sources.Prepared {
	p := &sources.Prepared{}
	for _, bonus := range e.env.Registry.Bonuses() {
		if bonus.IsSource(item) {
			p.Bonuses = append(p.Bonuses, bonus)
		}
	}
	for _, target := range e.env.Registry.Targets() {
		if target.IsSource(item) {
			p.Targets = append(p.Targets, target)
		}
	}
	for _, override := range e.env.Registry.Overrides() {
		if override.IsSource(item) && !override.IsInvalidItem(item) {
			override.Prepare(e.env, item, p)
		}
	}
	e.env.Index.Put(item.ID, p)
	return p
}

// prepared returns the cached data of item, preparing it on first use
func (e *Engine) prepared(item *entity.Item) *sources.Prepared {
	if p, ok := e.env.Index.Get(item.ID); ok {
		return p
	}
	return e.PrepareItem(item)
}

// ForEach calls fn once for every bonus kind of every source that applies
// to subject. A source reached through several targets is used once, and
// only when every target kind it carries reports the subject. Targets left
// out of enumeration are still asked during that check.
func (e *Engine) ForEach(subject sources.Subject, fn func(source *entity.Item, bonus sources.Bonus), opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	reported := make(map[string]map[string]bool)
	report := func(target sources.Target) map[string]bool {
		if ids, ok := reported[target.Key()]; ok {
			return ids
		}
		ids := make(map[string]bool)
		for _, source := range target.SourcesFor(e.env, subject) {
			ids[source.ID] = true
		}
		reported[target.Key()] = ids
		return ids
	}

	seen := make(map[string]bool)
	var matched []*entity.Item
	for _, target := range e.env.Registry.Targets() {
		if o.skipGeneric && target.Meta().Generic {
			continue
		}
		ids := make(map[string]bool)
		for _, source := range target.SourcesFor(e.env, subject) {
			ids[source.ID] = true
			if seen[source.ID] {
				continue
			}
			seen[source.ID] = true
			matched = append(matched, source)
		}
		reported[target.Key()] = ids
	}

	for _, source := range matched {
		p := e.prepared(source)
		if !agrees(p, report, source.ID) {
			continue
		}
		for _, bonus := range p.Bonuses {
			fn(source, bonus)
		}
	}
}

// agrees reports whether every target kind of the source reports it
func agrees(p *sources.Prepared, report func(sources.Target) map[string]bool, sourceID string) bool {
	for _, target := range p.Targets {
		if !report(target)[sourceID] {
			return false
		}
	}
	return true
}

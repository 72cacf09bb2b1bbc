// Package module connects the engine to the host's lifecycle notifications.
// Each handler reads its payload from the event context and writes its
// contributions back into the same payload.
package module

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/events"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/join"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// PriorityEngine is the priority of every engine listener. Host listeners
// that must see engine output subscribe with a larger value.
const PriorityEngine = 100

// Module owns the engine listeners of one session
type Module struct {
	env    *sources.Env
	engine *join.Engine
	bus    events.Bus

	// ctx bounds flag writes made by listeners; it is set by Register
	mu        sync.RWMutex
	ctx       context.Context
	listeners map[events.EventType]events.EventListener
}

// Config holds the dependencies of a Module
type Config struct {
	Env *sources.Env
	Bus events.Bus
}

// New creates a module. The env's registry should already be sealed.
func New(cfg *Config) *Module {
	if cfg == nil || cfg.Env == nil {
		panic("env is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	m := &Module{
		env:    cfg.Env,
		engine: join.New(cfg.Env),
		bus:    cfg.Bus,
		ctx:    context.Background(),
	}
	m.listeners = map[events.EventType]events.EventListener{
		events.PrepareData:                 m.listener(m.onPrepareData),
		events.GetRollData:                 m.listener(m.onGetRollData),
		events.AddDefaultChanges:           m.listener(m.onAddDefaultChanges),
		events.PreCreateItem:               m.listener(m.onPreCreateItem),
		events.UpdateItem:                  m.listener(m.onUpdateItem),
		events.RenderItemSheet:             m.listener(m.onRenderItemSheet),
		events.ItemHints:                   m.listener(m.onItemHints),
		events.ActionUseHandleConditionals: m.listener(m.onHandleConditionals),
		events.ActionUseAlterRollData:      m.listener(m.onAlterRollData),
		events.ItemGetAttackSources:        m.listener(m.onAttackSources),
		events.ActionDamageSources:         m.listener(m.onDamageSources),
		events.ItemGetTypeChatData:         m.listener(m.onChatData),
		events.ChatAttackEffectNotes:       m.listener(m.onEffectNotes),
		events.CritConfirm:                 m.listener(m.onCritConfirm),
		events.RollSkill:                   m.listener(m.onRollSkill),
	}
	return m
}

func (m *Module) Engine() *join.Engine { return m.engine }
func (m *Module) Env() *sources.Env    { return m.env }

// Register subscribes every engine listener. ctx is used for flag writes
// until Unregister.
func (m *Module) Register(ctx context.Context) {
	m.setContext(ctx)
	for eventType, listener := range m.listeners {
		m.bus.Subscribe(eventType, listener)
	}
	m.env.Logger().Info("registered roll bonus listeners",
		zap.Int("listeners", len(m.listeners)),
		zap.Int("kinds", m.env.Registry.Len()))
}

// Unregister removes every engine listener
func (m *Module) Unregister() {
	for eventType, listener := range m.listeners {
		m.bus.Unsubscribe(eventType, listener)
	}
	m.setContext(context.Background())
}

func (m *Module) setContext(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
}

// context returns the context listeners use for flag writes
func (m *Module) context() context.Context {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ctx
}

func (m *Module) listener(fn func(*events.GameEvent) error) events.EventListener {
	return events.NewListenerFunc(PriorityEngine, fn)
}

// applies reports whether this process should apply automatic mutations for
// event. Only the active user does, and only for its own notifications.
func (m *Module) applies(event *events.GameEvent) bool {
	cfg := m.env.Config.Module
	if !cfg.IsActiveUser() {
		return false
	}
	userID, ok := event.GetStringContext(events.ContextUserID)
	return !ok || userID == cfg.UserID
}

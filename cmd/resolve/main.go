package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/config"
	"github.com/KirkDiggler/roll-bonuses/internal/dice"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/events"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/expr"
	"github.com/KirkDiggler/roll-bonuses/internal/fixtures"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
	"github.com/KirkDiggler/roll-bonuses/internal/logging"
	"github.com/KirkDiggler/roll-bonuses/internal/module"
	"github.com/KirkDiggler/roll-bonuses/internal/repositories/flags"
	"github.com/KirkDiggler/roll-bonuses/internal/uuid"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: resolve <encounter.yaml> [config.yaml]")
		os.Exit(1)
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	configPath := ""
	if len(os.Args) > 2 {
		configPath = os.Args[2]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	enc, err := fixtures.LoadFile(os.Args[1])
	if err != nil {
		logger.Fatal("Failed to load encounter", zap.String("path", os.Args[1]), zap.Error(err))
	}

	ctx := context.Background()

	repo := flags.NewInMemoryRepository()
	if cfg.Redis.URL != "" {
		client, closeFn := connectRedis(ctx, logger, cfg.Redis.URL)
		if client != nil {
			defer closeFn()
			repo = flags.NewRedis(client, cfg.Redis.KeyPrefix)
			if err := loadStoredFlags(ctx, repo, enc); err != nil {
				logger.Fatal("Failed to load stored flags", zap.Error(err))
			}
		}
	} else {
		logger.Info("No redis url configured, flag writes stay in memory")
	}

	env, err := newEnv(cfg, logger, repo)
	if err != nil {
		logger.Fatal("Failed to create engine environment", zap.Error(err))
	}

	bus := events.NewEventBus(events.WithLogger(logger.Named("bus")))
	mod := module.New(&module.Config{Env: env, Bus: bus})
	mod.Register(ctx)
	defer mod.Unregister()

	r := &resolver{bus: bus, log: logger}
	for _, actor := range enc.Actors {
		r.emit(events.NewGameEvent(events.PrepareData).WithActor(actor))
	}

	fmt.Printf("Encounter: %s\n", enc.Name)
	for _, actor := range enc.Actors {
		r.reportActor(actor)
	}
	if enc.Attack != nil {
		r.reportAttack(enc.Attack)
	}
}

func connectRedis(ctx context.Context, logger *zap.Logger, url string) (*redis.Client, func()) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("Failed to parse redis url, falling back to memory", zap.Error(err))
		return nil, nil
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logger.Warn("Failed to connect to redis, falling back to memory", zap.Error(err))
		return nil, nil
	}

	logger.Info("Using redis for flag persistence", zap.String("addr", opts.Addr))
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close redis connection", zap.Error(err))
		}
	}
}

// loadStoredFlags replaces fixture flags with the stored ones, for items
// that have a record
func loadStoredFlags(ctx context.Context, repo flags.Repository, enc *fixtures.Encounter) error {
	items := make(map[string]*entity.Item)
	var ids []string
	for _, actor := range enc.Actors {
		for _, item := range actor.Items {
			items[item.ID] = item
			ids = append(ids, item.ID)
		}
	}

	records, err := repo.GetMany(ctx, ids)
	if err != nil {
		return err
	}
	for id, record := range records {
		record.ApplyTo(items[id])
	}
	return nil
}

func newEnv(cfg config.Config, logger *zap.Logger, repo flags.Repository) (*sources.Env, error) {
	registry, err := rulebook.NewRegistry()
	if err != nil {
		return nil, err
	}
	eval, err := expr.NewEvaluator(dice.NewRandomRoller())
	if err != nil {
		return nil, err
	}
	predicates, err := expr.NewPredicates()
	if err != nil {
		return nil, err
	}
	loc, err := i18n.New(cfg.Module.Locale, nil)
	if err != nil {
		return nil, err
	}

	return &sources.Env{
		Registry:   registry,
		Index:      sources.NewIndex(),
		Eval:       eval,
		Predicates: predicates,
		Loc:        loc,
		Log:        logger,
		IDs:        uuid.NewGoogleUUIDGenerator(),
		Config:     cfg,
		Flags:      repo,
	}, nil
}

type resolver struct {
	bus events.Bus
	log *zap.Logger
}

// emit reports listener errors without stopping the report
func (r *resolver) emit(event *events.GameEvent) {
	if err := r.bus.Emit(event); err != nil {
		r.log.Error("Listener failed", zap.String("event", event.Type.String()), zap.Error(err))
	}
}

func (r *resolver) reportActor(actor *entity.Actor) {
	fmt.Printf("\nActor: %s (%s)\n", actor.Name, actor.ID)

	var changes []rolls.Change
	r.emit(events.NewGameEvent(events.AddDefaultChanges).
		WithActor(actor).
		WithContext(events.ContextChanges, &changes))
	for _, c := range changes {
		fmt.Printf("  change %s %s: %s (%s)\n", c.Target, c.Type, c.Formula, c.Name)
	}

	for _, item := range actor.Items {
		var hints []rolls.Hint
		r.emit(events.NewGameEvent(events.ItemHints).
			WithItem(item).
			WithContext(events.ContextHints, &hints))
		if len(hints) == 0 {
			continue
		}
		fmt.Printf("  %s\n", item.Name)
		for _, h := range hints {
			fmt.Printf("    %s: %s\n", h.Label, strings.ReplaceAll(h.Hint, "\n", ", "))
		}
	}
}

func (r *resolver) reportAttack(use *rolls.ActionUse) {
	fmt.Printf("\nAttack: %s with %s\n", use.Actor.Name, use.Item.Name)

	var list []rolls.ModifierSource
	r.emit(events.NewGameEvent(events.ItemGetAttackSources).
		WithItem(use.Item).
		WithContext(events.ContextSources, &list))
	for _, s := range list {
		fmt.Printf("  attack %+g %s (%s)\n", s.Value, s.Name, s.Modifier)
	}

	var damage []rolls.Change
	r.emit(events.NewGameEvent(events.ActionDamageSources).
		WithItem(use.Item).
		WithContext(events.ContextAction, use.Action).
		WithContext(events.ContextChanges, &damage))
	for _, c := range damage {
		fmt.Printf("  damage %s %s (%s)\n", c.Formula, c.Type, c.Name)
	}

	r.emit(events.NewGameEvent(events.ActionUseHandleConditionals).
		WithItem(use.Item).
		WithContext(events.ContextActionUse, use))
	r.emit(events.NewGameEvent(events.ActionUseAlterRollData).
		WithItem(use.Item).
		WithContext(events.ContextActionUse, use))

	for _, c := range use.Shared.Conditionals {
		fmt.Printf("  conditional %s\n", c.Name)
	}
	if len(use.Shared.AttackBonus) > 0 {
		fmt.Printf("  attack bonus: %s\n", strings.Join(use.Shared.AttackBonus, " + "))
	}
	for _, part := range use.Shared.DamageBonus {
		fmt.Printf("  damage bonus: %+v\n", part)
	}

	var props []string
	r.emit(events.NewGameEvent(events.ItemGetTypeChatData).
		WithItem(use.Item).
		WithContext(events.ContextAction, use.Action).
		WithContext(events.ContextChatProps, &props))
	props = append(props, use.Shared.ChatProps...)
	for _, p := range props {
		fmt.Printf("  chat: %s\n", p)
	}

	var notes []rolls.EffectNote
	r.emit(events.NewGameEvent(events.ChatAttackEffectNotes).
		WithItem(use.Item).
		WithContext(events.ContextActionUse, use).
		WithContext(events.ContextEffectNotes, &notes))
	for _, n := range notes {
		fmt.Printf("  note: %s (%s)\n", n.Text, n.Source)
	}
}

// Package fixtures loads encounters described in YAML: a scene, the actors
// on it with their items and flags, and optionally one attack to resolve.
// Formula flags are strings; quote numeric formulas such as "2".
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// Encounter is a loaded fixture
type Encounter struct {
	Name   string
	Scene  *geometry.Scene
	Actors []*entity.Actor
	// Attack is the action use to resolve, nil when the file has none
	Attack *rolls.ActionUse
}

// Actor returns the actor with id
func (e *Encounter) Actor(id string) *entity.Actor {
	for _, a := range e.Actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

type yamlEncounterFile struct {
	Encounter yamlEncounter `yaml:"encounter"`
}

type yamlEncounter struct {
	Name   string      `yaml:"name"`
	Scene  yamlScene   `yaml:"scene"`
	Actors []yamlActor `yaml:"actors"`
	Tokens []yamlToken `yaml:"tokens"`
	Attack *yamlAttack `yaml:"attack"`
}

type yamlScene struct {
	ID        string  `yaml:"id"`
	GridSize  float64 `yaml:"grid_size"`
	Distance  float64 `yaml:"distance"`
	Diagonals string  `yaml:"diagonals"`
	Gridless  bool    `yaml:"gridless"`
}

type yamlActor struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Size             string         `yaml:"size"`
	Reach            float64        `yaml:"reach"`
	Conditions       []string       `yaml:"conditions"`
	CreatureTypes    []string       `yaml:"creature_types"`
	CreatureSubtypes []string       `yaml:"creature_subtypes"`
	Skills           map[string]int `yaml:"skills"`
	Items            []yamlItem     `yaml:"items"`
}

type yamlItem struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Kind             string         `yaml:"kind"`
	Inactive         bool           `yaml:"inactive"`
	Slot             string         `yaml:"slot"`
	BaseTypes        []string       `yaml:"base_types"`
	WeaponGroups     []string       `yaml:"weapon_groups"`
	Proficient       *bool          `yaml:"proficient"`
	Tags             []string       `yaml:"tags"`
	Descriptors      []string       `yaml:"descriptors"`
	School           string         `yaml:"school"`
	ArmorBase        int            `yaml:"armor_base"`
	ACP              int            `yaml:"acp"`
	CompendiumSource string         `yaml:"compendium_source"`
	BooleanFlags     []string       `yaml:"boolean_flags"`
	Flags            map[string]any `yaml:"flags"`
	Actions          []yamlAction   `yaml:"actions"`
}

type yamlAction struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	RangeUnits  string   `yaml:"range_units"`
	RangeValue  float64  `yaml:"range_value"`
	Increments  int      `yaml:"increments"`
	DamageTypes []string `yaml:"damage_types"`
	CritRange   int      `yaml:"crit_range"`
	CritMult    int      `yaml:"crit_mult"`
}

type yamlToken struct {
	Actor       string  `yaml:"actor"`
	Col         float64 `yaml:"col"`
	Row         float64 `yaml:"row"`
	Cells       float64 `yaml:"cells"`
	Elevation   float64 `yaml:"elevation"`
	Disposition string  `yaml:"disposition"`
}

type yamlAttack struct {
	Actor   string         `yaml:"actor"`
	Item    string         `yaml:"item"`
	Action  string         `yaml:"action"`
	Targets []string       `yaml:"targets"`
	Form    map[string]any `yaml:"form"`
}

// LoadFile reads and converts a single encounter file
func LoadFile(path string) (*Encounter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading encounter file %s", path)
	}
	return Load(data)
}

// Load parses an encounter from YAML bytes
func Load(data []byte) (*Encounter, error) {
	var file yamlEncounterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing encounter YAML")
	}
	return convert(file.Encounter)
}

func convert(ye yamlEncounter) (*Encounter, error) {
	enc := &Encounter{Name: ye.Name, Scene: convertScene(ye.Scene)}

	for _, ya := range ye.Actors {
		actor, err := convertActor(ya)
		if err != nil {
			return nil, errors.Wrapf(err, "actor %s", ya.ID)
		}
		if enc.Actor(actor.ID) != nil {
			return nil, errors.AlreadyExistsf("actor %q is listed twice", actor.ID)
		}
		enc.Actors = append(enc.Actors, actor)
	}

	for _, yt := range ye.Tokens {
		actor := enc.Actor(yt.Actor)
		if actor == nil {
			return nil, errors.NotFoundf("token for unknown actor %q", yt.Actor)
		}
		disposition, err := parseDisposition(yt.Disposition)
		if err != nil {
			return nil, err
		}
		cells := yt.Cells
		if cells == 0 {
			cells = 1
		}
		size := enc.Scene.Grid.Size
		enc.Scene.AddToken(&geometry.Token{
			ID:          "token-" + actor.ID,
			Bounds:      geometry.Rect{X: yt.Col * size, Y: yt.Row * size, W: cells * size, H: cells * size},
			Elevation:   yt.Elevation,
			Disposition: disposition,
			Actor:       actor,
		})
	}

	if ye.Attack != nil {
		use, err := enc.convertAttack(*ye.Attack)
		if err != nil {
			return nil, errors.Wrap(err, "attack")
		}
		enc.Attack = use
	}
	return enc, nil
}

func convertScene(ys yamlScene) *geometry.Scene {
	grid := geometry.Grid{
		Size:      ys.GridSize,
		Distance:  ys.Distance,
		Type:      geometry.GridSquare,
		Diagonals: geometry.ParseDiagonalRule(ys.Diagonals),
	}
	if grid.Size == 0 {
		grid.Size = 100
	}
	if grid.Distance == 0 {
		grid.Distance = 5
	}
	if ys.Gridless {
		grid.Type = geometry.GridGridless
	}
	id := ys.ID
	if id == "" {
		id = "scene"
	}
	return &geometry.Scene{ID: id, Grid: grid}
}

func convertActor(ya yamlActor) (*entity.Actor, error) {
	if ya.ID == "" {
		return nil, errors.InvalidArgument("actor id is required")
	}
	size := entity.SizeMedium
	if ya.Size != "" {
		parsed, err := entity.ParseSize(ya.Size)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "size")
		}
		size = parsed
	}

	actor := &entity.Actor{
		ID:               ya.ID,
		Name:             ya.Name,
		Size:             size,
		Reach:            ya.Reach,
		Conditions:       make(map[entity.Condition]bool, len(ya.Conditions)),
		CreatureTypes:    ya.CreatureTypes,
		CreatureSubtypes: ya.CreatureSubtypes,
		Skills:           ya.Skills,
		Flags:            entity.Flags{},
	}
	if actor.Name == "" {
		actor.Name = ya.ID
	}
	if actor.Skills == nil {
		actor.Skills = map[string]int{}
	}
	for _, c := range ya.Conditions {
		actor.Conditions[entity.Condition(c)] = true
	}

	for _, yi := range ya.Items {
		item, err := convertItem(yi)
		if err != nil {
			return nil, errors.Wrapf(err, "item %s", yi.ID)
		}
		if actor.Item(item.ID) != nil {
			return nil, errors.AlreadyExistsf("item %q is listed twice", item.ID)
		}
		actor.AddItem(item)
	}
	return actor, nil
}

func convertItem(yi yamlItem) (*entity.Item, error) {
	if yi.ID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}
	kind, err := entity.ParseItemKind(yi.Kind)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "kind")
	}

	item := &entity.Item{
		ID:               yi.ID,
		Name:             yi.Name,
		Kind:             kind,
		Active:           !yi.Inactive,
		Usable:           len(yi.Actions) > 0,
		Slot:             yi.Slot,
		BaseTypes:        yi.BaseTypes,
		WeaponGroups:     yi.WeaponGroups,
		Proficient:       yi.Proficient == nil || *yi.Proficient,
		Tags:             yi.Tags,
		Descriptors:      yi.Descriptors,
		School:           yi.School,
		Armor:            entity.ArmorStats{Base: yi.ArmorBase, ACP: yi.ACP},
		CompendiumSource: yi.CompendiumSource,
		Flags:            entity.Flags(yi.Flags),
	}
	if item.Name == "" {
		item.Name = yi.ID
	}
	if item.Flags == nil {
		item.Flags = entity.Flags{}
	}
	for _, key := range yi.BooleanFlags {
		item.AddBooleanFlag(key)
	}

	for i, ya := range yi.Actions {
		id := ya.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", yi.ID, i)
		}
		item.AddAction(&entity.Action{
			ID:   id,
			Name: ya.Name,
			Type: entity.ActionType(ya.Type),
			Range: entity.Range{
				Units:         entity.RangeUnits(ya.RangeUnits),
				Value:         ya.RangeValue,
				MaxIncrements: ya.Increments,
			},
			DamageTypes: ya.DamageTypes,
			CritRange:   orDefault(ya.CritRange, 20),
			CritMult:    orDefault(ya.CritMult, 2),
		})
	}
	return item, nil
}

func (e *Encounter) convertAttack(ya yamlAttack) (*rolls.ActionUse, error) {
	actor := e.Actor(ya.Actor)
	if actor == nil {
		return nil, errors.NotFoundf("unknown actor %q", ya.Actor)
	}
	item := actor.Item(ya.Item)
	if item == nil {
		return nil, errors.NotFoundf("actor %q has no item %q", ya.Actor, ya.Item)
	}
	action := item.DefaultAction()
	if ya.Action != "" {
		action = item.Action(ya.Action)
	}
	if action == nil {
		return nil, errors.NotFoundf("item %q has no action %q", ya.Item, ya.Action)
	}

	use := &rolls.ActionUse{
		Actor:  actor,
		Item:   item,
		Action: action,
		Token:  e.Scene.TokenFor(actor),
		Shared: rolls.NewShared(),
	}
	for k, v := range ya.Form {
		use.Shared.FormData[k] = v
	}
	for _, id := range ya.Targets {
		token := e.Scene.TokenFor(e.Actor(id))
		if token == nil {
			return nil, errors.NotFoundf("target %q has no token", id)
		}
		use.Targets = append(use.Targets, token)
	}
	return use, nil
}

func parseDisposition(s string) (geometry.Disposition, error) {
	switch s {
	case "friendly":
		return geometry.DispositionFriendly, nil
	case "hostile":
		return geometry.DispositionHostile, nil
	case "", "neutral":
		return geometry.DispositionNeutral, nil
	case "secret":
		return geometry.DispositionSecret, nil
	}
	return 0, errors.InvalidArgumentf("unknown disposition %q", s)
}

// orDefault returns v, or def when v is unset
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

package specific

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// TrueInspirationKey flags the class feature that doubles the inspiration dice
const TrueInspirationKey = "inspiration-true"

// Inspiration adds the inspiration die to skill rolls the actor chooses to
// inspire. The chosen skills are stored on the source; none means every skill.
type Inspiration struct {
	sources.BaseSpecific
	focused *FocusedInspiration
}

func NewInspiration() *Inspiration {
	return &Inspiration{
		BaseSpecific: sources.NewBaseSpecific("inspiration", sources.Journal(sources.JournalSpecifics, "inspiration")),
		focused:      NewFocusedInspiration(),
	}
}

// DieKey optionally raises the base die ("d8")
func (s *Inspiration) DieKey() string { return s.SubKey("die") }

// Formula is the inspiration roll for skillID, empty when the actor has no
// inspiration for it
func (s *Inspiration) Formula(actor *entity.Actor, skillID string) string {
	found := actorSources(actor, s.Key())
	if len(found) == 0 {
		return ""
	}

	die := "d6"
	covered := false
	for _, source := range found {
		if d := source.Flags.String(s.DieKey()); d == "d8" {
			die = d
		}
		skills := source.Flags.Strings(s.Key())
		covered = covered || len(skills) == 0 || slices.Contains(skills, skillID)
	}
	if !covered {
		return ""
	}

	if s.focused.Covers(actor, skillID) {
		die = upgradeDie(die)
	}
	count := 1
	if actor.HasAnyBooleanFlag(TrueInspirationKey) {
		count = 2
	}
	return fmt.Sprintf("%d%s", count, die)
}

func upgradeDie(die string) string {
	switch die {
	case "d6":
		return "d8"
	case "d8":
		return "d10"
	}
	return die
}

func (s *Inspiration) SkillRollParts(env *sources.Env, actor *entity.Actor, skillID string, inspiration bool) []string {
	if !inspiration {
		return nil
	}
	formula := s.Formula(actor, skillID)
	if formula == "" {
		return nil
	}
	return []string{fmt.Sprintf("%s[%s]", formula, s.Label(env.Loc))}
}

func (s *Inspiration) Hints(_ *sources.Env, source *entity.Item) []string {
	return joinSkills(source.Flags.Strings(s.Key()))
}

func (s *Inspiration) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := s.Input(env, item, sheet.InputTrait, editable)
	input.Choices = skillChoices(item.Actor)
	return []sheet.Input{input}
}

// FocusedInspiration rolls a larger inspiration die on two chosen skills
type FocusedInspiration struct {
	sources.BaseSpecific
}

// FocusedSkillLimit is the number of skills focused inspiration may pick
const FocusedSkillLimit = 2

func NewFocusedInspiration() *FocusedInspiration {
	f := &FocusedInspiration{
		BaseSpecific: sources.NewBaseSpecific("inspiration-focused",
			sources.Journal(sources.JournalSpecifics, "inspiration"), "c6WT66xBw9y7KxUn"),
	}
	f.Required = []string{f.Key()}
	f.Parent = "inspiration"
	return f
}

// Covers reports whether any focused inspiration of actor picked skillID
func (f *FocusedInspiration) Covers(actor *entity.Actor, skillID string) bool {
	for _, source := range actorSources(actor, f.Key()) {
		if slices.Contains(f.skills(source), skillID) {
			return true
		}
	}
	return false
}

// skills caps the stored list at the limit
func (f *FocusedInspiration) skills(source *entity.Item) []string {
	skills := source.Flags.Strings(f.Key())
	if len(skills) > FocusedSkillLimit {
		skills = skills[:FocusedSkillLimit]
	}
	return skills
}

func (f *FocusedInspiration) Configure(ctx context.Context, env *sources.Env, item *entity.Item, params map[string]any) error {
	if skills := entity.Flags(params).Strings(f.Key()); len(skills) > FocusedSkillLimit {
		return errors.InvalidArgumentf("%s allows at most %d skills", f.Key(), FocusedSkillLimit).
			WithMeta("key", f.Key()).
			WithMeta("skills", skills)
	}
	return f.BaseSpecific.Configure(ctx, env, item, params)
}

func (f *FocusedInspiration) Hints(env *sources.Env, source *entity.Item) []string {
	skills := f.skills(source)
	if len(skills) == 0 {
		return []string{f.Tooltip(env.Loc)}
	}
	return append([]string{f.Tooltip(env.Loc)}, joinSkills(skills)...)
}

func (f *FocusedInspiration) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := f.Input(env, item, sheet.InputTrait, editable)
	input.Choices = skillChoices(item.Actor)
	input.Limit = FocusedSkillLimit
	return []sheet.Input{input}
}

func skillChoices(actor *entity.Actor) []sheet.Choice {
	if actor == nil {
		return nil
	}
	var out []sheet.Choice
	for _, id := range slices.Sorted(maps.Keys(actor.Skills)) {
		out = append(out, sheet.Choice{Key: id, Label: id})
	}
	return out
}

func joinSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	return []string{strings.Join(skills, ", ")}
}

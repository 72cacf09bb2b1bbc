package rolls

import (
	"fmt"
)

// ModifierTarget is the part of a roll a conditional modifier changes
type ModifierTarget string

const (
	TargetAttack ModifierTarget = "attack"
	TargetDamage ModifierTarget = "damage"
	TargetSize   ModifierTarget = "size"
	TargetCL     ModifierTarget = "cl"
	TargetDC     ModifierTarget = "dc"
)

// CriticalMode restricts damage modifiers to normal or critical hits
type CriticalMode string

const (
	CriticalNormal  CriticalMode = "normal"
	CriticalOnly    CriticalMode = "crit"
	CriticalNonCrit CriticalMode = "nonCrit"
)

// Modifier is one line of a conditional
type Modifier struct {
	ID          string
	Formula     string
	Target      ModifierTarget
	Type        string
	DamageTypes []string
	Critical    CriticalMode
}

// Conditional is a named group of modifiers the host applies to an action use
type Conditional struct {
	ID        string
	Name      string
	Default   bool
	Modifiers []Modifier
}

// DamagePart is a damage formula queued for the roll
type DamagePart struct {
	Formula     string
	DamageTypes []string
	Critical    CriticalMode
}

// ApplyConditional folds c into shared: attack and damage formulas are
// queued as labelled parts while size, cl and dc are evaluated into roll data.
func (s *Shared) ApplyConditional(c *Conditional, eval Evaluator) error {
	if c == nil {
		return nil
	}

	for _, m := range c.Modifiers {
		if m.Formula == "" {
			continue
		}
		label := fmt.Sprintf("%s[%s]", m.Formula, c.Name)

		switch m.Target {
		case TargetAttack:
			s.AttackBonus = append(s.AttackBonus, label)
		case TargetDamage:
			critical := m.Critical
			if critical == "" {
				critical = CriticalNormal
			}
			s.DamageBonus = append(s.DamageBonus, DamagePart{
				Formula:     label,
				DamageTypes: m.DamageTypes,
				Critical:    critical,
			})
		case TargetSize, TargetCL, TargetDC:
			value, err := eval.Evaluate(m.Formula, s.RollData)
			if err != nil {
				return fmt.Errorf("evaluating %s modifier of %q: %w", m.Target, c.Name, err)
			}
			s.RollData.Add(rollDataPath(m.Target), value)
		}
	}

	s.Conditionals = append(s.Conditionals, c)
	return nil
}

func rollDataPath(t ModifierTarget) string {
	switch t {
	case TargetCL:
		return "cl"
	case TargetDC:
		return "dcBonus"
	}
	return string(t)
}

package i18n

var english = map[string]string{
	// source kinds
	"bonus_attack.label":                            "Attack",
	"bonus_attack.tooltip":                          "Adds an attack bonus to the targeted attacks.",
	"bonus_crit.label":                              "Critical",
	"bonus_crit.tooltip":                            "Keen, critical multiplier and confirmation bonuses for the targeted attacks.",
	"bonus_damage.label":                            "Damage",
	"bonus_damage.tooltip":                          "Adds damage to the targeted attacks.",
	"bonus_effective-size.label":                    "Effective Size",
	"bonus_effective-size.tooltip":                  "Changes the size the targeted attacks roll damage as.",
	"bonus_fortune.label":                           "Fortune",
	"bonus_fortune.tooltip":                         "Roll twice and take the better result.",
	"bonus_misfortune.label":                        "Misfortune",
	"bonus_misfortune.tooltip":                      "Roll twice and take the worse result.",
	"bonus_initiative.label":                        "Initiative",
	"bonus_initiative.tooltip":                      "Adds a typed bonus to initiative.",
	"bonus_crit.keen":                               "Keen",
	"bonus_crit.mult":                               "Critical Multiplier %s",
	"bonus_crit.offset":                             "Threat Range %s",
	"bonus_crit.confirm":                            "Confirmation %s",
	"bonus_effective-size.hint":                     "Size %s",
	"bonus_damage.crit-only":                        "Critical Only",
	"bonus_damage.non-crit":                         "Non-Critical Only",
	"bonus_crit-keen.label":                         "Keen",
	"bonus_crit-keen.tooltip":                       "Doubles the threat range.",
	"bonus_crit-offset.label":                       "Threat Range",
	"bonus_crit-offset.tooltip":                     "Widens the threat range after keen is applied.",
	"bonus_crit-mult.label":                         "Critical Multiplier",
	"bonus_crit-mult.tooltip":                       "Added to the critical multiplier.",
	"bonus_crit-confirm.label":                      "Confirmation",
	"bonus_crit-confirm.tooltip":                    "Added to critical confirmation rolls.",
	"bonus_initiative-formula.label":                "Initiative Formula",
	"bonus_initiative-formula.tooltip":              "Formula added to initiative.",
	"target_item.label":                             "Item",
	"target_item.tooltip":                           "Bonuses apply to the chosen items.",
	"target_weapon-group.label":                     "Weapon Group",
	"target_weapon-group.tooltip":                   "Bonuses apply to weapons in the chosen groups.",
	"target_weapon-type.label":                      "Weapon Type",
	"target_weapon-type.tooltip":                    "Bonuses apply to weapons of the chosen base types.",
	"target_all.label":                              "All",
	"target_all.tooltip":                            "Bonuses apply to every attack.",
	"target_function.label":                         "Custom Function",
	"target_function.tooltip":                       "Bonuses apply when the expression is true.",
	"target_function-player-label.label":            "Player Label",
	"target_function-player-label.tooltip":          "Shown to players instead of the expression.",
	"target_creature-subtype.label":                 "Creature Subtype",
	"target_creature-subtype.tooltip":               "Bonuses apply when every target has one of the chosen subtypes.",
	"target_token.label":                            "Token",
	"target_token.tooltip":                          "Bonuses apply when attacking the chosen tokens.",
	"targets.label":                                 "Targets",
	"target-override_weapon-group-override.label":   "Weapon Group Override",
	"target-override_weapon-group-override.tooltip": "Adds weapon groups to this item.",
	"target-override_proficiency.label":             "Proficiency",
	"target-override_proficiency.tooltip":           "Makes this item proficient.",
	"target-override.invalid":                       "Not valid for this item type.",

	// specific bonuses
	"fates-favored.label":          "Fate's Favored",
	"fates-favored.tooltip":        "Luck bonuses are increased by 1.",
	"fates-favored.name":           "Fate's Favored",
	"snake-sidewind.label":         "Snake Sidewind",
	"snake-sidewind.tooltip":       "Use Sense Motive to confirm critical hits.",
	"snake-sidewind.name":          "Snake Sidewind",
	"snake-sidewind.note":          "Confirmed with Sense Motive (Snake Sidewind)",
	"armor-focus.label":            "Armor Focus",
	"armor-focus.tooltip":          "Increases the armor bonus of the chosen armor type by 1.",
	"armor-focus.name":             "Armor Focus",
	"improved-armor-focus.label":   "Improved Armor Focus",
	"improved-armor-focus.tooltip": "Reduces the armor check penalty of the chosen armor type by 1.",
	"improved-armor-focus.name":    "Improved Armor Focus",
	"inspiration.label":            "Inspiration",
	"inspiration.tooltip":          "Roll the inspiration die on the chosen skills.",
	"inspiration.name":             "Inspiration",
	"inspiration-die.label":        "Inspiration Die",
	"inspiration-die.tooltip":      "The base inspiration die.",
	"inspiration-true.label":       "True Inspiration",
	"inspiration-true.tooltip":     "Roll the inspiration die twice.",
	"inspiration-focused.label":    "Focused Inspiration",
	"inspiration-focused.tooltip":  "Inspiration on two chosen skills rolls a larger die.",
	"inspiration-focused.name":     "Focused Inspiration",
	"elemental-cl.label":           "Elemental Caster Level",
	"elemental-cl.tooltip":         "Modifies the caster level of spells of the chosen element.",
	"elemental-dc.label":           "Elemental DC",
	"elemental-dc.tooltip":         "Modifies the save DC of spells of the chosen element.",
	"cl-label-mod":                 "%[1]s Caster Level (%[2]s)",
	"dc-label-mod":                 "%[1]s DC (%[2]s)",
	"gang-up.label":                "Gang Up",
	"gang-up.tooltip":              "You flank a creature when two allies threaten it.",
	"gang-up.name":                 "Gang Up",
	"outflank.label":               "Outflank",
	"outflank.tooltip":             "Flanking bonus is +4 with an ally who also has Outflank.",
	"outflank.name":                "Outflank",

	// global bonuses
	"global-bonus_shoot-into-melee.label":   "Shooting Into Melee",
	"global-bonus_shoot-into-melee.tooltip": "Penalty for ranged attacks against targets in melee with allies.",
	"global-bonus_flanking.label":           "Flanking",
	"global-bonus_flanking.tooltip":         "Bonus for melee attacks against flanked targets.",
	"global-bonus_higher-ground.label":      "Higher Ground",
	"global-bonus_higher-ground.tooltip":    "Bonus for melee attacks from higher ground.",

	// words
	"improved": "Improved",

	// elements
	"element.acid":     "Acid",
	"element.cold":     "Cold",
	"element.electric": "Electricity",
	"element.fire":     "Fire",
}

package i18n_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
)

func TestCatalogText(t *testing.T) {
	c := i18n.MustNew("en")

	assert.Equal(t, "Weapon Group", c.Text(i18n.LabelKey("target_weapon-group")))
	assert.Equal(t, "+2 Caster Level (Fire)", c.Text("cl-label-mod", "+2", "Fire"))
	assert.Equal(t, "missing.key", c.Text("missing.key"))
	assert.False(t, c.Has("missing.key"))
}

func TestCatalogOverrides(t *testing.T) {
	c, err := i18n.New("de", map[string]string{"gang-up.name": "Verbünden"})
	require.NoError(t, err)

	assert.Equal(t, "Verbünden", c.Text("gang-up.name"))
	assert.Equal(t, "Outflank", c.Text("outflank.name"), "english fallback")
}

func TestCatalogOverridesKeepOtherLabels(t *testing.T) {
	c, err := i18n.New("de", map[string]string{"gang-up.name": "Verbünden"})
	require.NoError(t, err)

	assert.Equal(t, "Weapon Group", c.Text(i18n.LabelKey("target_weapon-group")))
	assert.Equal(t, "+2 Caster Level (Fire)", c.Text("cl-label-mod", "+2", "Fire"))
}

func TestCatalogForLocaleWithoutMessages(t *testing.T) {
	for _, locale := range []string{"de", "fr-CA", "ja"} {
		t.Run(locale, func(t *testing.T) {
			c := i18n.MustNew(locale)

			assert.Equal(t, "Fate's Favored", c.Text(i18n.NameKey("fates-favored")))
			assert.Equal(t, "Attack", c.Text(i18n.LabelKey("bonus_attack")))
			assert.True(t, c.Has(i18n.NameKey("fates-favored")))
		})
	}
}

func TestCatalogRejectsBadLocale(t *testing.T) {
	_, err := i18n.New("not a locale!", nil)
	assert.True(t, errors.IsValidation(err))
}

func TestCollationAndFolding(t *testing.T) {
	c := i18n.MustNew("en")

	labels := []string{"weapon Type", "Attack", "damage", "Élan"}
	slices.SortFunc(labels, c.Compare)
	assert.Equal(t, []string{"Attack", "damage", "Élan", "weapon Type"}, labels)

	assert.Equal(t, c.Fold("Fate's Favored"), c.Fold("FATE'S FAVORED"))
}

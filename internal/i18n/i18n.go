// Package i18n resolves labels, tooltips and reference names through an
// x/text message catalog and provides locale aware collation and case folding.
package i18n

import (
	"fmt"
	"maps"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// Localizer is what the engine needs from localisation
type Localizer interface {
	// Text formats the message stored under key, or returns key when unknown
	Text(key string, args ...any) string
	Has(key string) bool
	// Compare orders two labels for display
	Compare(a, b string) int
	// Fold returns s case folded for name matching
	Fold(s string) string
}

// LabelKey is the message key of a kind's label
func LabelKey(key string) string { return key + ".label" }

// TooltipKey is the message key of a kind's tooltip
func TooltipKey(key string) string { return key + ".tooltip" }

// NameKey is the message key of the reference item name a kind detects
func NameKey(key string) string { return key + ".name" }

// Catalog is a Localizer for one locale. English messages are always present
// and used as the fallback.
type Catalog struct {
	tag      language.Tag
	printer  *message.Printer
	messages map[string]string

	// collators and casers keep internal buffers
	mu       sync.Mutex
	collator *collate.Collator
	caser    cases.Caser
}

// New builds a catalog for locale. overrides replace or add messages for
// that locale.
func New(locale string, overrides map[string]string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, fmt.Sprintf("invalid locale %q", locale))
	}

	messages := maps.Clone(english)
	maps.Copy(messages, overrides)

	// the printer only reads messages stored under its own tag, so the
	// English defaults are registered for tag as well
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		if err := builder.SetString(language.English, key, msg); err != nil {
			return nil, errors.Wrapf(err, "adding message %q", key)
		}
	}
	if tag != language.English {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, errors.Wrapf(err, "adding message %q", key)
			}
		}
	} else {
		for key, msg := range overrides {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, errors.Wrapf(err, "adding message %q", key)
			}
		}
	}

	return &Catalog{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(builder)),
		messages: messages,
		collator: collate.New(tag, collate.IgnoreCase),
		caser:    cases.Fold(),
	}, nil
}

// MustNew is New for the built in locale
func MustNew(locale string) *Catalog {
	c, err := New(locale, nil)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Tag() language.Tag {
	return c.tag
}

func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[key]
	return ok
}

func (c *Catalog) Text(key string, args ...any) string {
	if !c.Has(key) {
		return key
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.printer.Sprintf(key, args...)
}

func (c *Catalog) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}

func (c *Catalog) Fold(s string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.caser.String(s)
}

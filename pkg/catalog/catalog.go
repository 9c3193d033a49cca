package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/store"
)

// Definition is one custom item as persisted in items.yaml.
type Definition struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Lore     []string `yaml:"lore,omitempty"`
	Category string   `yaml:"category,omitempty"`
}

// Item is a resolved, renderable item.
type Item struct {
	Identifier string
	Name       string
	Lore       []string
	Custom     bool
}

type itemsFile struct {
	Items []Definition `yaml:"items"`
}

// Raw catalog identifiers are plain lowercase tokens; anything else fails
// resolution the way an unknown material would.
var rawIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Catalog resolves item identifiers — raw ids or namespaced custom
// references — into renderable items.
type Catalog struct {
	path string
	log  zerolog.Logger
	defs map[string]Definition
}

// Load reads the custom item definitions beneath baseDir, seeding a default
// set on first run. A malformed definition is skipped with a diagnostic.
func Load(baseDir string, log zerolog.Logger) (*Catalog, error) {
	c := &Catalog{
		path: filepath.Join(baseDir, store.ItemsFile),
		log:  log.With().Str("component", "catalog").Logger(),
		defs: make(map[string]Definition),
	}

	content, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		if err := c.seedDefaults(); err != nil {
			return nil, err
		}
		content, err = os.ReadFile(c.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read items file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var file itemsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse items file: %w", err)
	}

	for _, def := range file.Items {
		if def.ID == "" {
			c.log.Warn().Msg("skipping custom item definition with no id")
			continue
		}
		if def.Name == "" {
			def.Name = def.ID
		}
		c.defs[def.ID] = def
	}

	c.log.Info().Int("count", len(c.defs)).Msg("loaded custom item definitions")
	return c, nil
}

// Resolve turns an identifier into a renderable item. Custom references
// resolve against the loaded definitions; raw identifiers resolve when they
// are well-formed catalog tokens. IdentityOf(Resolve(x)) == x for every
// identifier this returns an item for.
func (c *Catalog) Resolve(identifier string) (*Item, error) {
	ref := models.TradeItem{Item: identifier}
	if ref.IsCustom() {
		def, ok := c.defs[ref.CustomID()]
		if !ok {
			return nil, fmt.Errorf("custom item definition not found: %s", ref.CustomID())
		}
		return &Item{
			Identifier: identifier,
			Name:       def.Name,
			Lore:       def.Lore,
			Custom:     true,
		}, nil
	}

	if !rawIDPattern.MatchString(identifier) {
		return nil, fmt.Errorf("invalid item identifier: %s", identifier)
	}
	return &Item{Identifier: identifier, Name: identifier}, nil
}

// IdentityOf returns the identifier a resolved item round-trips to.
func (c *Catalog) IdentityOf(item *Item) string {
	if item == nil {
		return ""
	}
	return item.Identifier
}

// Has reports whether a custom item definition exists.
func (c *Catalog) Has(customID string) bool {
	_, ok := c.defs[customID]
	return ok
}

// Definitions returns all loaded custom item definitions.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, def)
	}
	return out
}

func (c *Catalog) seedDefaults() error {
	file := itemsFile{Items: []Definition{
		{ID: "sword_flame", Name: "<gradient:#FF4500:#FFD700>Flame Sword</gradient>", Lore: []string{"<gray>Burns with eternal fire."}, Category: "weapons"},
		{ID: "sword_ice", Name: "<gradient:#00BFFF:#E0FFFF>Ice Sword</gradient>", Lore: []string{"<gray>Chills to the bone."}, Category: "weapons"},
		{ID: "pickaxe_miner", Name: "<gradient:#FFD700:#DAA520>Miner's Pickaxe</gradient>", Lore: []string{"<gray>Digs faster than it should."}, Category: "tools"},
		{ID: "shovel_excavator", Name: "<gradient:#8B4513:#DAA520>Excavator Shovel</gradient>", Lore: []string{"<gray>Moves mountains of dirt."}, Category: "tools"},
		{ID: "shovel_rainbow", Name: "<gradient:#FF0000:#8B00FF>Rainbow Shovel</gradient>", Lore: []string{"<gray>Leaves color in its wake."}, Category: "tools"},
	}}

	content, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal default items: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create items directory: %w", err)
	}
	if err := os.WriteFile(c.path, content, 0644); err != nil {
		return fmt.Errorf("failed to write default items: %w", err)
	}
	c.log.Info().Msg("created default custom item definitions")
	return nil
}

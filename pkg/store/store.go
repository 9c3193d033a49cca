package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

const (
	TradesmithDir = ".tradesmith"
	TradesDir     = "trades"
	ItemsFile     = "items.yaml"
)

// InitProjectStructure creates the .tradesmith folder layout in the current
// directory.
func InitProjectStructure() error {
	dirs := []string{
		TradesmithDir,
		filepath.Join(TradesmithDir, TradesDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Store reads and writes trade collections as YAML files, one file per
// collection. It is the only component that touches the trades directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore creates a store over the trades directory beneath baseDir.
// Pass store.TradesmithDir for the standard project layout.
func NewStore(baseDir string, log zerolog.Logger) *Store {
	return &Store{
		dir: filepath.Join(baseDir, TradesDir),
		log: log.With().Str("component", "store").Logger(),
	}
}

// Serialized file layout. Field order here defines the on-disk key order, so
// re-serializing an unchanged collection is byte-identical.
type collectionFile struct {
	Name   string      `yaml:"gui-name"`
	Title  string      `yaml:"gui-title"`
	Trades []tradeFile `yaml:"trades"`
}

type tradeFile struct {
	ID     string    `yaml:"trade-id"`
	Input1 *itemFile `yaml:"input1"`
	Input2 *itemFile `yaml:"input2,omitempty"`
	Output *itemFile `yaml:"output"`
}

type itemFile struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// rawTrade tolerates malformed entries: the amount may be any scalar, and
// required fields may be missing. Validation happens in parseTrade.
type rawCollection struct {
	Name   string      `yaml:"gui-name"`
	Title  string      `yaml:"gui-title"`
	Trades []yaml.Node `yaml:"trades"`
}

type rawTrade struct {
	ID     string   `yaml:"trade-id"`
	Input1 *rawItem `yaml:"input1"`
	Input2 *rawItem `yaml:"input2"`
	Output *rawItem `yaml:"output"`
}

type rawItem struct {
	Item   string `yaml:"item"`
	Amount any    `yaml:"amount"`
}

// LoadAll reads every collection file from the trades directory. On first
// run, when the directory is missing or empty, it seeds the documented
// example collections. Individual malformed files or trade entries are
// skipped with a diagnostic, never failing the whole load.
func (s *Store) LoadAll() (map[string]*models.TradeCollection, error) {
	collections := make(map[string]*models.TradeCollection)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trades directory: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades directory: %w", err)
	}

	if !hasCollectionFiles(entries) {
		s.seedExamples()
		if entries, err = os.ReadDir(s.dir); err != nil {
			return nil, fmt.Errorf("failed to list trades directory: %w", err)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		collection, err := s.loadFile(entry.Name())
		if err != nil {
			s.log.Error().Err(err).Str("file", entry.Name()).Msg("skipping unreadable collection file")
			continue
		}
		collections[collection.Name] = collection
	}

	return collections, nil
}

func hasCollectionFiles(entries []os.DirEntry) bool {
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			return true
		}
	}
	return false
}

func (s *Store) loadFile(name string) (*models.TradeCollection, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	var raw rawCollection
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse collection YAML %s: %w", name, err)
	}

	if raw.Name == "" {
		raw.Name = strings.TrimSuffix(name, ".yaml")
	}
	if raw.Title == "" {
		raw.Title = raw.Name
	}

	collection := models.NewTradeCollection(raw.Name, raw.Title)
	for _, node := range raw.Trades {
		record, ok := s.parseTrade(&node, raw.Name)
		if ok {
			collection.AddTrade(record)
		}
	}
	return collection, nil
}

func (s *Store) parseTrade(node *yaml.Node, collectionName string) (models.TradeRecord, bool) {
	var raw rawTrade
	if err := node.Decode(&raw); err != nil {
		s.log.Warn().Err(err).Str("collection", collectionName).Msg("skipping malformed trade entry")
		return models.TradeRecord{}, false
	}

	if raw.ID == "" {
		s.log.Warn().Str("collection", collectionName).Msg("skipping trade entry with no trade-id")
		return models.TradeRecord{}, false
	}

	input1, ok := parseItem(raw.Input1)
	if !ok {
		s.log.Warn().Str("collection", collectionName).Str("trade", raw.ID).Msg("skipping trade with missing or invalid input1")
		return models.TradeRecord{}, false
	}

	output, ok := parseItem(raw.Output)
	if !ok {
		s.log.Warn().Str("collection", collectionName).Str("trade", raw.ID).Msg("skipping trade with missing or invalid output")
		return models.TradeRecord{}, false
	}

	record := models.TradeRecord{ID: raw.ID, Input1: input1, Output: output}
	if raw.Input2 != nil {
		if input2, ok := parseItem(raw.Input2); ok {
			record.Input2 = &input2
		} else {
			s.log.Warn().Str("collection", collectionName).Str("trade", raw.ID).Msg("dropping invalid input2")
		}
	}
	return record, true
}

func parseItem(raw *rawItem) (models.TradeItem, bool) {
	if raw == nil || raw.Item == "" {
		return models.TradeItem{}, false
	}
	return models.TradeItem{Item: raw.Item, Amount: parseAmount(raw.Amount)}, true
}

// parseAmount defaults to 1 for anything that is not a positive integer.
func parseAmount(v any) int {
	switch n := v.(type) {
	case int:
		if n > 0 {
			return n
		}
	case int64:
		if n > 0 {
			return int(n)
		}
	}
	return 1
}

// Save writes a collection to its YAML file. Key order is stable, so saving
// an unchanged collection produces byte-identical output.
func (s *Store) Save(collection *models.TradeCollection) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create trades directory: %w", err)
	}

	out := collectionFile{
		Name:   collection.Name,
		Title:  collection.Title,
		Trades: make([]tradeFile, 0, len(collection.Trades)),
	}
	for _, r := range collection.Trades {
		trade := tradeFile{
			ID:     r.ID,
			Input1: &itemFile{Item: r.Input1.Item, Amount: r.Input1.Amount},
			Output: &itemFile{Item: r.Output.Item, Amount: r.Output.Amount},
		}
		if r.Input2 != nil {
			trade.Input2 = &itemFile{Item: r.Input2.Item, Amount: r.Input2.Amount}
		}
		out.Trades = append(out.Trades, trade)
	}

	content, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection.Name, err)
	}

	path := filepath.Join(s.dir, collection.Name+".yaml")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection.Name, err)
	}

	s.log.Debug().Str("collection", collection.Name).Msg("saved collection")
	return nil
}

// Delete removes a collection's file. Deleting an absent file is not an
// error.
func (s *Store) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name+".yaml"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	return nil
}

func (s *Store) seedExamples() {
	ti := func(item string, amount int) models.TradeItem {
		return models.TradeItem{Item: item, Amount: amount}
	}
	opt := func(item string, amount int) *models.TradeItem {
		t := ti(item, amount)
		return &t
	}

	magicShop := models.NewTradeCollection("magic_shop", "<gradient:#9146FF:#00D4FF>Magic Items Exchange</gradient>")
	magicShop.AddTrade(models.TradeRecord{ID: "flame_sword", Input1: ti("diamond_sword", 1), Input2: opt("emerald", 10), Output: ti("custom:sword_flame", 1)})
	magicShop.AddTrade(models.TradeRecord{ID: "ice_sword", Input1: ti("diamond_sword", 1), Input2: opt("blue_ice", 5), Output: ti("custom:sword_ice", 1)})
	magicShop.AddTrade(models.TradeRecord{ID: "miner_pickaxe", Input1: ti("diamond_pickaxe", 1), Input2: opt("emerald", 15), Output: ti("custom:pickaxe_miner", 1)})

	toolsShop := models.NewTradeCollection("tools_shop", "<gradient:#8B4513:#DAA520>Tools Exchange</gradient>")
	toolsShop.AddTrade(models.TradeRecord{ID: "excavator_shovel", Input1: ti("diamond_shovel", 1), Input2: opt("gold_ingot", 8), Output: ti("custom:shovel_excavator", 1)})
	toolsShop.AddTrade(models.TradeRecord{ID: "rainbow_shovel", Input1: ti("netherite_shovel", 1), Input2: opt("diamond", 5), Output: ti("custom:shovel_rainbow", 1)})

	for _, collection := range []*models.TradeCollection{magicShop, toolsShop} {
		if err := s.Save(collection); err != nil {
			s.log.Error().Err(err).Str("collection", collection.Name).Msg("failed to seed example collection")
		}
	}
	s.log.Info().Msg("created example trade collections: magic_shop and tools_shop")
}

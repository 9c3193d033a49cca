package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), zerolog.Nop())
}

func sampleCollection() *models.TradeCollection {
	in2 := models.TradeItem{Item: "emerald", Amount: 10}
	c := models.NewTradeCollection("shop", "The Shop")
	c.AddTrade(models.TradeRecord{
		ID:     "flame_sword",
		Input1: models.TradeItem{Item: "diamond_sword", Amount: 1},
		Input2: &in2,
		Output: models.TradeItem{Item: "custom:sword_flame", Amount: 1},
	})
	c.AddTrade(models.TradeRecord{
		ID:     "plain",
		Input1: models.TradeItem{Item: "stick", Amount: 4},
		Output: models.TradeItem{Item: "torch", Amount: 8},
	})
	return c
}

func TestInitProjectStructure(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(TradesmithDir, TradesDir)); os.IsNotExist(err) {
		t.Error("expected trades directory to exist")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	original := sampleCollection()

	if err := s.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	collections, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	loaded, ok := collections["shop"]
	if !ok {
		t.Fatalf("expected collection 'shop' after round trip, got %d collections", len(collections))
	}
	if loaded.Name != original.Name || loaded.Title != original.Title {
		t.Errorf("expected name/title %q/%q, got %q/%q", original.Name, original.Title, loaded.Name, loaded.Title)
	}
	if loaded.TradeCount() != original.TradeCount() {
		t.Fatalf("expected %d trades, got %d", original.TradeCount(), loaded.TradeCount())
	}
	for i := range original.Trades {
		if !loaded.Trades[i].Equal(original.Trades[i]) {
			t.Errorf("trade %d differs after round trip: %+v vs %+v", i, loaded.Trades[i], original.Trades[i])
		}
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	s := newTestStore(t)
	collection := sampleCollection()

	if err := s.Save(collection); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(s.dir, "shop.yaml"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if err := s.Save(collection); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(s.dir, "shop.yaml"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-serializing an unchanged collection is not byte-identical")
	}
}

func TestLoadSkipsEntryWithoutTradeID(t *testing.T) {
	s := newTestStore(t)
	content := `gui-name: shop
gui-title: The Shop
trades:
  - trade-id: good
    input1: {item: emerald, amount: 3}
    output: {item: diamond, amount: 1}
  - input1: {item: stick, amount: 1}
    output: {item: torch, amount: 1}
`
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "shop.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	collections, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	shop := collections["shop"]
	if shop == nil {
		t.Fatal("expected collection 'shop' to load")
	}
	if shop.TradeCount() != 1 {
		t.Fatalf("expected exactly one trade, got %d", shop.TradeCount())
	}
	if shop.Trades[0].ID != "good" {
		t.Errorf("expected surviving trade 'good', got %q", shop.Trades[0].ID)
	}
}

func TestLoadSkipsTradeWithMissingInputOrOutput(t *testing.T) {
	s := newTestStore(t)
	content := `gui-name: shop
gui-title: The Shop
trades:
  - trade-id: no_input
    output: {item: diamond, amount: 1}
  - trade-id: no_output
    input1: {item: emerald, amount: 3}
  - trade-id: ok
    input1: {item: emerald, amount: 3}
    output: {item: diamond, amount: 1}
`
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "shop.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	collections, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	shop := collections["shop"]
	if shop == nil || shop.TradeCount() != 1 || shop.Trades[0].ID != "ok" {
		t.Fatalf("expected only trade 'ok' to survive, got %+v", shop)
	}
}

func TestLoadDefaultsInvalidAmountToOne(t *testing.T) {
	s := newTestStore(t)
	content := `gui-name: shop
gui-title: The Shop
trades:
  - trade-id: odd_amounts
    input1: {item: emerald, amount: -4}
    output: {item: diamond, amount: lots}
`
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "shop.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	collections, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	trade := collections["shop"].Trades[0]
	if trade.Input1.Amount != 1 || trade.Output.Amount != 1 {
		t.Errorf("expected amounts to default to 1, got %d and %d", trade.Input1.Amount, trade.Output.Amount)
	}
}

func TestLoadAllSeedsExamplesOnFirstRun(t *testing.T) {
	s := newTestStore(t)

	collections, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(collections) == 0 {
		t.Fatal("expected first run to seed at least one example collection")
	}
	magic := collections["magic_shop"]
	if magic == nil || magic.TradeCount() == 0 {
		t.Error("expected seeded magic_shop with trades")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	collection := sampleCollection()
	if err := s.Save(collection); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.Delete("shop"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("shop"); err != nil {
		t.Errorf("deleting an absent collection should not fail: %v", err)
	}
}

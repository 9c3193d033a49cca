package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/store"
)

func writeItems(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, store.ItemsFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSeedsDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !c.Has("sword_flame") {
		t.Error("expected default definitions seeded")
	}
	if _, err := os.Stat(filepath.Join(dir, store.ItemsFile)); err != nil {
		t.Errorf("expected items file written: %v", err)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeItems(t, dir, `items:
  - id: sword_flame
    name: Flame Sword
    lore:
      - Burns.
`)
	c, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, identifier := range []string{"custom:sword_flame", "diamond_sword"} {
		item, err := c.Resolve(identifier)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", identifier, err)
		}
		if got := c.IdentityOf(item); got != identifier {
			t.Errorf("round trip broken: Resolve(%q) -> IdentityOf == %q", identifier, got)
		}
	}

	item, _ := c.Resolve("custom:sword_flame")
	if !item.Custom || item.Name != "Flame Sword" {
		t.Errorf("custom resolution incomplete: %+v", item)
	}
}

func TestResolveFailures(t *testing.T) {
	dir := t.TempDir()
	writeItems(t, dir, "items: []\n")
	c, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := c.Resolve("custom:missing"); err == nil {
		t.Error("expected unknown custom reference to fail")
	}
	if _, err := c.Resolve("Not A Token"); err == nil {
		t.Error("expected malformed raw identifier to fail")
	}
}

func TestLoadSkipsDefinitionWithoutID(t *testing.T) {
	dir := t.TempDir()
	writeItems(t, dir, `items:
  - name: Orphan
  - id: valid_item
`)
	c, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c.Definitions()) != 1 || !c.Has("valid_item") {
		t.Errorf("expected only valid_item to load, got %+v", c.Definitions())
	}
}

func TestStackSource(t *testing.T) {
	dir := t.TempDir()
	writeItems(t, dir, `items:
  - id: sword_flame
    name: Flame Sword
`)
	c, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	source := &StackSource{Catalog: c, Log: zerolog.Nop()}

	stack := source.StackFor(models.TradeItem{Item: "custom:sword_flame", Amount: 2})
	if stack == nil || stack.Name != "Flame Sword" || stack.Amount != 2 {
		t.Errorf("unexpected stack: %+v", stack)
	}

	if source.StackFor(models.TradeItem{Item: "custom:missing", Amount: 1}) != nil {
		t.Error("expected nil stack for unresolvable item")
	}
}

package registry

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

// Registry is the in-memory source of truth for all trade collections and
// the only writer of persisted state. Every mutation that changes persisted
// content synchronously saves the affected collection; edits are human-paced,
// so there is no write batching. When a save fails the in-memory change is
// kept and the failure logged — the next successful save or an explicit
// reload resolves the window.
type Registry struct {
	store Store
	log   zerolog.Logger

	mu          sync.RWMutex
	collections map[string]*models.TradeCollection
}

// Store is the persistence contract the registry drives.
type Store interface {
	LoadAll() (map[string]*models.TradeCollection, error)
	Save(collection *models.TradeCollection) error
	Delete(name string) error
}

func NewRegistry(store Store, log zerolog.Logger) *Registry {
	return &Registry{
		store:       store,
		log:         log.With().Str("component", "registry").Logger(),
		collections: make(map[string]*models.TradeCollection),
	}
}

// Load clears the in-memory map and repopulates it from the store. Used at
// startup and for explicit reloads.
func (r *Registry) Load() error {
	loaded, err := r.store.LoadAll()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.collections = loaded
	r.mu.Unlock()

	r.log.Info().Int("count", len(loaded)).Msg("loaded trade collections")
	return nil
}

// Get returns the named collection, or nil if it does not exist.
func (r *Registry) Get(name string) *models.TradeCollection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collections[name]
}

// Has reports whether the named collection exists.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// ListNames returns the sorted names of all collections.
func (r *Registry) ListNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Count returns the number of loaded collections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.collections)
}

// Create adds a new empty collection and persists it. Creating a name that
// already exists is a logged no-op.
func (r *Registry) Create(name, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collections[name]; exists {
		r.log.Warn().Str("collection", name).Msg("attempted to create a collection that already exists")
		return
	}
	collection := models.NewTradeCollection(name, title)
	r.collections[name] = collection

	r.save(collection)
	r.log.Debug().Str("collection", name).Msg("created collection")
}

// Delete removes a collection from memory and from the persisted store.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	_, exists := r.collections[name]
	delete(r.collections, name)
	r.mu.Unlock()

	if !exists {
		r.log.Warn().Str("collection", name).Msg("delete of unknown collection ignored")
		return
	}
	if err := r.store.Delete(name); err != nil {
		r.log.Error().Err(err).Str("collection", name).Msg("failed to delete persisted collection")
	}
	r.log.Debug().Str("collection", name).Msg("deleted collection")
}

// Rename rekeys a collection. From the caller's perspective this is atomic:
// the old persisted file is removed, the in-memory key and the collection's
// own name change, and the new file is written.
func (r *Registry) Rename(oldName, newName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection, exists := r.collections[oldName]
	if !exists {
		r.log.Warn().Str("collection", oldName).Msg("rename of unknown collection ignored")
		return
	}
	delete(r.collections, oldName)
	collection.Name = newName
	r.collections[newName] = collection

	if err := r.store.Delete(oldName); err != nil {
		r.log.Error().Err(err).Str("collection", oldName).Msg("failed to delete old persisted collection")
	}
	r.save(collection)
	r.log.Debug().Str("from", oldName).Str("to", newName).Msg("renamed collection")
}

// SetTitle updates a collection's display title and persists it.
func (r *Registry) SetTitle(name, title string) {
	r.mutate(name, "set title", func(c *models.TradeCollection) {
		c.Title = title
	})
}

// AddTrade appends a record to a collection and persists it.
func (r *Registry) AddTrade(name string, record models.TradeRecord) {
	r.mutate(name, "add trade", func(c *models.TradeCollection) {
		c.AddTrade(record)
	})
}

// RemoveTrade removes a record by id and persists the collection.
func (r *Registry) RemoveTrade(name, tradeID string) {
	r.mutate(name, "remove trade", func(c *models.TradeCollection) {
		c.RemoveTrade(tradeID)
	})
}

// MoveTrade relocates a record and persists the collection. Out-of-range
// indices leave the order unchanged but still trigger a save.
func (r *Registry) MoveTrade(name string, from, to int) {
	r.mutate(name, "move trade", func(c *models.TradeCollection) {
		c.MoveTrade(from, to)
	})
}

func (r *Registry) mutate(name, op string, fn func(*models.TradeCollection)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection, exists := r.collections[name]
	if !exists {
		r.log.Warn().Str("collection", name).Str("op", op).Msg("mutation of unknown collection ignored")
		return
	}
	fn(collection)
	r.save(collection)
}

// save must be called with r.mu held: the store serializes the collection's
// trade list, and a concurrent mutation during that walk would persist a
// torn snapshot.
func (r *Registry) save(collection *models.TradeCollection) {
	if err := r.store.Save(collection); err != nil {
		r.log.Error().Err(err).Str("collection", collection.Name).Msg("failed to persist collection; in-memory state kept")
	}
}

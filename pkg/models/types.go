package models

import "regexp"

// CustomItemPrefix namespaces references to catalog-defined custom items,
// e.g. "custom:sword_flame". Anything else is a raw catalog identifier.
const CustomItemPrefix = "custom:"

var tradeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,32}$`)

// ValidTradeID reports whether id is acceptable as a user-supplied trade id:
// letters, digits, and underscores, 1-32 characters.
func ValidTradeID(id string) bool {
	return tradeIDPattern.MatchString(id)
}

// TradeItem is one side of a trade: an item identifier and a positive amount.
// It is a value type; compare with ==.
type TradeItem struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// IsCustom reports whether the item references a catalog-defined custom item.
func (t TradeItem) IsCustom() bool {
	return len(t.Item) > len(CustomItemPrefix) && t.Item[:len(CustomItemPrefix)] == CustomItemPrefix
}

// CustomID returns the custom item id without its namespace prefix, or ""
// when the item is not a custom reference.
func (t TradeItem) CustomID() string {
	if !t.IsCustom() {
		return ""
	}
	return t.Item[len(CustomItemPrefix):]
}

// TradeRecord is one immutable trade recipe: a required input, an optional
// second input, and an output. Editing a trade means replacing the record,
// never mutating it.
type TradeRecord struct {
	ID     string
	Input1 TradeItem
	Input2 *TradeItem
	Output TradeItem
}

// HasSecondInput reports whether the trade requires a second input item.
func (r TradeRecord) HasSecondInput() bool {
	return r.Input2 != nil
}

// Equal compares two records by value, including the optional second input.
func (r TradeRecord) Equal(o TradeRecord) bool {
	if r.ID != o.ID || r.Input1 != o.Input1 || r.Output != o.Output {
		return false
	}
	if (r.Input2 == nil) != (o.Input2 == nil) {
		return false
	}
	return r.Input2 == nil || *r.Input2 == *o.Input2
}

// TradeCollection is a named, ordered set of trade records plus a display
// title. The trade order is significant: it defines iteration, reorder, and
// recipe-slot order. Collections are owned exclusively by the registry.
type TradeCollection struct {
	Name   string
	Title  string
	Trades []TradeRecord
}

func NewTradeCollection(name, title string) *TradeCollection {
	return &TradeCollection{Name: name, Title: title}
}

// Trade returns the record with the given id, or nil if absent.
func (c *TradeCollection) Trade(id string) *TradeRecord {
	for i := range c.Trades {
		if c.Trades[i].ID == id {
			return &c.Trades[i]
		}
	}
	return nil
}

// HasTrade reports whether a record with the given id exists.
func (c *TradeCollection) HasTrade(id string) bool {
	return c.Trade(id) != nil
}

// AddTrade appends a record to the end of the collection.
func (c *TradeCollection) AddTrade(r TradeRecord) {
	c.Trades = append(c.Trades, r)
}

// RemoveTrade removes every record with the given id.
func (c *TradeCollection) RemoveTrade(id string) {
	kept := c.Trades[:0]
	for _, r := range c.Trades {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.Trades = kept
}

// MoveTrade relocates the record at from to position to, shifting the
// records between them. Out-of-range indices are a no-op.
func (c *TradeCollection) MoveTrade(from, to int) {
	if from < 0 || from >= len(c.Trades) || to < 0 || to >= len(c.Trades) {
		return
	}
	r := c.Trades[from]
	c.Trades = append(c.Trades[:from], c.Trades[from+1:]...)
	rest := append([]TradeRecord{r}, c.Trades[to:]...)
	c.Trades = append(c.Trades[:to], rest...)
}

// ClearTrades removes all records.
func (c *TradeCollection) ClearTrades() {
	c.Trades = nil
}

// TradeCount returns the number of records.
func (c *TradeCollection) TradeCount() int {
	return len(c.Trades)
}

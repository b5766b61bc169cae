// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	"github.com/MKhiriev/macro-marketplace/models"
)

// CatalogCache is the in-memory, observable list of macro records shown to
// the user. Record ids are unique within the cache. Every mutating call emits
// the resulting list exactly once, including calls that change nothing.
type CatalogCache struct {
	obs *Observable[[]models.MacroRecord]

	onEmit func(int)
}

// NewCatalogCache returns an empty cache.
func NewCatalogCache() *CatalogCache {
	return &CatalogCache{
		obs: NewObservable[[]models.MacroRecord](nil, cloneRecords),
	}
}

// OnEmit installs a hook invoked with the record count on every mutation.
// It must be set before the cache is shared.
func (c *CatalogCache) OnEmit(fn func(count int)) {
	c.onEmit = fn
}

// Snapshot returns a copy of the current list.
func (c *CatalogCache) Snapshot() []models.MacroRecord {
	return c.obs.Value()
}

// Len returns the number of records currently cached.
func (c *CatalogCache) Len() int {
	return len(c.obs.Value())
}

// Get returns the cached record with the given id.
func (c *CatalogCache) Get(id string) (models.MacroRecord, bool) {
	for _, r := range c.obs.Value() {
		if r.ID == id {
			return r, true
		}
	}
	return models.MacroRecord{}, false
}

// Subscribe attaches fn. fn is called immediately with the current list and
// then with every subsequent list.
func (c *CatalogCache) Subscribe(fn func([]models.MacroRecord)) (unsubscribe func()) {
	return c.obs.Subscribe(fn)
}

// Subscribers reports the number of attached subscribers.
func (c *CatalogCache) Subscribers() int {
	return c.obs.Subscribers()
}

// ReplaceAll swaps the whole list. Later duplicates of an id are dropped.
func (c *CatalogCache) ReplaceAll(records []models.MacroRecord) {
	c.update(func([]models.MacroRecord) []models.MacroRecord {
		seen := make(map[string]struct{}, len(records))
		out := make([]models.MacroRecord, 0, len(records))
		for _, r := range records {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
		return out
	})
}

// Prepend puts record at the front. An existing record with the same id is
// removed first. A confirmed record takes the slot of the earliest inserted
// placeholder, if the cache holds any.
func (c *CatalogCache) Prepend(record models.MacroRecord) {
	c.update(func(cur []models.MacroRecord) []models.MacroRecord {
		out := make([]models.MacroRecord, 0, len(cur)+1)
		out = append(out, record)

		drop := -1
		if !record.IsPlaceholder() {
			for i := len(cur) - 1; i >= 0; i-- {
				if cur[i].IsPlaceholder() {
					drop = i
					break
				}
			}
		}

		for i, r := range cur {
			if i == drop || r.ID == record.ID {
				continue
			}
			out = append(out, r)
		}
		return out
	})
}

// Replace swaps the record with the given id in place. It is a no-op when no
// record matches. If record carries a different id that is already cached,
// that other entry is dropped.
func (c *CatalogCache) Replace(id string, record models.MacroRecord) {
	c.update(func(cur []models.MacroRecord) []models.MacroRecord {
		idx := slices.IndexFunc(cur, func(r models.MacroRecord) bool { return r.ID == id })
		if idx < 0 {
			return cur
		}

		out := make([]models.MacroRecord, 0, len(cur))
		for i, r := range cur {
			switch {
			case i == idx:
				out = append(out, record)
			case r.ID == record.ID:
			default:
				out = append(out, r)
			}
		}
		return out
	})
}

// Remove deletes the record with the given id. Removing an absent id leaves
// the list unchanged.
func (c *CatalogCache) Remove(id string) {
	c.update(func(cur []models.MacroRecord) []models.MacroRecord {
		return slices.DeleteFunc(slices.Clone(cur), func(r models.MacroRecord) bool { return r.ID == id })
	})
}

func (c *CatalogCache) update(mutate func([]models.MacroRecord) []models.MacroRecord) {
	var count int
	c.obs.Update(func(cur []models.MacroRecord) []models.MacroRecord {
		next := mutate(cur)
		count = len(next)
		return next
	})
	if c.onEmit != nil {
		c.onEmit(count)
	}
}

func cloneRecords(in []models.MacroRecord) []models.MacroRecord {
	if in == nil {
		return []models.MacroRecord{}
	}
	return slices.Clone(in)
}

package silo

import "sync/atomic"

// queryCacheEntry pairs a query Tag with the archetypes currently known to
// satisfy it, so that getOrCreate can re-test ContainsAll against a newly
// created archetype without needing to decode the entry's map key back
// into a Tag.
type queryCacheEntry struct {
	query Tag
	archs []*Archetype
}

// partition is the Archetype Partition plus Query Cache of spec.md §4.6: a
// map from Tag to Archetype, and an incrementally-maintained map from query
// Tag to the list of archetypes that satisfy it.
//
// byTag and order are written only while the World's structural mutex is
// held. cache is published through an atomic snapshot swap so that
// matching() can serve cache hits without taking any lock at all — the
// "lock-free reads of existing entries" contract in spec.md §4.6/§5. The
// structural mutex already serializes every writer, so the snapshot swap
// needs no mutex of its own. Warehouse's own cache.go (SimpleCache[T]) is
// a bare, unsynchronized map and isn't the model here; the published
// atomic-snapshot-swap idiom instead follows balios's wtinyLFUCache,
// whose entries publish through sync/atomic fields for lock-free reads.
type partition struct {
	byTag map[tagKey]*Archetype
	order []*Archetype // creation order, scanned on a cache miss

	cache atomic.Pointer[map[tagKey]queryCacheEntry]
}

func newPartition() *partition {
	p := &partition{byTag: make(map[tagKey]*Archetype)}
	empty := make(map[tagKey]queryCacheEntry)
	p.cache.Store(&empty)
	return p
}

// getOrCreate returns the archetype for mask, creating it (with the given
// initial capacity) if absent. Must be called with the structural mutex
// held. Every existing query cache entry whose query is satisfied by mask
// is extended to include the new archetype — the "maintained incrementally
// when new archetypes appear" half of the Query Cache contract.
func (p *partition) getOrCreate(mask Tag, capacity int) *Archetype {
	key := mask.key()
	if a, ok := p.byTag[key]; ok {
		return a
	}
	a := newArchetype(mask, capacity)
	p.byTag[key] = a
	p.order = append(p.order, a)

	old := *p.cache.Load()
	if len(old) > 0 {
		updated := make(map[tagKey]queryCacheEntry, len(old))
		for qk, entry := range old {
			if mask.ContainsAll(entry.query) {
				// Publish-after-fill: build the new slice before it is
				// ever visible, so a concurrent reader either sees the
				// old, complete slice or the new, complete one.
				grown := make([]*Archetype, len(entry.archs), len(entry.archs)+1)
				copy(grown, entry.archs)
				grown = append(grown, a)
				updated[qk] = queryCacheEntry{query: entry.query, archs: grown}
			} else {
				updated[qk] = entry
			}
		}
		p.cache.Store(&updated)
	}
	return a
}

// Locker is the subset of sync.Locker the partition needs; satisfied by
// *sync.Mutex.
type Locker interface {
	Lock()
	Unlock()
}

// matching implements matching_archetypes(query_tag): a lock-free read of
// the cache snapshot on the fast path, and a locked rebuild-and-publish on
// a miss. lock must be the owning World's structural mutex.
func (p *partition) matching(query Tag, lock Locker) []*Archetype {
	key := query.key()
	if snap := *p.cache.Load(); snap != nil {
		if entry, ok := snap[key]; ok {
			return entry.archs
		}
	}
	lock.Lock()
	defer lock.Unlock()
	if snap := *p.cache.Load(); snap != nil {
		if entry, ok := snap[key]; ok {
			return entry.archs
		}
	}
	var archs []*Archetype
	for _, a := range p.order {
		if a.mask.ContainsAll(query) {
			archs = append(archs, a)
		}
	}
	old := *p.cache.Load()
	updated := make(map[tagKey]queryCacheEntry, len(old)+1)
	for k, v := range old {
		updated[k] = v
	}
	updated[key] = queryCacheEntry{query: query, archs: archs}
	p.cache.Store(&updated)
	return archs
}

// Archetypes returns every archetype in creation order, for maintenance
// operations (compaction, fragmentation stats) that must visit all of
// them.
func (p *partition) Archetypes() []*Archetype { return p.order }

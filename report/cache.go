// Package report implements the retrieval and serialization pipeline: a
// dependency-aware bulk loader over the analysis store with a shared record
// cache, followed by in-order status computation and document output.
package report

import (
	"context"
	"sync"

	"github.com/dnsvet/dnsvet/evt"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/store"

	"github.com/sirupsen/logrus"
)

// RecordCache guarantees at most one store fetch per name and run. Load
// failures are cached as well, a name is never re-queried after its first
// outcome. Records are never evicted or replaced within a run.
type RecordCache struct {
	store  store.AnalysisStore
	logger *logrus.Entry

	lock    sync.Mutex
	entries map[model.DomainName]*cacheEntry
}

type cacheEntry struct {
	record *model.AnalysisRecord
	err    error
}

func NewRecordCache(analysisStore store.AnalysisStore) *RecordCache {
	return &RecordCache{
		store:   analysisStore,
		logger:  log.PrefixedLog("record_cache"),
		entries: make(map[model.DomainName]*cacheEntry),
	}
}

// GetOrLoad returns the cached outcome for the name or fetches the most
// recent record from the store. Stub records are returned as regular
// records, callers apply the stub policy of their context.
func (c *RecordCache) GetOrLoad(ctx context.Context, name model.DomainName) (*model.AnalysisRecord, error) {
	record, _, err := c.Ensure(ctx, name)

	return record, err
}

// Ensure is GetOrLoad with an additional flag reporting whether the outcome
// was already known, the dependency expander uses it as its visited check.
// The check-then-insert is atomic, the lock is held across the fetch so
// parallel callers of the same name observe a single store query.
func (c *RecordCache) Ensure(ctx context.Context, name model.DomainName) (*model.AnalysisRecord, bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if entry, ok := c.entries[name]; ok {
		evt.Bus().Publish(evt.RecordCacheHit, name.String())

		return entry.record, true, entry.err
	}

	record, err := c.store.FetchLatest(ctx, name)
	if err != nil {
		evt.Bus().Publish(evt.RecordLoadFailed, name.String())
	} else {
		evt.Bus().Publish(evt.RecordFetched, name.String())
	}

	c.entries[name] = &cacheEntry{record: record, err: err}

	return record, false, err
}

// Lookup returns an already loaded record, it never triggers a load.
// Implements `validate.RecordSet`.
func (c *RecordCache) Lookup(name model.DomainName) (*model.AnalysisRecord, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	entry, ok := c.entries[name]
	if !ok || entry.record == nil {
		return nil, false
	}

	return entry.record, true
}

// Len returns the number of cached outcomes, including failed loads
func (c *RecordCache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return len(c.entries)
}

// Package stats aggregates run counters from the event bus and reports them
// on the diagnostic stream when a run finishes.
package stats

import (
	"sync"
	"time"

	"github.com/dnsvet/dnsvet/evt"
	"github.com/dnsvet/dnsvet/util"

	"github.com/hako/durafmt"
	"github.com/sirupsen/logrus"
)

const (
	RecordsFetched = "recordsFetched"
	CacheHits      = "cacheHits"
	LoadFailures   = "loadFailures"
	NamesDiscarded = "namesDiscarded"
	NamesCompleted = "namesCompleted"
)

// Collector cumulates counters for one report run
type Collector struct {
	lock     sync.Mutex
	counters map[string]int
	started  time.Time
	handlers map[string]interface{}
}

// NewCollector returns a collector subscribed to the report events
func NewCollector() *Collector {
	c := &Collector{
		counters: make(map[string]int),
		started:  time.Now(),
	}

	c.handlers = map[string]interface{}{
		evt.RecordFetched:    func(_ string) { c.inc(RecordsFetched) },
		evt.RecordCacheHit:   func(_ string) { c.inc(CacheHits) },
		evt.RecordLoadFailed: func(_ string) { c.inc(LoadFailures) },
		evt.NameDiscarded:    func(_ string) { c.inc(NamesDiscarded) },
		evt.NameCompleted:    func(_ string, _ string) { c.inc(NamesCompleted) },
	}

	for topic, handler := range c.handlers {
		subscribe(topic, handler)
	}

	return c
}

// Unsubscribe detaches the collector from the event bus
func (c *Collector) Unsubscribe() {
	for topic, handler := range c.handlers {
		// only fails for unknown subscriptions
		_ = evt.Bus().Unsubscribe(topic, handler)
	}
}

func (c *Collector) inc(key string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.counters[key]++
}

// Count returns the current value of one counter
func (c *Collector) Count(key string) int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.counters[key]
}

// LogSummary writes all counters and the elapsed time to the logger
func (c *Collector) LogSummary(logger *logrus.Entry) {
	c.lock.Lock()
	defer c.lock.Unlock()

	elapsed := time.Since(c.started).Round(time.Millisecond)

	logger.Infof("records fetched: %d, cache hits: %d, load failures: %d",
		c.counters[RecordsFetched], c.counters[CacheHits], c.counters[LoadFailures])
	logger.Infof("names completed: %d, names discarded: %d",
		c.counters[NamesCompleted], c.counters[NamesDiscarded])
	logger.Infof("report finished after %s", durafmt.Parse(elapsed))
}

func subscribe(topic string, fn interface{}) {
	util.FatalOnError("can't subscribe to event bus: ", evt.Bus().Subscribe(topic, fn))
}

package metrics

import (
	"github.com/dnsvet/dnsvet/evt"
	"github.com/dnsvet/dnsvet/util"

	"github.com/prometheus/client_golang/prometheus"
)

// RegisterEventListeners registers all metric handlers by the event bus
func RegisterEventListeners() {
	registerRecordEventListeners()
	registerNameEventListeners()
}

func registerRecordEventListeners() {
	fetchCnt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnsvet_records_fetched_total",
		Help: "Number of analysis records fetched from the store",
	})

	cacheHitCnt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnsvet_record_cache_hits_total",
		Help: "Number of record lookups answered from the cache",
	})

	loadFailCnt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnsvet_record_load_failures_total",
		Help: "Number of records that could not be loaded",
	})

	RegisterMetric(fetchCnt)
	RegisterMetric(cacheHitCnt)
	RegisterMetric(loadFailCnt)

	subscribe(evt.RecordFetched, func(_ string) {
		fetchCnt.Inc()
	})

	subscribe(evt.RecordCacheHit, func(_ string) {
		cacheHitCnt.Inc()
	})

	subscribe(evt.RecordLoadFailed, func(_ string) {
		loadFailCnt.Inc()
	})
}

func registerNameEventListeners() {
	completedCnt := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dnsvet_names_completed_total",
		Help: "Number of requested names that received a status",
	}, []string{"status"})

	discardedCnt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnsvet_names_discarded_total",
		Help: "Number of input names dropped before processing",
	})

	RegisterMetric(completedCnt)
	RegisterMetric(discardedCnt)

	subscribe(evt.NameCompleted, func(_ string, status string) {
		completedCnt.WithLabelValues(status).Inc()
	})

	subscribe(evt.NameDiscarded, func(_ string) {
		discardedCnt.Inc()
	})
}

func subscribe(topic string, fn interface{}) {
	util.FatalOnError("can't subscribe to event bus: ", evt.Bus().Subscribe(topic, fn))
}

package stats

import (
	"github.com/dnsvet/dnsvet/evt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Collector", func() {
	var collector *Collector

	BeforeEach(func() {
		collector = NewCollector()
		DeferCleanup(collector.Unsubscribe)
	})

	When("record events are published", func() {
		It("should count them", func() {
			evt.Bus().Publish(evt.RecordFetched, "example.com")
			evt.Bus().Publish(evt.RecordFetched, "example.org")
			evt.Bus().Publish(evt.RecordCacheHit, "example.com")
			evt.Bus().Publish(evt.RecordLoadFailed, "unknown.com")

			Expect(collector.Count(RecordsFetched)).Should(Equal(2))
			Expect(collector.Count(CacheHits)).Should(Equal(1))
			Expect(collector.Count(LoadFailures)).Should(Equal(1))
		})
	})

	When("name events are published", func() {
		It("should count them", func() {
			evt.Bus().Publish(evt.NameCompleted, "example.com", "secure")
			evt.Bus().Publish(evt.NameDiscarded, "not a name")

			Expect(collector.Count(NamesCompleted)).Should(Equal(1))
			Expect(collector.Count(NamesDiscarded)).Should(Equal(1))
		})
	})

	When("nothing was published", func() {
		It("should report zero", func() {
			Expect(collector.Count(RecordsFetched)).Should(BeZero())
		})
	})
})

package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// ReportStarted fires when a report run begins. Parameter: run id, number of requested names
	ReportStarted = "report:started"

	// ReportFinished fires after the document was written. Parameter: number of result entries
	ReportFinished = "report:finished"

	// RecordFetched fires when a record was fetched from the analysis store. Parameter: domain name
	RecordFetched = "record:fetched"

	// RecordCacheHit fires when a record lookup was answered from the cache. Parameter: domain name
	RecordCacheHit = "record:cacheHit"

	// RecordLoadFailed fires when a record could not be loaded. Parameter: domain name
	RecordLoadFailed = "record:loadFailed"

	// NameDiscarded fires when an input name was dropped before processing. Parameter: raw input
	NameDiscarded = "name:discarded"

	// NameCompleted fires when a requested name received a status. Parameter: domain name, status
	NameCompleted = "name:completed"
)

// nolint
var evtBus = EventBus.New()

func Bus() EventBus.Bus {
	return evtBus
}

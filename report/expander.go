package report

import (
	"context"

	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"

	"github.com/sirupsen/logrus"
)

// Expander ensures that every record transitively referenced by a root is
// present in the record cache before any status is computed
type Expander struct {
	cache  *RecordCache
	logger *logrus.Entry
}

func NewExpander(cache *RecordCache) *Expander {
	return &Expander{
		cache:  cache,
		logger: log.PrefixedLog("expander"),
	}
}

// Expand walks the dependency references of the root breadth-first. Cache
// membership is the visited set, so cycles terminate and a name is never
// queued twice. A missing dependency only drops its own branch, siblings
// and the root are unaffected. Returns early only on context cancellation.
func (e *Expander) Expand(ctx context.Context, root *model.AnalysisRecord) error {
	queue := append([]model.DomainName{}, root.Dependencies()...)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := queue[0]
		queue = queue[1:]

		record, known, err := e.cache.Ensure(ctx, name)
		if known {
			continue
		}

		if err != nil {
			e.logger.Warnf("dependency '%s' of '%s' can't be loaded: %s", name, root.Name, err)

			continue
		}

		queue = append(queue, record.Dependencies()...)
	}

	return nil
}

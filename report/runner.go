package report

import (
	"context"

	"github.com/dnsvet/dnsvet/anchors"
	"github.com/dnsvet/dnsvet/evt"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/runid"
	"github.com/dnsvet/dnsvet/store"
	"github.com/dnsvet/dnsvet/validate"

	"github.com/sirupsen/logrus"
)

// Runner executes a report run in two phases: first every requested name is
// loaded and its dependency graph expanded into the shared record cache,
// then statuses are computed in input order. By the time any status is
// computed, every reachable record has been loaded exactly once, validation
// never triggers a fresh load.
type Runner struct {
	cache    *RecordCache
	expander *Expander
	engine   validate.Engine
	anchors  *anchors.Set
	logger   *logrus.Entry
}

func NewRunner(analysisStore store.AnalysisStore, engine validate.Engine, anchorSet *anchors.Set) *Runner {
	cache := NewRecordCache(analysisStore)

	return &Runner{
		cache:    cache,
		expander: NewExpander(cache),
		engine:   engine,
		anchors:  anchorSet,
		logger:   log.PrefixedLog("report"),
	}
}

// Run processes the requested names and returns the ordered document.
// Names that fail to load are logged and absent from the document, never
// encoded as error values inside it. An error is only returned on context
// cancellation.
func (r *Runner) Run(ctx context.Context, names []model.DomainName) (*Document, error) {
	evt.Bus().Publish(evt.ReportStarted, runid.String(), len(names))

	usable := make(map[model.DomainName]bool, len(names))

	// phase 1: load all roots and expand their dependency graphs
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := r.cache.GetOrLoad(ctx, name)
		if err != nil {
			r.logger.Warnf("no analysis record for '%s', skipping it: %s", name, err)

			continue
		}

		if record.Stub {
			r.logger.Warnf("only a stub record is stored for '%s', skipping it", name)

			continue
		}

		usable[name] = true

		if err := r.expander.Expand(ctx, record); err != nil {
			return nil, err
		}
	}

	// phase 2: compute statuses in input order
	document := NewDocument()

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !usable[name] {
			continue
		}

		record, ok := r.cache.Lookup(name)
		if !ok {
			continue
		}

		result := r.engine.Evaluate(record, r.cache, r.anchors)

		r.logger.Debugf("status of '%s': %s (%s)", name, result.Status, result.Reason)
		evt.Bus().Publish(evt.NameCompleted, name.String(), result.Status.String())

		document.Append(name.String(), newResultEntry(name, record, &result))
	}

	evt.Bus().Publish(evt.ReportFinished, document.Len())

	return document, nil
}

func newResultEntry(name model.DomainName, record *model.AnalysisRecord, result *validate.Result) *ResultEntry {
	var chain []string
	for _, zone := range result.Chain {
		chain = append(chain, zone.String())
	}

	return &ResultEntry{
		Name:       name.String(),
		Status:     result.Status,
		Reason:     result.Reason,
		AnalyzedAt: record.AnalyzedAt,
		Chain:      chain,
	}
}

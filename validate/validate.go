// Package validate computes the DNSSEC validation status of an analysis
// record against a set of trust anchors. It works exclusively on already
// loaded records: by the time a status is computed, every reachable
// dependency is either present in the record set or known to be missing.
package validate

import (
	"github.com/dnsvet/dnsvet/anchors"
	"github.com/dnsvet/dnsvet/model"
)

// RecordSet is the read-only view on the loaded records, provided by the
// record cache
type RecordSet interface {
	// Lookup returns the loaded record for the name. It never triggers a load.
	Lookup(name model.DomainName) (*model.AnalysisRecord, bool)
}

// Result is the outcome of one status computation
type Result struct {
	Status model.Status
	Reason string

	// Chain lists the walked zones from the trust anchor down to the
	// target, empty if no chain was walked
	Chain []model.DomainName
}

// Engine computes the validation status of a single record
type Engine interface {
	Evaluate(root *model.AnalysisRecord, records RecordSet, anchorSet *anchors.Set) Result
}

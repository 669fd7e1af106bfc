package model

import (
	"time"
)

// AnalysisRecord is one stored analysis snapshot for a single name.
// A record is immutable once loaded, the record cache owns the only
// instance per name for the lifetime of a run.
type AnalysisRecord struct {
	Name       DomainName `json:"name"`
	AnalyzedAt time.Time  `json:"analyzedAt"`

	// Stub marks a placeholder without full analysis data. Stub records are
	// valid dependency references but never direct report targets.
	Stub bool `json:"stub,omitempty"`

	// Parent is the delegating zone, empty for the root zone
	Parent      DomainName   `json:"parent,omitempty"`
	Nameservers []DomainName `json:"nameservers,omitempty"`
	Signers     []DomainName `json:"signers,omitempty"`

	// DNSSEC material in presentation format. Signatures are carried
	// through for consumers of the store, status computation matches key
	// material only.
	DNSKeys []string `json:"dnskeys,omitempty"`
	DS      []string `json:"ds,omitempty"`
	RRSigs  []string `json:"rrsigs,omitempty"`
}

// Dependencies returns all names this record references (delegation parent,
// nameservers, signers), de-duplicated, without the record's own name.
func (r *AnalysisRecord) Dependencies() []DomainName {
	seen := map[DomainName]struct{}{
		r.Name: {},
		"":     {},
	}

	var result []DomainName

	all := make([]DomainName, 0, len(r.Nameservers)+len(r.Signers)+1)
	all = append(all, r.Parent)
	all = append(all, r.Nameservers...)
	all = append(all, r.Signers...)

	for _, name := range all {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		result = append(result, name)
	}

	return result
}

package validate

import (
	"fmt"
	"strings"

	"github.com/dnsvet/dnsvet/anchors"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"

	lru "github.com/hashicorp/golang-lru"
	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

const keyCacheSize = 1024

// ChainEngine walks the chain of trust from the closest enclosing trust
// anchor down to the target, matching each zone's DNSKEYs against the DS
// material of its delegation. Signature verification is out of scope, the
// engine checks key material consistency only.
type ChainEngine struct {
	logger   *logrus.Entry
	keyCache *lru.Cache
}

func NewChainEngine() *ChainEngine {
	// lru.New only fails for a non-positive size
	keyCache, _ := lru.New(keyCacheSize)

	return &ChainEngine{
		logger:   log.PrefixedLog("validate"),
		keyCache: keyCache,
	}
}

// Evaluate implements `Engine`
func (e *ChainEngine) Evaluate(root *model.AnalysisRecord, records RecordSet, anchorSet *anchors.Set) Result {
	if anchorSet.IsEmpty() {
		return Result{
			Status: model.StatusInsecure,
			Reason: "no trust anchors configured, chain is unauthenticated",
		}
	}

	anchorZone, ok := anchorSet.Closest(root.Name)
	if !ok {
		return Result{
			Status: model.StatusInsecure,
			Reason: "no trust anchor covers the name",
		}
	}

	chain, missing := e.buildChain(root, records, anchorZone)
	if missing != "" {
		return Result{
			Status: model.StatusIndeterminate,
			Reason: missing,
			Chain:  chain,
		}
	}

	// anchor zone first, then each delegation downwards
	for i, zone := range chain {
		record, found := records.Lookup(zone)
		if !found {
			// can't happen, buildChain only emits loaded zones
			return Result{
				Status: model.StatusIndeterminate,
				Reason: fmt.Sprintf("record for zone '%s' is not available", zone),
				Chain:  chain,
			}
		}

		var result *Result
		if i == 0 {
			result = e.checkAnchorLink(record, anchorSet, anchorZone)
		} else {
			result = e.checkDelegationLink(record)
		}

		if result != nil {
			result.Chain = chain

			return *result
		}
	}

	return Result{
		Status: model.StatusSecure,
		Reason: fmt.Sprintf("chain of trust intact from '%s'", anchorZone),
		Chain:  chain,
	}
}

// buildChain walks the Parent references from the target up to the anchor
// zone and returns the zones top-down. A non-empty second return value names
// the data that was missing.
func (e *ChainEngine) buildChain(
	root *model.AnalysisRecord, records RecordSet, anchorZone model.DomainName,
) ([]model.DomainName, string) {
	var reversed []model.DomainName

	seen := map[model.DomainName]struct{}{}
	current := root

	for {
		if _, ok := seen[current.Name]; ok {
			return chainOf(reversed), fmt.Sprintf("delegation loop at '%s'", current.Name)
		}

		seen[current.Name] = struct{}{}

		reversed = append(reversed, current.Name)

		if current.Name == anchorZone {
			return chainOf(reversed), ""
		}

		parent := current.Parent
		if parent == "" || !current.Name.IsSubDomainOf(anchorZone) {
			return chainOf(reversed), fmt.Sprintf("no delegation path from '%s' to anchor zone '%s'",
				root.Name, anchorZone)
		}

		parentRecord, found := records.Lookup(parent)
		if !found {
			return chainOf(reversed), fmt.Sprintf("record for parent zone '%s' is not available", parent)
		}

		current = parentRecord
	}
}

func chainOf(reversed []model.DomainName) []model.DomainName {
	chain := make([]model.DomainName, len(reversed))
	for i, zone := range reversed {
		chain[len(reversed)-1-i] = zone
	}

	return chain
}

// checkAnchorLink verifies that the anchored key material matches a DNSKEY
// of the anchor zone. Returns nil if the link is fine.
func (e *ChainEngine) checkAnchorLink(record *model.AnalysisRecord, anchorSet *anchors.Set,
	anchorZone model.DomainName,
) *Result {
	keys := e.parseKeys(record.DNSKeys)
	if len(keys) == 0 {
		if record.Stub {
			return &Result{
				Status: model.StatusIndeterminate,
				Reason: fmt.Sprintf("only a stub record is available for anchor zone '%s'", anchorZone),
			}
		}

		return &Result{
			Status: model.StatusBogus,
			Reason: fmt.Sprintf("anchor zone '%s' has no usable DNSKEY", anchorZone),
		}
	}

	for _, key := range keys {
		for _, anchor := range anchorSet.Keys(anchorZone) {
			if anchor.KeyTag() == key.KeyTag() &&
				anchor.Algorithm == key.Algorithm &&
				anchor.PublicKey == key.PublicKey {
				return nil
			}
		}

		for _, ds := range anchorSet.DS(anchorZone) {
			if dsMatchesKey(ds, key) {
				return nil
			}
		}
	}

	return &Result{
		Status: model.StatusBogus,
		Reason: fmt.Sprintf("no DNSKEY of anchor zone '%s' matches a trust anchor", anchorZone),
	}
}

// checkDelegationLink verifies the zone's DNSKEYs against the DS records of
// its delegation. Returns nil if the link is fine.
func (e *ChainEngine) checkDelegationLink(record *model.AnalysisRecord) *Result {
	if len(record.DS) == 0 {
		return &Result{
			Status: model.StatusInsecure,
			Reason: fmt.Sprintf("delegation to '%s' is unsigned (no DS records)", record.Name),
		}
	}

	keys := e.parseKeys(record.DNSKeys)
	if len(keys) == 0 {
		return &Result{
			Status: model.StatusIndeterminate,
			Reason: fmt.Sprintf("no usable DNSKEY available for zone '%s'", record.Name),
		}
	}

	for _, raw := range record.DS {
		ds, err := e.parseDS(raw)
		if err != nil {
			e.logger.Debugf("skipping unparsable DS of '%s': %s", record.Name, err)

			continue
		}

		for _, key := range keys {
			if dsMatchesKey(ds, key) {
				return nil
			}
		}
	}

	return &Result{
		Status: model.StatusBogus,
		Reason: fmt.Sprintf("no DNSKEY of zone '%s' matches a DS record of its delegation", record.Name),
	}
}

func dsMatchesKey(ds *dns.DS, key *dns.DNSKEY) bool {
	if ds.KeyTag != key.KeyTag() || ds.Algorithm != key.Algorithm {
		return false
	}

	computed := key.ToDS(ds.DigestType)
	if computed == nil {
		return false
	}

	return strings.EqualFold(computed.Digest, ds.Digest)
}

// parseKeys parses stored DNSKEY presentation strings, unparsable entries
// are skipped. Parsed keys are kept in a LRU cache, the same zone keys occur
// in many chains of one batch.
func (e *ChainEngine) parseKeys(raw []string) []*dns.DNSKEY {
	keys := make([]*dns.DNSKEY, 0, len(raw))

	for _, r := range raw {
		if cached, ok := e.keyCache.Get(r); ok {
			keys = append(keys, cached.(*dns.DNSKEY))

			continue
		}

		rr, err := dns.NewRR(r)
		if err != nil {
			e.logger.Debugf("skipping unparsable DNSKEY: %s", err)

			continue
		}

		key, ok := rr.(*dns.DNSKEY)
		if !ok {
			e.logger.Debugf("skipping non-DNSKEY record '%s'", r)

			continue
		}

		e.keyCache.Add(r, key)

		keys = append(keys, key)
	}

	return keys
}

func (e *ChainEngine) parseDS(raw string) (*dns.DS, error) {
	rr, err := dns.NewRR(raw)
	if err != nil {
		return nil, err
	}

	ds, ok := rr.(*dns.DS)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a DS record", raw)
	}

	return ds, nil
}

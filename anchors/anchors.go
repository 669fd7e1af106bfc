// Package anchors loads DNSSEC trust anchors from zone-file-style key
// records. The resulting set is immutable and shared read-only by every
// status computation of a run.
package anchors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/trie"

	"github.com/miekg/dns"
)

// ErrParse marks an unusable trust anchor source. This is a run-defining
// input, the whole run aborts on it.
var ErrParse = errors.New("can't parse trust anchor source")

// Set holds trust anchor key material per zone. The zone trie answers the
// closest-enclosing-zone lookup without walking label by label.
type Set struct {
	keys  map[model.DomainName][]*dns.DNSKEY
	ds    map[model.DomainName][]*dns.DS
	zones *trie.Trie
}

// NewSet returns an empty set: validation proceeds with no trust anchors,
// every chain is unauthenticated from the root
func NewSet() *Set {
	return &Set{
		keys:  make(map[model.DomainName][]*dns.DNSKEY),
		ds:    make(map[model.DomainName][]*dns.DS),
		zones: trie.NewTrie(trie.SplitTLD),
	}
}

// FromFile parses the trust anchor file. An unreadable or malformed file is
// a fatal configuration error.
func FromFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer file.Close()

	set, err := Parse(file, path)
	if err != nil {
		return nil, err
	}

	return set, nil
}

// Parse reads DNSKEY and DS records in zone file format
func Parse(r io.Reader, source string) (*Set, error) {
	set := NewSet()

	zp := dns.NewZoneParser(r, ".", source)

	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		switch anchor := rr.(type) {
		case *dns.DNSKEY:
			if anchor.Flags&dns.SEP == 0 {
				return nil, fmt.Errorf("%w: DNSKEY for %q is not a KSK (SEP flag not set)",
					ErrParse, anchor.Header().Name)
			}

			zone := zoneOf(anchor.Header().Name)
			set.keys[zone] = append(set.keys[zone], anchor)
			set.zones.Insert(string(zone))

		case *dns.DS:
			zone := zoneOf(anchor.Header().Name)
			set.ds[zone] = append(set.ds[zone], anchor)
			set.zones.Insert(string(zone))

		default:
			return nil, fmt.Errorf("%w: unexpected record type %s",
				ErrParse, dns.TypeToString[rr.Header().Rrtype])
		}
	}

	if err := zp.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return set, nil
}

// IsEmpty reports whether no anchor is configured
func (s *Set) IsEmpty() bool {
	return len(s.keys) == 0 && len(s.ds) == 0
}

// Keys returns the anchored DNSKEYs for a zone
func (s *Set) Keys(zone model.DomainName) []*dns.DNSKEY {
	return s.keys[zone]
}

// DS returns the anchored DS records for a zone
func (s *Set) DS(zone model.DomainName) []*dns.DS {
	return s.ds[zone]
}

// IsAnchored reports whether the zone itself has an anchor
func (s *Set) IsAnchored(zone model.DomainName) bool {
	return len(s.keys[zone]) > 0 || len(s.ds[zone]) > 0
}

// Closest returns the nearest enclosing zone of name that carries an
// anchor, up to the root
func (s *Set) Closest(name model.DomainName) (model.DomainName, bool) {
	match, ok := s.zones.LongestMatch(string(name))
	if !ok {
		return "", false
	}

	if match == "" {
		return model.Root, true
	}

	return model.DomainName(match + "."), true
}

func zoneOf(name string) model.DomainName {
	return model.DomainName(strings.ToLower(dns.Fqdn(name)))
}

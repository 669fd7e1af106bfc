package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

var (
	// ErrNameEncoding indicates that the input could not be decoded as a domain name
	ErrNameEncoding = errors.New("input can't be decoded as a domain name")

	// ErrNameSyntax indicates that the input is not a syntactically valid domain name
	ErrNameSyntax = errors.New("input is not a valid domain name")
)

// DomainName is a canonical domain name: lowercase, fully qualified.
// Two textual spellings of the same name ("Example.COM", "example.com.")
// map to the same DomainName, so it can be used as a map key.
type DomainName string

// Root is the DNS root zone
const Root = DomainName(".")

// NewDomainName normalizes raw text into a DomainName.
//
// Non-ASCII input is converted with IDNA; a conversion failure is reported
// as ErrNameEncoding. Syntactically invalid names are reported as
// ErrNameSyntax. The function has no side effects, callers decide whether
// a failure is logged or ignored.
func NewDomainName(text string) (DomainName, error) {
	text = strings.TrimSpace(text)

	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrNameEncoding)
	}

	if text == "." {
		return Root, nil
	}

	if text == "" {
		return "", ErrNameSyntax
	}

	text = strings.TrimSuffix(text, ".")

	if !isASCII(text) {
		ascii, err := idna.Lookup.ToASCII(text)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNameEncoding, err)
		}

		text = ascii
	}

	if !validHostname(text) {
		return "", ErrNameSyntax
	}

	if _, ok := dns.IsDomainName(text); !ok {
		return "", ErrNameSyntax
	}

	return DomainName(strings.ToLower(dns.Fqdn(text))), nil
}

// String returns the name without the trailing root dot, except for the root itself
func (n DomainName) String() string {
	if n == Root {
		return "."
	}

	return strings.TrimSuffix(string(n), ".")
}

// Fqdn returns the fully qualified representation
func (n DomainName) Fqdn() string {
	return string(n)
}

// Parent returns the enclosing zone name ("www.example.com." -> "example.com.").
// The root zone is its own parent.
func (n DomainName) Parent() DomainName {
	if n == Root || n == "" {
		return Root
	}

	idx := strings.Index(string(n), ".")
	if idx == len(n)-1 {
		return Root
	}

	return DomainName(string(n)[idx+1:])
}

// IsSubDomainOf reports whether n is equal to or below zone
func (n DomainName) IsSubDomainOf(zone DomainName) bool {
	return dns.IsSubDomain(zone.Fqdn(), n.Fqdn())
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

const maxNameLength = 253

// validHostname checks LDH label syntax (letters, digits, hyphen, plus
// underscore for service labels). dns.IsDomainName alone is too permissive,
// it accepts any escapable octet.
func validHostname(name string) bool {
	if len(name) == 0 || len(name) > maxNameLength {
		return false
	}

	for _, label := range strings.Split(name, ".") {
		if len(label) == 0 || len(label) > 63 {
			return false
		}

		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}

		for i := 0; i < len(label); i++ {
			c := label[i]

			switch {
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
			case c == '-' || c == '_':
			case c == '*' && i == 0 && len(label) == 1:
			default:
				return false
			}
		}
	}

	return true
}

package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DomainName", func() {
	Describe("NewDomainName", func() {
		When("input is a plain name", func() {
			It("should normalize to lowercase fqdn", func() {
				name, err := NewDomainName("Example.COM")
				Expect(err).Should(Succeed())
				Expect(name).Should(Equal(DomainName("example.com.")))
			})
		})
		When("input has a trailing dot", func() {
			It("should map to the same canonical name", func() {
				withDot, err := NewDomainName("example.com.")
				Expect(err).Should(Succeed())

				withoutDot, err := NewDomainName("example.com")
				Expect(err).Should(Succeed())

				Expect(withDot).Should(Equal(withoutDot))
			})
		})
		When("input is the root zone", func() {
			It("should return the root name", func() {
				name, err := NewDomainName(".")
				Expect(err).Should(Succeed())
				Expect(name).Should(Equal(Root))
			})
		})
		When("input has surrounding whitespace", func() {
			It("should be trimmed", func() {
				name, err := NewDomainName("  example.com \t")
				Expect(err).Should(Succeed())
				Expect(name).Should(Equal(DomainName("example.com.")))
			})
		})
		When("input is an internationalized name", func() {
			It("should convert to punycode", func() {
				name, err := NewDomainName("bücher.example")
				Expect(err).Should(Succeed())
				Expect(name).Should(Equal(DomainName("xn--bcher-kva.example.")))
			})
		})
		When("input is not a valid name", func() {
			It("should fail with a syntax error", func() {
				_, err := NewDomainName("not a valid name!!")
				Expect(err).Should(MatchError(ErrNameSyntax))
			})
		})
		When("input is empty", func() {
			It("should fail with a syntax error", func() {
				_, err := NewDomainName("")
				Expect(err).Should(MatchError(ErrNameSyntax))
			})
		})
		When("input is not valid UTF-8", func() {
			It("should fail with an encoding error", func() {
				_, err := NewDomainName("exa\xc3\x28mple.com")
				Expect(err).Should(MatchError(ErrNameEncoding))
			})
		})
		When("a label is too long", func() {
			It("should fail with a syntax error", func() {
				label := make([]byte, 64)
				for i := range label {
					label[i] = 'a'
				}
				_, err := NewDomainName(string(label) + ".example.com")
				Expect(err).Should(MatchError(ErrNameSyntax))
			})
		})
	})

	Describe("String", func() {
		It("should drop the trailing dot", func() {
			Expect(DomainName("example.com.").String()).Should(Equal("example.com"))
		})
		It("should keep the root zone as a single dot", func() {
			Expect(Root.String()).Should(Equal("."))
		})
	})

	Describe("Parent", func() {
		It("should strip the leftmost label", func() {
			Expect(DomainName("www.example.com.").Parent()).Should(Equal(DomainName("example.com.")))
		})
		It("should return the root zone for a top level domain", func() {
			Expect(DomainName("com.").Parent()).Should(Equal(Root))
		})
		It("should return the root zone for the root zone", func() {
			Expect(Root.Parent()).Should(Equal(Root))
		})
	})

	Describe("IsSubDomainOf", func() {
		It("should match a name below the zone", func() {
			Expect(DomainName("www.example.com.").IsSubDomainOf("example.com.")).Should(BeTrue())
		})
		It("should match the zone itself", func() {
			Expect(DomainName("example.com.").IsSubDomainOf("example.com.")).Should(BeTrue())
		})
		It("should not match a sibling", func() {
			Expect(DomainName("other.com.").IsSubDomainOf("example.com.")).Should(BeFalse())
		})
	})
})

package anchors

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dnsvet/dnsvet/model"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// KSK-2017 from https://data.iana.org/root-anchors/
const rootKSK = ". 172800 IN DNSKEY 257 3 8 " +
	"AwEAAaz/tAm8yTn4Mfeh5eyI96WSVexTBAvkMgJzkKTOiW1vkIbzxeF3+/4RgWOq7HrxRixHlFlExOLAJr5emLvN7SWXgnLh4+B5xQlNVz8Og8k" +
	"vArMtNROxVQuCaSnIDdD5LKyWbRd2n9WGe2R8PzgCmr3EgVLrjyBxWezF0jLHwVN8efS3rCj/EWgvIWgb9tarpVUDK/b58Da+sqqls3eNbuv7pr" +
	"+eoZG+SrDK6nWeL3c6H5Apxz7LjVc1uTIdsIXxuOLYA4/ilBmSVIzuDWfdRUfhHdY6+cn8HFRm+2hM8AnXGXws9555KrUB5qihylGa8subX2Nn6" +
	"UwNR1AkUTV74bU="

const rootDS = ". 172800 IN DS 20326 8 2 E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8D"

var _ = Describe("Trust anchor set", func() {
	Describe("Parse", func() {
		When("the source contains a root KSK", func() {
			It("should be anchored at the root zone", func() {
				set, err := Parse(strings.NewReader(rootKSK), "test")
				Expect(err).Should(Succeed())
				Expect(set.IsEmpty()).Should(BeFalse())
				Expect(set.Keys(".")).Should(HaveLen(1))
				Expect(set.Keys(".")[0].KeyTag()).Should(Equal(uint16(20326)))
			})
		})
		When("the source contains a DS record", func() {
			It("should be kept separately", func() {
				set, err := Parse(strings.NewReader(rootDS), "test")
				Expect(err).Should(Succeed())
				Expect(set.DS(".")).Should(HaveLen(1))
				Expect(set.Keys(".")).Should(BeEmpty())
			})
		})
		When("a DNSKEY has no SEP flag", func() {
			It("should fail", func() {
				zsk := strings.Replace(rootKSK, " 257 ", " 256 ", 1)
				_, err := Parse(strings.NewReader(zsk), "test")
				Expect(err).Should(MatchError(ErrParse))
			})
		})
		When("the source contains an unexpected record type", func() {
			It("should fail", func() {
				_, err := Parse(strings.NewReader("example.com. 300 IN A 192.0.2.1"), "test")
				Expect(err).Should(MatchError(ErrParse))
			})
		})
		When("the source is garbage", func() {
			It("should fail", func() {
				_, err := Parse(strings.NewReader("this is not a zone file"), "test")
				Expect(err).Should(MatchError(ErrParse))
			})
		})
	})

	Describe("FromFile", func() {
		When("the file does not exist", func() {
			It("should fail with a parse error", func() {
				_, err := FromFile(filepath.Join(GinkgoT().TempDir(), "missing.key"))
				Expect(err).Should(MatchError(ErrParse))
			})
		})
		When("the file is valid", func() {
			It("should load all anchors", func() {
				path := filepath.Join(GinkgoT().TempDir(), "root.key")
				Expect(os.WriteFile(path, []byte(rootKSK+"\n"+rootDS+"\n"), 0o600)).Should(Succeed())

				set, err := FromFile(path)
				Expect(err).Should(Succeed())
				Expect(set.Keys(".")).Should(HaveLen(1))
				Expect(set.DS(".")).Should(HaveLen(1))
			})
		})
	})

	Describe("Closest", func() {
		It("should walk up to the nearest anchored zone", func() {
			set, err := Parse(strings.NewReader(rootKSK), "test")
			Expect(err).Should(Succeed())

			zone, ok := set.Closest("www.example.com.")
			Expect(ok).Should(BeTrue())
			Expect(zone.String()).Should(Equal("."))
		})
		It("should prefer the deepest anchored zone", func() {
			comDS := "com. 86400 IN DS 30909 8 2 " +
				"E2D3C916F6DEEAC73294E8268FB5885044A833FC5459588F4A9184CFC41A5766"

			set, err := Parse(strings.NewReader(rootKSK+"\n"+comDS+"\n"), "test")
			Expect(err).Should(Succeed())

			zone, ok := set.Closest("www.example.com.")
			Expect(ok).Should(BeTrue())
			Expect(zone).Should(Equal(model.DomainName("com.")))

			zone, ok = set.Closest("example.org.")
			Expect(ok).Should(BeTrue())
			Expect(zone.String()).Should(Equal("."))
		})
		It("should report no cover for an empty set", func() {
			_, ok := NewSet().Closest("www.example.com.")
			Expect(ok).Should(BeFalse())
		})
	})
})
